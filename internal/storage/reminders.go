package storage

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/models"
)

func (s *Store) AddReminder(ctx context.Context, title, body string) (int64, error) {
	var id int64
	err := s.with(ctx, "add reminder", func(db *sqlx.DB) error {
		return db.QueryRowxContext(ctx,
			db.Rebind("INSERT INTO reminder (title, body) VALUES (?, ?) RETURNING id"),
			title, body,
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	logger.Record("reminder", id).Debug("added")
	return id, nil
}

func (s *Store) GetReminder(ctx context.Context, id int64) (models.Reminder, error) {
	var r models.Reminder
	err := s.with(ctx, "get reminder", func(db *sqlx.DB) error {
		return db.GetContext(ctx, &r, db.Rebind("SELECT id, title, body FROM reminder WHERE id = ?"), id)
	})
	return r, err
}

func (s *Store) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	err := s.with(ctx, "list reminders", func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &reminders, "SELECT id, title, body FROM reminder ORDER BY id ASC")
	})
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (s *Store) DeleteReminder(ctx context.Context, id int64) error {
	err := s.with(ctx, "delete reminder", func(db *sqlx.DB) error {
		res, err := db.ExecContext(ctx, db.Rebind("DELETE FROM reminder WHERE id = ?"), id)
		if err != nil {
			return err
		}
		return notFoundIfNone(res)
	})
	if err != nil {
		return err
	}
	logger.Record("reminder", id).Debug("deleted")
	return nil
}
