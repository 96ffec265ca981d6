package storage

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/models"
)

// AddPrompt inserts a new prompt and returns its id. Titles are not checked
// for uniqueness.
func (s *Store) AddPrompt(ctx context.Context, title, body string) (int64, error) {
	var id int64
	err := s.with(ctx, "add prompt", func(db *sqlx.DB) error {
		return db.QueryRowxContext(ctx,
			db.Rebind("INSERT INTO prompt (title, body, archived) VALUES (?, ?, ?) RETURNING id"),
			title, body, false,
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	logger.Record("prompt", id).Debug("added", "title", title)
	return id, nil
}

func (s *Store) GetPrompt(ctx context.Context, id int64) (models.Prompt, error) {
	var p models.Prompt
	err := s.with(ctx, "get prompt", func(db *sqlx.DB) error {
		return db.GetContext(ctx, &p,
			db.Rebind("SELECT id, title, body, archived FROM prompt WHERE id = ?"), id)
	})
	return p, err
}

// ListPrompts returns every prompt, archived or not, in id order.
func (s *Store) ListPrompts(ctx context.Context) ([]models.Prompt, error) {
	prompts := []models.Prompt{}
	err := s.with(ctx, "list prompts", func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &prompts, "SELECT id, title, body, archived FROM prompt ORDER BY id ASC")
	})
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

func (s *Store) SetPromptArchived(ctx context.Context, id int64, archived bool) error {
	err := s.with(ctx, "archive prompt", func(db *sqlx.DB) error {
		res, err := db.ExecContext(ctx, db.Rebind("UPDATE prompt SET archived = ? WHERE id = ?"), archived, id)
		if err != nil {
			return err
		}
		return notFoundIfNone(res)
	})
	if err != nil {
		return err
	}
	logger.Record("prompt", id).Debug("archive set", "archived", archived)
	return nil
}
