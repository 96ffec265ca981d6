package storage

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/models"
)

const entryColumns = "id, created_at, text, prompt_ref"

// AddEntry stores text, trimmed, against promptID. A prompt that does not
// exist yields ErrConstraintViolation.
func (s *Store) AddEntry(ctx context.Context, createdAt int64, text string, promptID int64) (int64, error) {
	var id int64
	err := s.with(ctx, "add entry", func(db *sqlx.DB) error {
		return db.QueryRowxContext(ctx,
			db.Rebind("INSERT INTO entry (created_at, text, prompt_ref) VALUES (?, ?, ?) RETURNING id"),
			createdAt, strings.TrimSpace(text), promptID,
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	logger.Record("entry", id, "prompt", promptID).Debug("added", "created_at", createdAt)
	return id, nil
}

func (s *Store) GetEntry(ctx context.Context, id int64) (models.Entry, error) {
	var e models.Entry
	err := s.with(ctx, "get entry", func(db *sqlx.DB) error {
		return db.GetContext(ctx, &e, db.Rebind("SELECT "+entryColumns+" FROM entry WHERE id = ?"), id)
	})
	return e, err
}

// UpdateEntryText replaces the text of entry id, trimmed.
func (s *Store) UpdateEntryText(ctx context.Context, id int64, text string) error {
	err := s.with(ctx, "update entry text", func(db *sqlx.DB) error {
		res, err := db.ExecContext(ctx, db.Rebind("UPDATE entry SET text = ? WHERE id = ?"), strings.TrimSpace(text), id)
		if err != nil {
			return err
		}
		return notFoundIfNone(res)
	})
	if err != nil {
		return err
	}
	logger.Record("entry", id).Debug("text updated")
	return nil
}

func (s *Store) UpdateEntryDate(ctx context.Context, id int64, createdAt int64) error {
	err := s.with(ctx, "update entry date", func(db *sqlx.DB) error {
		res, err := db.ExecContext(ctx, db.Rebind("UPDATE entry SET created_at = ? WHERE id = ?"), createdAt, id)
		if err != nil {
			return err
		}
		return notFoundIfNone(res)
	})
	if err != nil {
		return err
	}
	logger.Record("entry", id).Debug("date updated", "created_at", createdAt)
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id int64) error {
	err := s.with(ctx, "delete entry", func(db *sqlx.DB) error {
		res, err := db.ExecContext(ctx, db.Rebind("DELETE FROM entry WHERE id = ?"), id)
		if err != nil {
			return err
		}
		return notFoundIfNone(res)
	})
	if err != nil {
		return err
	}
	logger.Record("entry", id).Debug("deleted")
	return nil
}

// ListEntries returns every entry ordered by timestamp, then id.
func (s *Store) ListEntries(ctx context.Context, order Order) ([]models.Entry, error) {
	query := "SELECT " + entryColumns + " FROM entry ORDER BY created_at ASC, id ASC"
	if order == Descending {
		query = "SELECT " + entryColumns + " FROM entry ORDER BY created_at DESC, id DESC"
	}
	return s.selectEntries(ctx, "list entries", query)
}

// ListEntriesForPromptInRange returns entries for promptID with timestamps in
// [start, start+days*86400), oldest first.
func (s *Store) ListEntriesForPromptInRange(ctx context.Context, promptID int64, start int64, days int) ([]models.Entry, error) {
	end := start + int64(days)*constants.SecondsPerDay
	return s.selectEntries(ctx, "list entries for prompt",
		"SELECT "+entryColumns+" FROM entry WHERE prompt_ref = ? AND created_at >= ? AND created_at < ? ORDER BY created_at ASC, id ASC",
		promptID, start, end)
}

// ListEntriesForDay returns entries in [dayStart, dayStart+86400) across all
// prompts, oldest first.
func (s *Store) ListEntriesForDay(ctx context.Context, dayStart int64) ([]models.Entry, error) {
	return s.ListEntriesInRange(ctx, dayStart, dayStart+constants.SecondsPerDay)
}

// ListEntriesInRange returns entries in [from, to), oldest first.
func (s *Store) ListEntriesInRange(ctx context.Context, from, to int64) ([]models.Entry, error) {
	return s.selectEntries(ctx, "list entries in range",
		"SELECT "+entryColumns+" FROM entry WHERE created_at >= ? AND created_at < ? ORDER BY created_at ASC, id ASC",
		from, to)
}

func (s *Store) selectEntries(ctx context.Context, op, query string, args ...any) ([]models.Entry, error) {
	entries := []models.Entry{}
	err := s.with(ctx, op, func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &entries, db.Rebind(query), args...)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
