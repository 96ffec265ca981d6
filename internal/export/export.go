// Package export writes the journal as CSV rows of (date, text).
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/models"
	"github.com/julianstephens/wellbeing/internal/storage"
)

// EntryLister is the storage needed for an export.
type EntryLister interface {
	ListEntries(ctx context.Context, order storage.Order) ([]models.Entry, error)
}

// Entries writes every entry, oldest first, as "YYYY-MM-DD,text" rows.
// It returns the number of rows written.
func Entries(ctx context.Context, repo EntryLister, w io.Writer, loc *time.Location) (int, error) {
	if loc == nil {
		loc = time.Local
	}

	entries, err := repo.ListEntries(ctx, storage.Ascending)
	if err != nil {
		return 0, fmt.Errorf("failed to list entries: %w", err)
	}

	cw := csv.NewWriter(w)
	for _, e := range entries {
		if err := cw.Write([]string{e.Time(loc).Format(constants.DateFormat), e.Text}); err != nil {
			return 0, fmt.Errorf("failed to write entry %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush export: %w", err)
	}
	return len(entries), nil
}

// ToFile creates or truncates path and exports into it. A failed export
// leaves no file behind.
func ToFile(ctx context.Context, repo EntryLister, path string, loc *time.Location) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}

	n, err := Entries(ctx, repo, f, loc)
	if err != nil {
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			logger.Warn("failed to remove partial export", "path", path, "error", rmErr)
		}
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close export file: %w", err)
	}

	logger.Info("exported entries", "path", path, "count", n)
	return n, nil
}
