package storage

import (
	"context"

	"github.com/julianstephens/wellbeing/internal/models"
)

// Kind identifies the backing database.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// Order controls how ListEntries sorts by timestamp. Ties break on id in the
// same direction.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Stats holds row counts per table.
type Stats struct {
	Prompts   int `db:"prompts"`
	Entries   int `db:"entries"`
	Reminders int `db:"reminders"`
}

// Provider is the only path to persisted journal data. Every method may open
// the store on first use.
type Provider interface {
	Open(ctx context.Context) error
	Close() error
	Kind() Kind
	Path() string

	// Schema
	SchemaVersion(ctx context.Context) (int, error)
	LatestSchemaVersion() (int, error)
	UpgradeToLatest(ctx context.Context) (int, error)
	ValidateSchema(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)

	// Prompts
	AddPrompt(ctx context.Context, title, body string) (int64, error)
	GetPrompt(ctx context.Context, id int64) (models.Prompt, error)
	ListPrompts(ctx context.Context) ([]models.Prompt, error)
	SetPromptArchived(ctx context.Context, id int64, archived bool) error

	// Entries
	AddEntry(ctx context.Context, createdAt int64, text string, promptID int64) (int64, error)
	GetEntry(ctx context.Context, id int64) (models.Entry, error)
	UpdateEntryText(ctx context.Context, id int64, text string) error
	UpdateEntryDate(ctx context.Context, id int64, createdAt int64) error
	DeleteEntry(ctx context.Context, id int64) error
	ListEntries(ctx context.Context, order Order) ([]models.Entry, error)
	ListEntriesForPromptInRange(ctx context.Context, promptID int64, start int64, days int) ([]models.Entry, error)
	ListEntriesForDay(ctx context.Context, dayStart int64) ([]models.Entry, error)
	ListEntriesInRange(ctx context.Context, from, to int64) ([]models.Entry, error)

	// Reminders
	AddReminder(ctx context.Context, title, body string) (int64, error)
	GetReminder(ctx context.Context, id int64) (models.Reminder, error)
	ListReminders(ctx context.Context) ([]models.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
}

var _ Provider = (*Store)(nil)
