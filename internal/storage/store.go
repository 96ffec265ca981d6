package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/julianstephens/wellbeing/internal/backup"
	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/migration"
	"github.com/julianstephens/wellbeing/migrations"
)

// Store implements Provider on top of sqlx for both SQLite and PostgreSQL.
// All access is serialised by mu; the SQLite handle also keeps a single
// connection so writes never contend with each other.
type Store struct {
	mu       sync.Mutex
	kind     Kind
	path     string
	connStr  string
	db       *sqlx.DB
	upgraded bool
	logFn    func(string)

	backupOpts backup.Options
	// schema replaces the embedded steps for the dialect when set.
	schema fs.FS
}

// New picks the dialect from database: a postgres:// or postgresql:// URL
// selects PostgreSQL, anything else is a SQLite file path.
func New(database string) (*Store, error) {
	if strings.HasPrefix(database, "postgres://") || strings.HasPrefix(database, "postgresql://") {
		return NewPostgresStore(database)
	}
	return NewSQLiteStore(database), nil
}

// SetMigrationLog routes schema upgrade progress to fn. By default it goes
// to the global logger at info level.
func (s *Store) SetMigrationLog(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logFn = fn
}

func (s *Store) Kind() Kind {
	return s.kind
}

// Path returns the SQLite file path, or a non-sensitive identifier for
// PostgreSQL.
func (s *Store) Path() string {
	if s.kind == KindPostgres {
		return "postgresql"
	}
	return s.path
}

// Open connects and upgrades the schema to the latest version. Calling it
// again on an open store is a no-op.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.openLocked(ctx, true)
	return err
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.upgraded = false
	return err
}

func (s *Store) connectLocked(ctx context.Context) (*sqlx.DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	var (
		db  *sqlx.DB
		err error
	)
	switch s.kind {
	case KindPostgres:
		db, err = openPostgres(ctx, s.connStr)
	default:
		db, err = openSQLite(ctx, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w: %w", ErrStore, err)
	}

	s.db = db
	return db, nil
}

func (s *Store) openLocked(ctx context.Context, upgrade bool) (*sqlx.DB, error) {
	db, err := s.connectLocked(ctx)
	if err != nil {
		return nil, err
	}
	if !upgrade || s.upgraded {
		return db, nil
	}

	if _, err := s.upgradeLocked(db); err != nil {
		return nil, err
	}
	return db, nil
}

func (s *Store) runner(db *sql.DB) (*migration.Runner, error) {
	dir, dialect := "sqlite", migration.SQLite
	if s.kind == KindPostgres {
		dir, dialect = "postgres", migration.Postgres
	}
	if s.schema != nil {
		return migration.NewRunner(db, s.schema, dialect), nil
	}

	subFS, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s migrations: %w", dir, err)
	}

	return migration.NewRunner(db, subFS, dialect), nil
}

func (s *Store) upgradeLocked(db *sqlx.DB) (int, error) {
	runner, err := s.runner(db.DB)
	if err != nil {
		return 0, fmt.Errorf("upgrade schema: %w: %w", ErrStore, err)
	}

	logFn := s.logFn
	if logFn == nil {
		logFn = func(msg string) { logger.Info(msg) }
	}

	if s.kind == KindSQLite {
		if err := s.snapshotBeforeUpgrade(runner, logFn); err != nil {
			return 0, fmt.Errorf("upgrade schema: %w: %w", ErrStore, err)
		}
	}

	applied, err := runner.ApplyMigrations(logFn)
	if err != nil {
		return applied, fmt.Errorf("upgrade schema: %w: %w", ErrStore, err)
	}
	s.upgraded = true
	return applied, nil
}

// SchemaVersion returns the version currently recorded in the store,
// without upgrading it first.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.openLocked(ctx, false)
	if err != nil {
		return 0, err
	}
	runner, err := s.runner(db.DB)
	if err != nil {
		return 0, fmt.Errorf("schema version: %w: %w", ErrStore, err)
	}
	version, err := runner.GetCurrentVersion()
	if err != nil {
		return 0, fmt.Errorf("schema version: %w: %w", ErrStore, err)
	}
	return version, nil
}

// LatestSchemaVersion returns the newest version this build knows about.
func (s *Store) LatestSchemaVersion() (int, error) {
	runner, err := s.runner(nil)
	if err != nil {
		return 0, err
	}
	return runner.GetLatestVersion()
}

// UpgradeToLatest applies every pending upgrade step and returns how many
// ran. A failing step rolls back with its version bump.
func (s *Store) UpgradeToLatest(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.openLocked(ctx, false)
	if err != nil {
		return 0, err
	}
	return s.upgradeLocked(db)
}

// ValidateSchema fails with migration.ErrSchemaTooNew when the store was
// written by a newer release. It never upgrades.
func (s *Store) ValidateSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.openLocked(ctx, false)
	if err != nil {
		return err
	}
	runner, err := s.runner(db.DB)
	if err != nil {
		return fmt.Errorf("validate schema: %w: %w", ErrStore, err)
	}
	return runner.ValidateVersion()
}

// with runs fn against an open, upgraded store while holding the lock and
// tags any error with op and its kind.
func (s *Store) with(ctx context.Context, op string, fn func(db *sqlx.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.openLocked(ctx, true)
	if err != nil {
		return err
	}
	return classify(op, fn(db))
}

// Stats counts the rows in each table.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.with(ctx, "stats", func(db *sqlx.DB) error {
		return db.GetContext(ctx, &st, `
			SELECT
				(SELECT COUNT(*) FROM prompt) AS prompts,
				(SELECT COUNT(*) FROM entry) AS entries,
				(SELECT COUNT(*) FROM reminder) AS reminders
		`)
	})
	return st, err
}
