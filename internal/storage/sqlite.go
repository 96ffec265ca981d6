package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/wellbeing/internal/backup"
	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/migration"
)

// NewSQLiteStore returns a store backed by the SQLite file at path. Nothing
// touches the disk until the store is opened.
func NewSQLiteStore(path string) *Store {
	return &Store{
		kind:       KindSQLite,
		path:       path,
		backupOpts: backup.Options{Keep: constants.MaxBackups},
	}
}

// SetBackupOptions controls the snapshot taken before an existing SQLite
// file is upgraded.
func (s *Store) SetBackupOptions(opts backup.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backupOpts = opts
}

// snapshotBeforeUpgrade backs up a SQLite file that already holds a schema
// and has pending steps. Fresh and current files are left alone.
func (s *Store) snapshotBeforeUpgrade(runner *migration.Runner, logFn func(string)) error {
	current, err := runner.GetCurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return err
	}
	if current == 0 || current >= latest {
		return nil
	}

	path, err := backup.NewManager(s.path, s.backupOpts).CreateBackup()
	if err != nil {
		return fmt.Errorf("backup before upgrade: %w", err)
	}
	logFn(fmt.Sprintf("Backed up version %d to %s", current, filepath.Base(path)))
	return nil
}

func sqliteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func openSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Pragmas apply per connection and the store is single-writer.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
