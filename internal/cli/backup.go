package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/wellbeing/internal/backup"
	"github.com/julianstephens/wellbeing/internal/config"
	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/storage"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
}

func backupOptions(cfg *config.AppConfig) backup.Options {
	if cfg == nil {
		return backup.Options{Keep: constants.MaxBackups}
	}
	return backup.Options{Dir: cfg.Backup.Dir, Keep: cfg.Backup.Keep}
}

func newBackupManager(ctx *Context) *backup.Manager {
	return backup.NewManager(ctx.Store.Path(), backupOptions(ctx.Config))
}

func backupManager(ctx *Context) (*backup.Manager, error) {
	if ctx.Store.Kind() != storage.KindSQLite {
		return nil, backup.ErrUnsupported
	}
	return newBackupManager(ctx), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Store.Open(ctx.background()); err != nil {
		return err
	}

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	ctx.printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.println("No backups found.")
		ctx.printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	keep := constants.MaxBackups
	if ctx.Config != nil {
		keep = ctx.Config.Backup.Keep
	}
	ctx.printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), keep)

	table := newTable("CREATED", "FILE", "SIZE")
	for _, b := range backups {
		table.AddRow(
			b.Timestamp.Format("2006-01-02 15:04:05"),
			filepath.Base(b.Path),
			fmt.Sprintf("%.1f KB", float64(b.Size)/1024.0),
		)
	}
	ctx.println(table)
	ctx.printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		possiblePath := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(possiblePath); err == nil {
			backupPath = possiblePath
		}
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file %s: %w", backupPath, storage.ErrNotFound)
	}

	if !c.Yes {
		ok, err := ctx.confirm(
			fmt.Sprintf("Restore from %s?", filepath.Base(backupPath)),
			"This replaces the current journal. A backup of it is made first.",
		)
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	safety, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	ctx.println("✓ Database restored successfully!")
	if safety != "" {
		ctx.printf("  Previous journal saved as %s\n", filepath.Base(safety))
	}
	return nil
}
