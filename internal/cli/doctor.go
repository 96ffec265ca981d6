package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/storage"
)

type DoctorCmd struct{}

var errChecksFailed = errors.New("one or more health checks failed")

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()
	ctx.printf("  Store: %s (%s)\n", ctx.Store.Path(), ctx.Store.Kind())
	ctx.println()

	hasError := false

	current, latest, err := checkSchemaVersion(ctx)
	if err != nil {
		ctx.printf("❌ Schema version: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Schema version: OK (%d of %d)\n", current, latest)
	}

	if !hasError && current < latest {
		ctx.printf("⚠ Migrations complete: WARNING\n")
		ctx.printf("   %d pending migration(s); run 'wellbeing migrate'\n", latest-current)
	} else if !hasError {
		ctx.printf("✓ Migrations complete: OK\n")
	}

	if hasError || current < latest {
		ctx.printf("⊘ Row counts: SKIPPED (schema not current)\n")
	} else if st, err := ctx.Store.Stats(ctx.background()); err != nil {
		ctx.printf("❌ Row counts: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Row counts: %d prompts, %d entries, %d reminders\n", st.Prompts, st.Entries, st.Reminders)
	}

	if err := checkBackupsPresent(ctx); err != nil {
		ctx.printf("⚠ Backups present: WARNING\n")
		ctx.printf("   %v\n", err)
	} else {
		ctx.printf("✓ Backups present: OK\n")
	}

	if err := checkClockTimezone(ctx); err != nil {
		ctx.printf("❌ Clock/timezone: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Clock/timezone: OK (%s)\n", ctx.loc())
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return errChecksFailed
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx *Context) (int, int, error) {
	current, err := ctx.Store.SchemaVersion(ctx.background())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := ctx.Store.LatestSchemaVersion()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if err := ctx.Store.ValidateSchema(ctx.background()); err != nil {
		return current, latest, err
	}
	return current, latest, nil
}

func checkBackupsPresent(ctx *Context) error {
	if ctx.Store.Kind() != storage.KindSQLite {
		return fmt.Errorf("backups are managed outside wellbeing for %s stores", ctx.Store.Kind())
	}

	mgr := newBackupManager(ctx)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s; run 'wellbeing backup create'", mgr.GetBackupDir())
	}

	latest := backups[0]
	if age := ctx.now().Sub(latest.Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("most recent backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock reads %s", now.Format(constants.DateFormat))
	}
	if name, _ := now.Zone(); name == "" {
		return fmt.Errorf("time zone %s has no name", ctx.loc())
	}
	return nil
}
