package cli

import (
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/julianstephens/wellbeing/internal/config"
	"github.com/julianstephens/wellbeing/internal/seed"
	"github.com/julianstephens/wellbeing/internal/storage"
)

type InitCmd struct {
	Seed bool `help:"Fill an empty journal with example prompts, entries and reminders."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(ctx.background()); err != nil {
		return err
	}

	version, err := ctx.Store.SchemaVersion(ctx.background())
	if err != nil {
		return err
	}

	ctx.printf("✓ Initialized wellbeing storage at: %s\n", ctx.Store.Path())
	ctx.printf("  Schema version: %d\n", version)

	if err := writeDefaultConfig(ctx); err != nil {
		return err
	}

	if !c.Seed && (ctx.Config == nil || !ctx.Config.Seed.OnInit) {
		return nil
	}

	res, err := seed.Apply(ctx.background(), ctx.Store, ctx.now())
	if err != nil {
		return err
	}
	if res.Skipped {
		ctx.println("Seed skipped: the journal already has prompts.")
		return nil
	}
	ctx.printf("✓ Seeded %d prompts, %d entries and %d reminders\n", res.Prompts, res.Entries, res.Reminders)
	return nil
}

// writeDefaultConfig saves the active configuration to ctx.ConfigPath if
// nothing is there yet. An existing file is never touched.
func writeDefaultConfig(ctx *Context) error {
	if ctx.ConfigPath == "" || ctx.Config == nil {
		return nil
	}
	path, err := homedir.Expand(ctx.ConfigPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	cfg := *ctx.Config
	cfg.Debug = false
	if err := config.Save(path, &cfg); err != nil {
		return err
	}
	ctx.printf("✓ Wrote config to %s\n", path)
	return nil
}

type migrationLogger interface {
	SetMigrationLog(fn func(string))
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	if ml, ok := ctx.Store.(migrationLogger); ok {
		ml.SetMigrationLog(func(msg string) { ctx.println(msg) })
		defer ml.SetMigrationLog(nil)
	}

	applied, err := ctx.Store.UpgradeToLatest(ctx.background())
	if err != nil {
		return err
	}

	version, err := ctx.Store.SchemaVersion(ctx.background())
	if err != nil {
		return err
	}
	if applied == 0 {
		ctx.printf("✓ Schema already at version %d\n", version)
		return nil
	}
	ctx.printf("✓ Migrated %s store to version %d\n", ctx.Store.Kind(), version)
	return nil
}

var _ migrationLogger = (*storage.Store)(nil)
