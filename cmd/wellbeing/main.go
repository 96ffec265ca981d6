package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"github.com/julianstephens/wellbeing/internal/cli"
	"github.com/julianstephens/wellbeing/internal/config"
	"github.com/julianstephens/wellbeing/internal/constants"
	apperrors "github.com/julianstephens/wellbeing/internal/errors"
	"github.com/julianstephens/wellbeing/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"string" default:"${config_file}"`
	Database string `help:"SQLite file, PostgreSQL connection string or 'keyring'. Overrides the config. For PostgreSQL, credentials must NOT be embedded in the connection string; use .pgpass or the OS keyring instead." type:"string"`
	Debug    bool   `help:"Log at debug level and mirror logs to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize wellbeing storage."`
	Migrate  cli.MigrateCmd  `cmd:"" help:"Run database migrations."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Prompt   cli.PromptCmd   `cmd:"" help:"Manage journal prompts."`
	Entry    cli.EntryCmd    `cmd:"" help:"Manage journal entries."`
	Day      cli.DayCmd      `cmd:"" help:"Show every entry written on a day."`
	Month    cli.MonthCmd    `cmd:"" help:"Show a prompt's entries for a month."`
	Reminder cli.ReminderCmd `cmd:"" help:"Manage reminders."`
	Export   cli.ExportCmd   `cmd:"" help:"Export entries to CSV."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage database backups."`
	Keyring  cli.KeyringCmd  `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A daily journal with prompts, reminders and a calendar."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		os.Exit(apperrors.ExitFatal)
	}
	if CLI.Database != "" {
		cfg.Database = CLI.Database
		if !cfg.IsPostgres() && cfg.Database != constants.KeyringDatabase {
			if cfg.Database, err = homedir.Expand(cfg.Database); err != nil {
				apperrors.Fatal(err)
			}
		}
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	logDir := cfg.Log.Dir
	if logDir == "" {
		logDir = filepath.Join(constants.DefaultConfigDir, "logs")
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, LogDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store, err := cli.NewStore(cfg)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := cli.NewContext(store, cfg)
	appCtx.ConfigPath = CLI.Config
	logger.Debug("running command", "command", ctx.Command(), "store", store.Kind())

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("failed to close store", "error", closeErr)
	}
	if err != nil {
		os.Exit(apperrors.Report(os.Stderr, err))
	}
}
