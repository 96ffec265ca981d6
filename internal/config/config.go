// Package config loads wellbeing settings from a YAML file and WELLBEING_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/julianstephens/wellbeing/internal/constants"
)

// BackupConfig controls where store copies go and how many are kept.
type BackupConfig struct {
	// Dir defaults to the directory holding the store file when empty.
	Dir  string `mapstructure:"dir" yaml:"dir"`
	Keep int    `mapstructure:"keep" yaml:"keep"`
}

type LogConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

type ExportConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type SeedConfig struct {
	OnInit bool `mapstructure:"on_init" yaml:"on_init"`
}

type JournalConfig struct {
	// Greeting is prepended to entries when toggled on.
	Greeting string `mapstructure:"greeting" yaml:"greeting"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// Database is a SQLite file path, a postgres:// URL, or "keyring".
	Database string        `mapstructure:"database" yaml:"database"`
	Debug    bool          `mapstructure:"debug" yaml:"debug"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
	Backup   BackupConfig  `mapstructure:"backup" yaml:"backup"`
	Export   ExportConfig  `mapstructure:"export" yaml:"export"`
	Seed     SeedConfig    `mapstructure:"seed" yaml:"seed"`
	Journal  JournalConfig `mapstructure:"journal" yaml:"journal"`
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	return &AppConfig{
		Database: constants.DefaultDBPath,
		Log:      LogConfig{Dir: filepath.Join(constants.DefaultConfigDir, "logs")},
		Backup:   BackupConfig{Keep: constants.MaxBackups},
		Export:   ExportConfig{Path: constants.DefaultExportPath},
		Journal:  JournalConfig{Greeting: constants.DefaultGreeting},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("database", d.Database)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log.dir", d.Log.Dir)
	v.SetDefault("backup.dir", d.Backup.Dir)
	v.SetDefault("backup.keep", d.Backup.Keep)
	v.SetDefault("export.path", d.Export.Path)
	v.SetDefault("seed.on_init", d.Seed.OnInit)
	v.SetDefault("journal.greeting", d.Journal.Greeting)
}

// Load reads configuration from path. A missing file yields defaults, still
// subject to environment overrides. Paths in the result are home-expanded.
func Load(path string) (*AppConfig, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(expanded)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", expanded, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", expanded, err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) expandPaths() error {
	for _, p := range []*string{&c.Log.Dir, &c.Backup.Dir, &c.Export.Path} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding path %s: %w", *p, err)
		}
		*p = expanded
	}
	if c.IsPostgres() || c.Database == constants.KeyringDatabase {
		return nil
	}
	expanded, err := homedir.Expand(c.Database)
	if err != nil {
		return fmt.Errorf("expanding database path %s: %w", c.Database, err)
	}
	c.Database = expanded
	return nil
}

// IsPostgres reports whether Database names a PostgreSQL server.
func (c *AppConfig) IsPostgres() bool {
	return strings.HasPrefix(c.Database, "postgres://") || strings.HasPrefix(c.Database, "postgresql://")
}

// Save writes cfg as YAML to path, creating parent directories if needed.
func Save(path string, cfg *AppConfig) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expanding config path %s: %w", path, err)
	}
	dir := filepath.Dir(expanded)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("database", cfg.Database)
	v.Set("debug", cfg.Debug)
	v.Set("log.dir", cfg.Log.Dir)
	v.Set("backup.dir", cfg.Backup.Dir)
	v.Set("backup.keep", cfg.Backup.Keep)
	v.Set("export.path", cfg.Export.Path)
	v.Set("seed.on_init", cfg.Seed.OnInit)
	v.Set("journal.greeting", cfg.Journal.Greeting)

	if err := v.WriteConfigAs(expanded); err != nil {
		return fmt.Errorf("writing config to %s: %w", expanded, err)
	}
	return nil
}
