package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/wellbeing/internal/config"
	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/keyring"
	"github.com/julianstephens/wellbeing/internal/models"
	"github.com/julianstephens/wellbeing/internal/storage"
)

// Context is bound into every kong command.
type Context struct {
	Ctx    context.Context
	Store  storage.Provider
	Config *config.AppConfig
	// ConfigPath is where init writes Config when no file exists yet.
	ConfigPath string
	Out        io.Writer
	Now        func() time.Time
	Location   *time.Location
	// Confirm asks a yes/no question. Tests replace it.
	Confirm func(title, description string) (bool, error)
}

// NewContext wires a Context for a terminal session.
func NewContext(store storage.Provider, cfg *config.AppConfig) *Context {
	return &Context{
		Ctx:      context.Background(),
		Store:    store,
		Config:   cfg,
		Out:      os.Stdout,
		Now:      time.Now,
		Location: time.Local,
		Confirm:  huhConfirm,
	}
}

// NewStore builds the store named by cfg.Database. The "keyring" marker is
// replaced by the connection string held in the OS keyring. SQLite stores
// snapshot into cfg.Backup before upgrading.
func NewStore(cfg *config.AppConfig) (*storage.Store, error) {
	if cfg.Database != constants.KeyringDatabase {
		store, err := storage.New(cfg.Database)
		if err != nil {
			return nil, err
		}
		if store.Kind() == storage.KindSQLite {
			store.SetBackupOptions(backupOptions(cfg))
		}
		return store, nil
	}
	connStr, err := keyring.Resolve(cfg.Database)
	if err != nil {
		return nil, err
	}
	return storage.NewKeyringPostgresStore(connStr)
}

func huhConfirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (c *Context) background() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now().In(c.loc())
	}
	return c.Now().In(c.loc())
}

func (c *Context) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) confirm(title, description string) (bool, error) {
	if c.Confirm == nil {
		return huhConfirm(title, description)
	}
	return c.Confirm(title, description)
}

func (c *Context) greeting() string {
	if c.Config == nil {
		return constants.DefaultGreeting
	}
	return c.Config.Journal.Greeting
}

func newTable(headers ...interface{}) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow(headers...)
	return table
}

func joinText(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}

// parseTimestamp accepts YYYY-MM-DD (midnight) or YYYY-MM-DDTHH:MM in loc.
func parseTimestamp(s string, loc *time.Location) (int64, error) {
	for _, layout := range []string{constants.DateTimeFormat, constants.DateFormat} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or YYYY-MM-DDTHH:MM)", s)
}

// resolvePrompt accepts an id or a case-insensitive title.
func resolvePrompt(ctx *Context, ref string) (models.Prompt, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return ctx.Store.GetPrompt(ctx.background(), id)
	}

	prompts, err := ctx.Store.ListPrompts(ctx.background())
	if err != nil {
		return models.Prompt{}, err
	}
	for _, p := range prompts {
		if strings.EqualFold(p.Title, ref) {
			return p, nil
		}
	}
	return models.Prompt{}, fmt.Errorf("prompt %q: %w", ref, storage.ErrNotFound)
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
