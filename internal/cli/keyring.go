package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/wellbeing/internal/keyring"
	"github.com/julianstephens/wellbeing/internal/storage"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
}

type KeyringSetCmd struct {
	ConnString string `arg:"" help:"PostgreSQL connection string."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if _, err := storage.ValidateConnString(c.ConnString); err != nil {
		if !errors.Is(err, storage.ErrEmbeddedCredentials) {
			return fmt.Errorf("refusing to store connection string: %w", err)
		}
		ctx.println("⚠️  Connection string contains a password. It is stored as-is in the OS keyring.")
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	ctx.println("✓ Connection string stored in the OS keyring.")
	ctx.println("  Set 'database: keyring' in the config to use it.")
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			ctx.println("No connection string stored.")
			return nil
		}
		return err
	}
	ctx.println("✓ Connection string removed from the OS keyring.")
	return nil
}
