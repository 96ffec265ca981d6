// Package tui is the interactive journal: a month calendar, the entries the
// view-state selects and a composer.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellbeing/internal/storage"
)

// Run blocks until the user quits. A store failure that ended the session
// is returned.
func Run(ctx context.Context, store storage.Provider, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, store, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
