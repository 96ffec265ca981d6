package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/models"
	"github.com/julianstephens/wellbeing/internal/storage"
	"github.com/julianstephens/wellbeing/internal/viewstate"
)

// loadedMsg carries everything a view-state needs to render.
type loadedMsg struct {
	state     viewstate.State
	initial   bool
	prompts   []models.Prompt
	reminders []models.Reminder
	entries   []models.Entry
	marks     map[int]bool
	err       error
}

// mutatedMsg reports a finished write.
type mutatedMsg struct {
	notice string
	err    error
}

// promptSource serves an already loaded prompt list to viewstate.Init.
type promptSource []models.Prompt

func (p promptSource) ListPrompts(context.Context) ([]models.Prompt, error) {
	return p, nil
}

// load fetches the data for the current state. With initial set the first
// non-archived prompt is selected first.
func (m Model) load(initial bool) tea.Cmd {
	ctx, store, state := m.ctx, m.store, m.state
	return func() tea.Msg {
		prompts, err := store.ListPrompts(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		if initial {
			if err := state.Init(ctx, promptSource(prompts)); err != nil {
				return loadedMsg{err: err}
			}
		}

		reminders, err := store.ListReminders(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}

		visible, err := state.Visible(ctx, store)
		if err != nil {
			return loadedMsg{err: err}
		}

		marks, err := monthMarks(ctx, store, state)
		if err != nil {
			return loadedMsg{err: err}
		}

		return loadedMsg{
			state:     state,
			initial:   initial,
			prompts:   prompts,
			reminders: reminders,
			entries:   visible,
			marks:     marks,
		}
	}
}

// monthMarks returns the days of the shown month that have entries. The
// monthly view only counts the active prompt.
func monthMarks(ctx context.Context, store storage.Provider, state viewstate.State) (map[int]bool, error) {
	start, days := state.MonthRange()
	inMonth, err := store.ListEntriesInRange(ctx, start, start+int64(days)*constants.SecondsPerDay)
	if err != nil {
		return nil, err
	}

	loc := state.Location
	marks := make(map[int]bool, len(inMonth))
	for _, e := range inMonth {
		if state.Mode == viewstate.MonthlyPromptView && e.PromptRef != state.PromptID {
			continue
		}
		marks[e.Time(loc).Day()] = true
	}
	return marks, nil
}

func (m Model) addEntry(text string) tea.Cmd {
	ctx, store, state, now := m.ctx, m.store, m.state, m.now()
	return func() tea.Msg {
		id, err := state.AddEntry(ctx, store, text, now)
		if err != nil {
			return mutatedMsg{err: err}
		}
		logger.Debug("tui added entry", "id", id, "prompt", state.PromptID)
		return mutatedMsg{notice: fmt.Sprintf("Saved entry for %s", state.Date)}
	}
}

func (m Model) updateEntry(id int64, text string) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		if err := store.UpdateEntryText(ctx, id, text); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{notice: "Entry updated"}
	}
}

func (m Model) deleteEntry(id int64) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		if err := store.DeleteEntry(ctx, id); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{notice: "Entry deleted"}
	}
}
