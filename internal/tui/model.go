package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/models"
	"github.com/julianstephens/wellbeing/internal/storage"
	"github.com/julianstephens/wellbeing/internal/tui/components/entries"
	"github.com/julianstephens/wellbeing/internal/viewstate"
)

// Options configures a Model.
type Options struct {
	Greeting string
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

type Model struct {
	ctx      context.Context
	store    storage.Provider
	state    viewstate.State
	session  constants.SessionState
	keys     KeyMap
	help     help.Model
	entries  entries.Model
	composer textarea.Model
	greeting string
	now      func() time.Time

	prompts   []models.Prompt
	reminders []models.Reminder
	marks     map[int]bool
	loaded    bool

	editing  models.Entry
	deleting models.Entry
	notice   string
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(ctx context.Context, store storage.Provider, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	ta := textarea.New()
	ta.Placeholder = "Write your entry..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(6)

	return Model{
		ctx:      ctx,
		store:    store,
		state:    viewstate.New(now(), loc),
		session:  constants.StateBrowse,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		entries:  entries.New(60, 10),
		composer: ta,
		greeting: opts.Greeting,
		now:      now,
		marks:    map[int]bool{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.load(true)
}

// State returns the current view-state.
func (m Model) State() viewstate.State {
	return m.state
}

// Err returns the store error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) helpKeys() help.KeyMap {
	switch m.session {
	case constants.StateCompose, constants.StateEdit:
		return composeKeys{m.keys}
	case constants.StateConfirmDelete:
		return confirmKeys{m.keys}
	default:
		return m.keys
	}
}

func (m Model) activePrompts() []models.Prompt {
	active := make([]models.Prompt, 0, len(m.prompts))
	for _, p := range m.prompts {
		if !p.Archived {
			active = append(active, p)
		}
	}
	return active
}

func (m Model) activePrompt() (models.Prompt, bool) {
	for _, p := range m.prompts {
		if p.ID == m.state.PromptID {
			return p, true
		}
	}
	return models.Prompt{}, false
}

// cyclePrompt moves the selection through non-archived prompts, wrapping
// at either end.
func (m *Model) cyclePrompt(step int) {
	active := m.activePrompts()
	if len(active) == 0 {
		m.state.ClearPrompt()
		return
	}

	idx := -1
	for i, p := range active {
		if p.ID == m.state.PromptID {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(active) - 1
	default:
		idx = (idx + step + len(active)) % len(active)
	}
	m.state.SelectPrompt(active[idx].ID)
}
