package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellbeing/internal/constants"
	apperrors "github.com/julianstephens/wellbeing/internal/errors"
	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/models"
	"github.com/julianstephens/wellbeing/internal/tui/components/entries"
	"github.com/julianstephens/wellbeing/internal/viewstate"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case loadedMsg:
		return m.handleLoaded(msg)

	case mutatedMsg:
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.notice = msg.notice
		return m, m.load(false)

	case entries.EditEntryMsg:
		m.session = constants.StateEdit
		m.editing = msg.Entry
		m.composer.SetValue(msg.Entry.Text)
		cmd := m.composer.Focus()
		return m, cmd

	case entries.DeleteEntryMsg:
		m.session = constants.StateConfirmDelete
		m.deleting = msg.Entry
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.session {
		case constants.StateCompose, constants.StateEdit:
			return m.updateComposer(msg)
		case constants.StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.session == constants.StateCompose || m.session == constants.StateEdit {
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.handleError(msg.err)
	}
	if msg.initial && msg.state != m.state {
		// The user navigated before the first load finished. Loads already
		// in flight were issued without a prompt.
		m.state.PromptID = msg.state.PromptID
		return m, m.load(false)
	}
	if msg.state != m.state {
		return m, nil
	}

	m.loaded = true
	m.prompts = msg.prompts
	m.reminders = msg.reminders
	m.marks = msg.marks
	m.entries.SetEntries(msg.entries, m.state.EntryLabels(msg.entries, msg.prompts, m.now()))
	return m, nil
}

// handleError shows recoverable errors as a notice and reloads. Anything
// else ends the session.
func (m Model) handleError(err error) (tea.Model, tea.Cmd) {
	if apperrors.IsRecoverable(err) {
		logger.Warn("tui action rejected", "error", err)
		m.notice = apperrors.Notice(err)
		return m, m.load(false)
	}
	logger.Error("tui store failure", "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state.ToggleMode()
	case key.Matches(msg, m.keys.PrevDay):
		m.state.PrevDay()
	case key.Matches(msg, m.keys.NextDay):
		m.state.NextDay()
	case key.Matches(msg, m.keys.PrevMonth):
		m.state.PrevMonth()
	case key.Matches(msg, m.keys.NextMonth):
		m.state.NextMonth()
	case key.Matches(msg, m.keys.Today):
		m.state.Today(m.now())
	case key.Matches(msg, m.keys.NextPrompt):
		m.cyclePrompt(1)
	case key.Matches(msg, m.keys.PrevPrompt):
		m.cyclePrompt(-1)
	case key.Matches(msg, m.keys.Add):
		return m.startCompose("")
	case key.Matches(msg, m.keys.Greeting):
		return m.startCompose(m.greeting)
	default:
		var cmd tea.Cmd
		m.entries, cmd = m.entries.Update(msg)
		return m, cmd
	}
	return m, m.load(false)
}

func (m Model) startCompose(initial string) (tea.Model, tea.Cmd) {
	if !m.state.HasPrompt() {
		m.notice = apperrors.Notice(viewstate.ErrNoPromptSelected)
		return m, nil
	}
	m.session = constants.StateCompose
	m.composer.SetValue(initial)
	cmd := m.composer.Focus()
	return m, cmd
}

func (m Model) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.closeComposer(), nil
	case key.Matches(msg, m.keys.ToggleHi):
		m.composer.SetValue(viewstate.ToggleGreeting(m.composer.Value(), m.greeting))
		return m, nil
	case key.Matches(msg, m.keys.Save):
		text := strings.TrimSpace(m.composer.Value())
		if text == "" {
			m.notice = "Entry text cannot be empty"
			return m, nil
		}
		session, editing := m.session, m.editing
		m = m.closeComposer()
		if session == constants.StateEdit {
			return m, m.updateEntry(editing.ID, text)
		}
		return m, m.addEntry(text)
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m Model) closeComposer() Model {
	m.session = constants.StateBrowse
	m.editing = models.Entry{}
	m.composer.Reset()
	m.composer.Blur()
	return m
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.deleting.ID
		m.session = constants.StateBrowse
		m.deleting = models.Entry{}
		return m, m.deleteEntry(id)
	case key.Matches(msg, m.keys.Deny):
		m.session = constants.StateBrowse
		m.deleting = models.Entry{}
	}
	return m, nil
}

func (m *Model) resize() {
	w := m.width - calendarWidth - 10
	if w < 30 {
		w = 30
	}
	m.composer.SetWidth(w)
	h := m.height - 16
	if h < 3 {
		h = 3
	}
	m.entries.SetSize(w, h)
}
