package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/tui/components/calendar"
	"github.com/julianstephens/wellbeing/internal/viewstate"
)

const calendarWidth = 20

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.loaded {
		return docStyle.Render("Loading journal...")
	}

	var main string
	switch m.session {
	case constants.StateCompose, constants.StateEdit:
		main = m.viewComposer()
	case constants.StateConfirmDelete:
		main = m.viewConfirmDelete()
	default:
		main = m.viewEntries()
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		paneStyle.Render(m.viewCalendar()),
		paneStyle.Render(m.viewReminders()),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, paneStyle.Render(main))

	parts := []string{m.viewTabs(), body}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, m.help.View(m.helpKeys()))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, mode := range []viewstate.Mode{viewstate.DailyOverview, viewstate.MonthlyPromptView} {
		title := "Daily"
		if mode == viewstate.MonthlyPromptView {
			title = "Monthly"
		}
		if m.state.Mode == mode {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCalendar() string {
	month := calendar.Month{
		Year:   m.state.Year,
		Month:  m.state.Month,
		Marked: m.marks,
	}

	today := viewstate.DateOf(m.now().In(m.state.Location))
	if today.Year == month.Year && today.Month == month.Month {
		month.Today = today.Day
	}
	if m.state.Date.Year == month.Year && m.state.Date.Month == month.Month {
		month.Selected = m.state.Date.Day
	}
	return calendar.Render(month, calendar.DefaultOptions())
}

func (m Model) viewReminders() string {
	if len(m.reminders) == 0 {
		return subtleStyle.Render("No reminders")
	}
	lines := make([]string, 0, len(m.reminders)*2)
	for _, r := range m.reminders {
		lines = append(lines, reminderStyle.Render(r.Title))
		if r.Body != "" {
			lines = append(lines, lipgloss.NewStyle().Width(calendarWidth).Render(r.Body))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHeading() string {
	heading := headingStyle.Render(m.state.Heading(m.prompts))
	switch m.state.Mode {
	case viewstate.MonthlyPromptView:
		heading += subtleStyle.Render(fmt.Sprintf("  %s %d", m.state.Month, m.state.Year))
		if p, ok := m.activePrompt(); ok && p.Body != "" {
			heading += "\n" + subtleStyle.Render(p.Body)
		}
	default:
		heading += subtleStyle.Render("  " + m.state.Date.String())
		if p, ok := m.activePrompt(); ok {
			heading += "\n" + subtleStyle.Render("Writing to: "+p.Title)
		}
	}
	return heading
}

func (m Model) viewEntries() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeading(), "", m.entries.View())
}

func (m Model) viewComposer() string {
	title := "New entry"
	if m.session == constants.StateEdit {
		title = fmt.Sprintf("Editing entry %d", m.editing.ID)
	} else if p, ok := m.activePrompt(); ok {
		title = fmt.Sprintf("New entry for %s on %s", p.Title, m.state.Date)
	}
	return lipgloss.JoinVertical(lipgloss.Left, headingStyle.Render(title), "", m.composer.View())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render("Are you sure you want to delete this entry?"),
		"",
		subtleStyle.Render(m.deleting.Text),
		"",
		"[y] Yes",
		"[n] No",
	)
}
