// Package calendar renders a month grid with marked, current and selected
// days.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	HasEntry   bool
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowTitle     bool
	ShowHeader    bool
}

// Month is everything needed to draw one month.
type Month struct {
	Year  int
	Month time.Month
	// Marked lists days of the month that have entries.
	Marked map[int]bool
	// Today and Selected are zero when they fall outside the month.
	Today    int
	Selected int
}

// Render produces a multi-line calendar string for m.
func Render(m Month, opts Options) string {
	if m.Year == 0 || m.Month == 0 {
		return ""
	}

	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := DaysIn(m.Year, m.Month)

	var lines []string
	if opts.ShowTitle {
		title := fmt.Sprintf("%s %d", m.Month, m.Year)
		lines = append(lines, opts.TitleStyle.Render(center(title, 20)))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day > daysInMonth {
				break
			}
			if day < 1 {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			info := Day{
				Day:        day,
				HasEntry:   m.Marked[day],
				IsToday:    day == m.Today,
				IsSelected: day == m.Selected,
			}
			cells = append(cells, renderDay(info, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, opts Options) string {
	text := fmt.Sprintf("%2d", info.Day)

	style := opts.EmptyStyle
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.IsToday {
		style = opts.TodayStyle.Inherit(style)
	}
	if info.IsSelected {
		style = opts.SelectedStyle.Inherit(style)
	}
	return style.Render(text)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(s)-pad)
}

// DaysIn returns the number of days in a month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	entry := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	today := lipgloss.NewStyle().Underline(true)
	selected := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	return Options{
		TitleStyle:    title,
		HeaderStyle:   header,
		EmptyStyle:    empty,
		EntryStyle:    entry,
		TodayStyle:    today,
		SelectedStyle: selected,
		ShowTitle:     true,
		ShowHeader:    true,
	}
}

// PlainOptions renders without any styling, which keeps output comparable
// in tests and on dumb terminals.
func PlainOptions() Options {
	plain := lipgloss.NewStyle()
	return Options{
		TitleStyle:    plain,
		HeaderStyle:   plain,
		EmptyStyle:    plain,
		EntryStyle:    plain,
		TodayStyle:    plain,
		SelectedStyle: plain,
		ShowTitle:     true,
		ShowHeader:    true,
	}
}
