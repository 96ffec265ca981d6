// Package entries renders the visible journal entries with their labels and
// a cursor.
package entries

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellbeing/internal/models"
)

type EditEntryMsg struct {
	Entry models.Entry
}

type DeleteEntryMsg struct {
	Entry models.Entry
}

type Item struct {
	Entry models.Entry
	Label string
}

func (i Item) FilterValue() string { return i.Entry.Text }

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// delegate draws one entry per line: cursor marker, padded label, text.
type delegate struct {
	labelWidth int
}

func (d delegate) Height() int                         { return 1 }
func (d delegate) Spacing() int                        { return 0 }
func (d delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}

	textWidth := m.Width() - d.labelWidth - 4
	if textWidth < 20 {
		textWidth = 20
	}

	marker := "  "
	text := textStyle.Render(clip(it.Entry.Text, textWidth))
	if index == m.Index() {
		marker = "> "
		text = selectedStyle.Render(clip(it.Entry.Text, textWidth))
	}
	label := labelStyle.Render(fmt.Sprintf("%-*s", d.labelWidth, it.Label))
	fmt.Fprint(w, marker+label+"  "+text)
}

// listKeys keeps only cursor movement. Paging, filtering, help and quit
// keys belong to the journal keymap.
func listKeys(k KeyMap) list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.Up,
		CursorDown:           k.Down,
		NextPage:             key.NewBinding(),
		PrevPage:             key.NewBinding(),
		GoToStart:            key.NewBinding(),
		GoToEnd:              key.NewBinding(),
		Filter:               key.NewBinding(),
		ClearFilter:          key.NewBinding(),
		CancelWhileFiltering: key.NewBinding(),
		AcceptWhileFiltering: key.NewBinding(),
		ShowFullHelp:         key.NewBinding(),
		CloseFullHelp:        key.NewBinding(),
		Quit:                 key.NewBinding(),
		ForceQuit:            key.NewBinding(),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	keys := DefaultKeyMap()

	l := list.New(nil, delegate{}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap = listKeys(keys)
	l.DisableQuitKeybindings()

	return Model{list: l, keys: keys}
}

// SetEntries replaces the rows. labels must be parallel to entries. The
// cursor stays on the same entry id when it is still visible.
func (m *Model) SetEntries(entries []models.Entry, labels []string) {
	selected, hadSelection := m.Selected()

	items := make([]list.Item, len(entries))
	labelWidth, cursor := 0, 0
	for i, e := range entries {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		if w := lipgloss.Width(label); w > labelWidth {
			labelWidth = w
		}
		if hadSelection && e.ID == selected.ID {
			cursor = i
		}
		items[i] = Item{Entry: e, Label: label}
	}

	m.list.SetDelegate(delegate{labelWidth: labelWidth})
	m.list.SetItems(items)
	m.list.Select(cursor)
}

func (m Model) Items() []Item {
	items := make([]Item, 0, len(m.list.Items()))
	for _, li := range m.list.Items() {
		if it, ok := li.(Item); ok {
			items = append(items, it)
		}
	}
	return items
}

func (m Model) Cursor() int {
	return m.list.Index()
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (models.Entry, bool) {
	it, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Entry{}, false
	}
	return it.Entry, true
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Edit):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditEntryMsg{Entry: e} }
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Delete):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{Entry: e} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return emptyStyle.Render("No entries yet. Press 'a' to write one.")
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func clip(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
