package viewstate

import (
	"context"
	"strings"
	"time"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/models"
)

const (
	recentLabelFormat = "Monday"
	olderLabelFormat  = "Mon 2 Jan"
	todayLabel        = "Today"
)

// EntryQuerier is the storage needed to compute visible entries.
type EntryQuerier interface {
	ListEntriesForPromptInRange(ctx context.Context, promptID int64, start int64, days int) ([]models.Entry, error)
	ListEntriesForDay(ctx context.Context, dayStart int64) ([]models.Entry, error)
}

// EntryAdder is the storage needed to add an entry for the session.
type EntryAdder interface {
	AddEntry(ctx context.Context, createdAt int64, text string, promptID int64) (int64, error)
}

// Visible returns the entries the state selects, oldest first. The monthly
// view without a selected prompt is empty and issues no query.
func (s State) Visible(ctx context.Context, repo EntryQuerier) ([]models.Entry, error) {
	switch s.Mode {
	case MonthlyPromptView:
		if !s.HasPrompt() {
			return []models.Entry{}, nil
		}
		start, days := s.MonthRange()
		return repo.ListEntriesForPromptInRange(ctx, s.PromptID, start, days)
	default:
		return repo.ListEntriesForDay(ctx, s.DayStart())
	}
}

// Labels computes the monthly view's date column. Entries within the last
// week of now get the full weekday name, older ones the abbreviated weekday
// and date. A label equal to the one before it is blanked. Otherwise an entry
// on now's calendar day reads "Today".
func Labels(entries []models.Entry, now time.Time, loc *time.Location) []string {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	cutoff := now.Unix() - constants.RecentWindowDays*constants.SecondsPerDay
	today := DateOf(now)

	labels := make([]string, len(entries))
	previous := ""
	for i, e := range entries {
		t := e.Time(loc)
		format := recentLabelFormat
		if e.CreatedAt < cutoff {
			format = olderLabelFormat
		}
		key := t.Format(format)

		switch {
		case key == previous:
			labels[i] = ""
		case DateOf(t) == today:
			labels[i] = todayLabel
		default:
			labels[i] = key
		}
		previous = key
	}
	return labels
}

// DailyLabels labels each entry with its prompt's title.
func DailyLabels(entries []models.Entry, prompts []models.Prompt) []string {
	titles := make(map[int64]string, len(prompts))
	for _, p := range prompts {
		titles[p.ID] = p.Title
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = titles[e.PromptRef]
	}
	return labels
}

// EntryLabels picks the label scheme for the state's mode.
func (s State) EntryLabels(entries []models.Entry, prompts []models.Prompt, now time.Time) []string {
	if s.Mode == MonthlyPromptView {
		return Labels(entries, now, s.loc())
	}
	return DailyLabels(entries, prompts)
}

// Heading names what is on screen: the active prompt's title in the monthly
// view, or "Daily Overview".
func (s State) Heading(prompts []models.Prompt) string {
	if s.Mode == DailyOverview {
		return "Daily Overview"
	}
	for _, p := range prompts {
		if p.ID == s.PromptID {
			return p.Title
		}
	}
	return "No prompt selected"
}

// NewEntryTimestamp returns now when the active date is today, otherwise
// midnight of the active date.
func (s State) NewEntryTimestamp(now time.Time) int64 {
	if s.IsToday(now) {
		return now.Unix()
	}
	return s.DayStart()
}

// AddEntry stores text against the active prompt at NewEntryTimestamp.
func (s State) AddEntry(ctx context.Context, repo EntryAdder, text string, now time.Time) (int64, error) {
	if !s.HasPrompt() {
		return 0, ErrNoPromptSelected
	}
	return repo.AddEntry(ctx, s.NewEntryTimestamp(now), text, s.PromptID)
}

// ToggleGreeting prefixes text with greeting, or removes it if already there.
func ToggleGreeting(text, greeting string) string {
	if greeting == "" {
		return text
	}
	if strings.HasPrefix(text, greeting) {
		return strings.TrimPrefix(text, greeting)
	}
	return greeting + text
}
