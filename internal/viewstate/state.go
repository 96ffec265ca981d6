// Package viewstate holds what the journal is currently showing and derives
// the visible entries from it.
//
// A State is a plain value. Shells own one, mutate it through the transition
// methods and ask Visible for the entries to render.
package viewstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/models"
)

// Mode selects which entries are visible.
type Mode int

const (
	// DailyOverview shows every entry on the active date.
	DailyOverview Mode = iota
	// MonthlyPromptView shows the active prompt's entries for the shown month.
	MonthlyPromptView
)

func (m Mode) String() string {
	switch m {
	case DailyOverview:
		return "daily"
	case MonthlyPromptView:
		return "monthly"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// NoPrompt means no prompt is selected.
const NoPrompt int64 = 0

// ErrNoPromptSelected is returned when an operation needs an active prompt.
var ErrNoPromptSelected = errors.New("no prompt selected")

// Date is a calendar date with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays returns the date n days later, normalising across months.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// Midnight returns the unix time at the start of d in loc.
func Midnight(d Date, loc *time.Location) int64 {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc).Unix()
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// State is the complete view-state of a session.
type State struct {
	Mode     Mode
	Date     Date
	PromptID int64
	// Month and Year are the month the calendar shows. They page
	// independently of Date.
	Month    time.Month
	Year     int
	Location *time.Location
}

// New returns a DailyOverview state on today's date with no prompt selected.
// A nil loc means time.Local.
func New(now time.Time, loc *time.Location) State {
	if loc == nil {
		loc = time.Local
	}
	today := DateOf(now.In(loc))
	return State{
		Mode:     DailyOverview,
		Date:     today,
		PromptID: NoPrompt,
		Month:    today.Month,
		Year:     today.Year,
		Location: loc,
	}
}

func (s State) loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// PromptLister is the storage needed to pick a default prompt.
type PromptLister interface {
	ListPrompts(ctx context.Context) ([]models.Prompt, error)
}

// Init selects the first non-archived prompt, or leaves NoPrompt when
// there is none.
func (s *State) Init(ctx context.Context, repo PromptLister) error {
	prompts, err := repo.ListPrompts(ctx)
	if err != nil {
		return err
	}
	s.PromptID = NoPrompt
	for _, p := range prompts {
		if !p.Archived {
			s.PromptID = p.ID
			break
		}
	}
	return nil
}

// HasPrompt reports whether a prompt is selected.
func (s State) HasPrompt() bool {
	return s.PromptID != NoPrompt
}

// SelectDate makes d the active date and pages the calendar to its month.
func (s *State) SelectDate(d Date) {
	s.Date = d
	s.Month = d.Month
	s.Year = d.Year
}

// ShowMonth pages the calendar without changing the active date.
func (s *State) ShowMonth(year int, month time.Month) {
	normalized := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	s.Year = normalized.Year()
	s.Month = normalized.Month()
}

func (s *State) NextMonth() { s.ShowMonth(s.Year, s.Month+1) }
func (s *State) PrevMonth() { s.ShowMonth(s.Year, s.Month-1) }

func (s *State) NextDay() { s.SelectDate(s.Date.AddDays(1)) }
func (s *State) PrevDay() { s.SelectDate(s.Date.AddDays(-1)) }

// Today selects the current date in the state's location.
func (s *State) Today(now time.Time) {
	s.SelectDate(DateOf(now.In(s.loc())))
}

func (s *State) SetMode(m Mode) { s.Mode = m }

func (s *State) ToggleMode() {
	if s.Mode == DailyOverview {
		s.Mode = MonthlyPromptView
		return
	}
	s.Mode = DailyOverview
}

func (s *State) SelectPrompt(id int64) { s.PromptID = id }
func (s *State) ClearPrompt()          { s.PromptID = NoPrompt }

// IsToday reports whether the active date is the current date.
func (s State) IsToday(now time.Time) bool {
	return s.Date == DateOf(now.In(s.loc()))
}

// MonthRange returns the start and length in days of the shown month.
func (s State) MonthRange() (int64, int) {
	start := Midnight(Date{Year: s.Year, Month: s.Month, Day: 1}, s.loc())
	return start, DaysInMonth(s.Year, s.Month)
}

// DayStart returns midnight of the active date. It reads only Date, never
// the shown month.
func (s State) DayStart() int64 {
	return Midnight(s.Date, s.loc())
}
