// Package seed fills an empty store with a small example journal.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/models"
)

// Repository is the subset of storage used for seeding.
type Repository interface {
	ListPrompts(ctx context.Context) ([]models.Prompt, error)
	AddPrompt(ctx context.Context, title, body string) (int64, error)
	AddEntry(ctx context.Context, createdAt int64, text string, promptID int64) (int64, error)
	AddReminder(ctx context.Context, title, body string) (int64, error)
}

type Prompt struct {
	Title string
	Body  string
}

type Entry struct {
	// DaysAgo is subtracted from the seeding time.
	DaysAgo int
	// Prompt indexes into Prompts.
	Prompt int
	Text   string
}

type Reminder struct {
	Title string
	Body  string
}

var Prompts = []Prompt{
	{"Gratitude", "What positive things came my way today? What did I do to water the seeds of joy in myself today?"},
	{"Practice", "What practices did I do today? Sitting meditation? Walking meditation? Gathas?"},
	{"Livelihood", "How did I contribute today to the well-being of others? On a personal plane? In a long-term way?"},
	{"Study", "What did I read and listen to today and learn? Professionally? Dharma?"},
}

const (
	gratitude = iota
	practice
	livelihood
	study
)

var Entries = []Entry{
	{0, practice, "Dear Buddha, today I was practicing sitting meditation before meeting a friend of mine to be able to be more present during our meeting"},
	{0, gratitude, "Dear Buddha, I'm grateful for being able to breathe!"},
	{1, practice, "Most difficult today was my negative thinking, practicing with this by changing the peg from negative thoughts to positive thinking"},
	{7, gratitude, "Grateful for having a place to live, a roof over my head, food to eat, and people to care for"},
	{7, gratitude, "Grateful for the blue sky and the white clouds"},
	{3, study, "Dear Buddha, today I read about the four foundations of mindfulness. Some important parts: 1. Body 2. Feelings 3. Mind 4. Objects of mind"},
	{4, livelihood, "Programming and working on the journal application"},
	{0, practice, "Lecture by Tara Brach - Namaste. Soul recognition: Seeing (1) the vulnerability in ourselves and others, (2) the goodness, and (3) the consciousness."},
}

var Reminders = []Reminder{
	{"Inter-being", "All things in the universe inter-are, our suffering and happiness inter-is with the suffering and happiness of others"},
	{"No Mud, no lotus", "A lotus flower cannot grow on marble!"},
}

// Result reports what Apply inserted.
type Result struct {
	Prompts   int
	Entries   int
	Reminders int
	// Skipped is set when the store already held prompts.
	Skipped bool
}

// Apply inserts the example journal relative to now. It does nothing when
// the store already has prompts.
func Apply(ctx context.Context, repo Repository, now time.Time) (Result, error) {
	existing, err := repo.ListPrompts(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check existing prompts: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("seed skipped, store not empty", "prompts", len(existing))
		return Result{Skipped: true}, nil
	}

	var res Result
	promptIDs := make([]int64, len(Prompts))
	for i, p := range Prompts {
		id, err := repo.AddPrompt(ctx, p.Title, p.Body)
		if err != nil {
			return res, fmt.Errorf("failed to seed prompt %q: %w", p.Title, err)
		}
		promptIDs[i] = id
		res.Prompts++
	}

	for _, e := range Entries {
		ts := now.Unix() - int64(e.DaysAgo)*constants.SecondsPerDay
		if _, err := repo.AddEntry(ctx, ts, e.Text, promptIDs[e.Prompt]); err != nil {
			return res, fmt.Errorf("failed to seed entry: %w", err)
		}
		res.Entries++
	}

	for _, r := range Reminders {
		if _, err := repo.AddReminder(ctx, r.Title, r.Body); err != nil {
			return res, fmt.Errorf("failed to seed reminder %q: %w", r.Title, err)
		}
		res.Reminders++
	}

	logger.Info("seeded example journal", "prompts", res.Prompts, "entries", res.Entries, "reminders", res.Reminders)
	return res, nil
}
