package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/julianstephens/wellbeing/internal/models"
)

const day = 86400

func ids(entries []models.Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddEntryTrimsAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	pid, _ := store.AddPrompt(ctx, "Gratitude", "")

	id, err := store.AddEntry(ctx, 1_700_000_000, "  thankful for rain\n", pid)
	if err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}

	e, err := store.GetEntry(ctx, id)
	if err != nil {
		t.Fatalf("GetEntry() failed: %v", err)
	}
	want := models.Entry{ID: id, CreatedAt: 1_700_000_000, Text: "thankful for rain", PromptRef: pid}
	if e != want {
		t.Errorf("GetEntry() = %+v, want %+v", e, want)
	}
}

func TestAddEntryMissingPrompt(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.AddEntry(ctx, 100, "orphan", 999)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("AddEntry() error = %v, want ErrConstraintViolation", err)
	}

	entries, err := store.ListEntries(ctx, Ascending)
	if err != nil {
		t.Fatalf("ListEntries() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed insert left %d entries behind", len(entries))
	}
}

func TestUpdateEntryText(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	pid, _ := store.AddPrompt(ctx, "Practice", "")
	id, _ := store.AddEntry(ctx, 100, "first", pid)

	if err := store.UpdateEntryText(ctx, id, "\t walked slowly  "); err != nil {
		t.Fatalf("UpdateEntryText() failed: %v", err)
	}
	e, _ := store.GetEntry(ctx, id)
	if e.Text != "walked slowly" {
		t.Errorf("Text = %q, want trimmed %q", e.Text, "walked slowly")
	}
	if e.CreatedAt != 100 {
		t.Errorf("UpdateEntryText() changed CreatedAt to %d", e.CreatedAt)
	}

	if err := store.UpdateEntryText(ctx, id+1, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEntryText() on missing id error = %v, want ErrNotFound", err)
	}
}

func TestUpdateEntryDateMovesBetweenDays(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	pid, _ := store.AddPrompt(ctx, "Study", "")

	const d1, d2 = 10 * day, 20 * day
	id, _ := store.AddEntry(ctx, d1+3600, "moved", pid)

	if err := store.UpdateEntryDate(ctx, id, d2); err != nil {
		t.Fatalf("UpdateEntryDate() failed: %v", err)
	}

	before, _ := store.ListEntriesForDay(ctx, d1)
	after, _ := store.ListEntriesForDay(ctx, d2)
	if len(before) != 0 {
		t.Errorf("entry still visible on original day: %v", ids(before))
	}
	if !equalIDs(ids(after), []int64{id}) {
		t.Errorf("ListEntriesForDay(d2) = %v, want [%d]", ids(after), id)
	}

	if err := store.UpdateEntryDate(ctx, id+1, d2); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEntryDate() on missing id error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	pid, _ := store.AddPrompt(ctx, "Gratitude", "")
	id, _ := store.AddEntry(ctx, 100, "gone soon", pid)

	if err := store.DeleteEntry(ctx, id); err != nil {
		t.Fatalf("DeleteEntry() failed: %v", err)
	}
	if _, err := store.GetEntry(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEntry() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteEntry(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteEntry() error = %v, want ErrNotFound", err)
	}
}

func TestListEntriesOrdering(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	pid, _ := store.AddPrompt(ctx, "Gratitude", "")

	late, _ := store.AddEntry(ctx, 300, "late", pid)
	tieA, _ := store.AddEntry(ctx, 200, "tie a", pid)
	tieB, _ := store.AddEntry(ctx, 200, "tie b", pid)
	early, _ := store.AddEntry(ctx, 100, "early", pid)

	asc, err := store.ListEntries(ctx, Ascending)
	if err != nil {
		t.Fatalf("ListEntries(Ascending) failed: %v", err)
	}
	if want := []int64{early, tieA, tieB, late}; !equalIDs(ids(asc), want) {
		t.Errorf("ascending = %v, want %v", ids(asc), want)
	}

	desc, err := store.ListEntries(ctx, Descending)
	if err != nil {
		t.Fatalf("ListEntries(Descending) failed: %v", err)
	}
	if want := []int64{late, tieB, tieA, early}; !equalIDs(ids(desc), want) {
		t.Errorf("descending = %v, want %v", ids(desc), want)
	}
}

func TestListEntriesForPromptInRange(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	gratitude, _ := store.AddPrompt(ctx, "Gratitude", "")
	practice, _ := store.AddPrompt(ctx, "Practice", "")

	const start = 100 * day
	before, _ := store.AddEntry(ctx, start-1, "before", gratitude)
	first, _ := store.AddEntry(ctx, start, "at start", gratitude)
	other, _ := store.AddEntry(ctx, start+day, "other prompt", practice)
	last, _ := store.AddEntry(ctx, start+3*day-1, "last second", gratitude)
	end, _ := store.AddEntry(ctx, start+3*day, "at end", gratitude)

	got, err := store.ListEntriesForPromptInRange(ctx, gratitude, start, 3)
	if err != nil {
		t.Fatalf("ListEntriesForPromptInRange() failed: %v", err)
	}
	if want := []int64{first, last}; !equalIDs(ids(got), want) {
		t.Errorf("range = %v, want %v (excluded before=%d other=%d end=%d)", ids(got), want, before, other, end)
	}

	for _, e := range got {
		if e.PromptRef != gratitude {
			t.Errorf("entry %d has prompt %d, want %d", e.ID, e.PromptRef, gratitude)
		}
	}

	empty, err := store.ListEntriesForPromptInRange(ctx, gratitude, start, 0)
	if err != nil {
		t.Fatalf("ListEntriesForPromptInRange() with zero days failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("zero-day range returned %v", ids(empty))
	}
}

func TestListEntriesForDayAcrossPrompts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	gratitude, _ := store.AddPrompt(ctx, "Gratitude", "")
	study, _ := store.AddPrompt(ctx, "Study", "")

	const dayStart = 50 * day
	evening, _ := store.AddEntry(ctx, dayStart+20*3600, "evening", study)
	morning, _ := store.AddEntry(ctx, dayStart+8*3600, "morning", gratitude)
	if _, err := store.AddEntry(ctx, dayStart+day, "tomorrow", gratitude); err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}
	if _, err := store.AddEntry(ctx, dayStart-1, "yesterday", study); err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}

	got, err := store.ListEntriesForDay(ctx, dayStart)
	if err != nil {
		t.Fatalf("ListEntriesForDay() failed: %v", err)
	}
	if want := []int64{morning, evening}; !equalIDs(ids(got), want) {
		t.Errorf("ListEntriesForDay() = %v, want %v", ids(got), want)
	}
}

func TestEmptyListsAreNotNil(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	entries, err := store.ListEntriesForDay(ctx, 0)
	if err != nil {
		t.Fatalf("ListEntriesForDay() failed: %v", err)
	}
	if entries == nil {
		t.Error("ListEntriesForDay() returned nil slice")
	}
}
