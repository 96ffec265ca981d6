package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/models"
	"github.com/julianstephens/wellbeing/internal/storage"
	"github.com/julianstephens/wellbeing/internal/viewstate"
)

type EntryCmd struct {
	Add    EntryAddCmd    `cmd:"" help:"Write a journal entry."`
	Show   EntryShowCmd   `cmd:"" help:"Show an entry."`
	Edit   EntryEditCmd   `cmd:"" help:"Replace an entry's text."`
	Date   EntryDateCmd   `cmd:"" help:"Move an entry to another date."`
	Delete EntryDeleteCmd `cmd:"" help:"Delete an entry."`
	List   EntryListCmd   `cmd:"" help:"List all entries." default:"1"`
}

type EntryAddCmd struct {
	Text     []string `arg:"" help:"Entry text."`
	Prompt   string   `short:"p" help:"Prompt id or title. Defaults to the first active prompt."`
	Date     string   `short:"d" help:"Date to file the entry under (YYYY-MM-DD). Defaults to today."`
	Greeting bool     `short:"g" help:"Prefix the entry with the configured greeting."`
}

func (c *EntryAddCmd) Run(ctx *Context) error {
	state := viewstate.New(ctx.now(), ctx.loc())

	if c.Prompt != "" {
		p, err := resolvePrompt(ctx, c.Prompt)
		if err != nil {
			return err
		}
		state.SelectPrompt(p.ID)
	} else if err := state.Init(ctx.background(), ctx.Store); err != nil {
		return err
	}

	if c.Date != "" {
		d, err := viewstate.ParseDate(c.Date)
		if err != nil {
			return err
		}
		state.SelectDate(d)
	}

	text := joinText(c.Text)
	if c.Greeting {
		text = viewstate.ToggleGreeting(text, ctx.greeting())
	}
	if text == "" {
		return fmt.Errorf("entry text cannot be empty")
	}

	id, err := state.AddEntry(ctx.background(), ctx.Store, text, ctx.now())
	if err != nil {
		return err
	}
	ctx.printf("✓ Added entry %d on %s\n", id, state.Date)
	return nil
}

type EntryShowCmd struct {
	ID int64 `arg:"" help:"Entry id."`
}

func (c *EntryShowCmd) Run(ctx *Context) error {
	e, err := ctx.Store.GetEntry(ctx.background(), c.ID)
	if err != nil {
		return err
	}
	p, err := ctx.Store.GetPrompt(ctx.background(), e.PromptRef)
	if err != nil {
		return err
	}

	ctx.printf("#%d  %s  %s\n\n", e.ID, e.Time(ctx.loc()).Format(constants.DateTimeFormat), p.Title)
	ctx.println(e.Text)
	return nil
}

type EntryEditCmd struct {
	ID   int64    `arg:"" help:"Entry id."`
	Text []string `arg:"" help:"New entry text."`
}

func (c *EntryEditCmd) Run(ctx *Context) error {
	text := joinText(c.Text)
	if text == "" {
		return fmt.Errorf("entry text cannot be empty")
	}
	if err := ctx.Store.UpdateEntryText(ctx.background(), c.ID, text); err != nil {
		return err
	}
	ctx.printf("✓ Updated entry %d\n", c.ID)
	return nil
}

type EntryDateCmd struct {
	ID   int64  `arg:"" help:"Entry id."`
	When string `arg:"" help:"New date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)."`
}

func (c *EntryDateCmd) Run(ctx *Context) error {
	ts, err := parseTimestamp(c.When, ctx.loc())
	if err != nil {
		return err
	}
	if err := ctx.Store.UpdateEntryDate(ctx.background(), c.ID, ts); err != nil {
		return err
	}
	ctx.printf("✓ Moved entry %d to %s\n", c.ID, time.Unix(ts, 0).In(ctx.loc()).Format(constants.DateTimeFormat))
	return nil
}

type EntryDeleteCmd struct {
	ID  int64 `arg:"" help:"Entry id."`
	Yes bool  `short:"y" help:"Skip the confirmation."`
}

func (c *EntryDeleteCmd) Run(ctx *Context) error {
	e, err := ctx.Store.GetEntry(ctx.background(), c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.confirm(fmt.Sprintf("Delete entry %d?", e.ID), truncate(e.Text, 60))
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteEntry(ctx.background(), e.ID); err != nil {
		return err
	}
	ctx.printf("✓ Deleted entry %d\n", e.ID)
	return nil
}

type EntryListCmd struct {
	Desc bool `help:"Newest first."`
}

func (c *EntryListCmd) Run(ctx *Context) error {
	order := storage.Ascending
	if c.Desc {
		order = storage.Descending
	}

	entries, err := ctx.Store.ListEntries(ctx.background(), order)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.println("No entries yet.")
		return nil
	}

	prompts, err := ctx.Store.ListPrompts(ctx.background())
	if err != nil {
		return err
	}
	printEntries(ctx, entries, viewstate.DailyLabels(entries, prompts), true)
	return nil
}

// printEntries writes one row per entry. withDate adds the timestamp column.
func printEntries(ctx *Context, entries []models.Entry, labels []string, withDate bool) {
	table := newTable("ID", "LABEL", "TEXT")
	if withDate {
		table = newTable("ID", "WHEN", "PROMPT", "TEXT")
	}
	for i, e := range entries {
		if withDate {
			table.AddRow(e.ID, e.Time(ctx.loc()).Format(constants.DateTimeFormat), labels[i], truncate(e.Text, 60))
			continue
		}
		table.AddRow(e.ID, labels[i], truncate(e.Text, 60))
	}
	ctx.println(table)
}
