package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/viewstate"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *DayCmd) Run(ctx *Context) error {
	state := viewstate.New(ctx.now(), ctx.loc())
	if c.Date != "" {
		d, err := viewstate.ParseDate(c.Date)
		if err != nil {
			return err
		}
		state.SelectDate(d)
	}
	return showState(ctx, state)
}

type MonthCmd struct {
	Prompt string `short:"p" help:"Prompt id or title. Defaults to the first active prompt."`
	Month  string `short:"m" help:"Month to show (YYYY-MM). Defaults to this month."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	state := viewstate.New(ctx.now(), ctx.loc())
	state.SetMode(viewstate.MonthlyPromptView)

	if c.Prompt != "" {
		p, err := resolvePrompt(ctx, c.Prompt)
		if err != nil {
			return err
		}
		state.SelectPrompt(p.ID)
	} else if err := state.Init(ctx.background(), ctx.Store); err != nil {
		return err
	}
	if !state.HasPrompt() {
		return viewstate.ErrNoPromptSelected
	}

	if c.Month != "" {
		t, err := time.Parse(constants.MonthFormat, c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM): %w", c.Month, err)
		}
		state.ShowMonth(t.Year(), t.Month())
	}
	return showState(ctx, state)
}

func showState(ctx *Context, state viewstate.State) error {
	prompts, err := ctx.Store.ListPrompts(ctx.background())
	if err != nil {
		return err
	}
	entries, err := state.Visible(ctx.background(), ctx.Store)
	if err != nil {
		return err
	}

	heading := state.Heading(prompts)
	switch state.Mode {
	case viewstate.MonthlyPromptView:
		ctx.printf("%s  %s %d\n\n", heading, state.Month, state.Year)
	default:
		ctx.printf("%s  %s\n\n", heading, state.Date)
	}

	if len(entries) == 0 {
		ctx.println("No entries.")
		return nil
	}
	printEntries(ctx, entries, state.EntryLabels(entries, prompts, ctx.now()), false)
	return nil
}
