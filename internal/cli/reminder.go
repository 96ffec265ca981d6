package cli

import (
	"fmt"
	"strings"
)

type ReminderCmd struct {
	Add    ReminderAddCmd    `cmd:"" help:"Add a reminder."`
	List   ReminderListCmd   `cmd:"" help:"List reminders." default:"1"`
	Delete ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
}

type ReminderAddCmd struct {
	Title string   `arg:"" help:"Reminder title."`
	Body  []string `arg:"" optional:"" help:"Reminder text."`
}

func (c *ReminderAddCmd) Run(ctx *Context) error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return fmt.Errorf("reminder title cannot be empty")
	}

	id, err := ctx.Store.AddReminder(ctx.background(), title, joinText(c.Body))
	if err != nil {
		return err
	}
	ctx.printf("✓ Added reminder %d: %s\n", id, title)
	return nil
}

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *Context) error {
	reminders, err := ctx.Store.ListReminders(ctx.background())
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		ctx.println("No reminders yet.")
		return nil
	}

	table := newTable("ID", "TITLE", "BODY")
	for _, r := range reminders {
		table.AddRow(r.ID, r.Title, r.Body)
	}
	ctx.println(table)
	return nil
}

type ReminderDeleteCmd struct {
	ID  int64 `arg:"" help:"Reminder id."`
	Yes bool  `short:"y" help:"Skip the confirmation."`
}

func (c *ReminderDeleteCmd) Run(ctx *Context) error {
	r, err := ctx.Store.GetReminder(ctx.background(), c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.confirm(fmt.Sprintf("Delete reminder %q?", r.Title), truncate(r.Body, 60))
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteReminder(ctx.background(), r.ID); err != nil {
		return err
	}
	ctx.printf("✓ Deleted reminder %d\n", r.ID)
	return nil
}
