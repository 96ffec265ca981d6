package cli

import (
	"fmt"
	"strings"
)

type PromptCmd struct {
	Add     PromptAddCmd     `cmd:"" help:"Add a journal prompt."`
	List    PromptListCmd    `cmd:"" help:"List prompts." default:"1"`
	Show    PromptShowCmd    `cmd:"" help:"Show a prompt."`
	Archive PromptArchiveCmd `cmd:"" help:"Archive or unarchive a prompt."`
}

type PromptAddCmd struct {
	Title string `arg:"" help:"Prompt title."`
	Body  string `help:"Longer description shown with the prompt."`
}

func (c *PromptAddCmd) Run(ctx *Context) error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return fmt.Errorf("prompt title cannot be empty")
	}

	id, err := ctx.Store.AddPrompt(ctx.background(), title, strings.TrimSpace(c.Body))
	if err != nil {
		return err
	}
	ctx.printf("✓ Added prompt %d: %s\n", id, title)
	return nil
}

type PromptListCmd struct {
	All bool `help:"Include archived prompts."`
}

func (c *PromptListCmd) Run(ctx *Context) error {
	prompts, err := ctx.Store.ListPrompts(ctx.background())
	if err != nil {
		return err
	}

	table := newTable("ID", "TITLE", "BODY", "STATUS")
	shown := 0
	for _, p := range prompts {
		if p.Archived && !c.All {
			continue
		}
		status := "active"
		if p.Archived {
			status = "archived"
		}
		table.AddRow(p.ID, p.Title, truncate(p.Body, 50), status)
		shown++
	}

	if shown == 0 {
		ctx.println("No prompts yet. Add one with 'wellbeing prompt add <title>'.")
		return nil
	}
	ctx.println(table)
	return nil
}

type PromptShowCmd struct {
	Prompt string `arg:"" help:"Prompt id or title."`
}

func (c *PromptShowCmd) Run(ctx *Context) error {
	p, err := resolvePrompt(ctx, c.Prompt)
	if err != nil {
		return err
	}

	ctx.printf("%s (#%d)\n", p.Title, p.ID)
	if p.Archived {
		ctx.println("  archived")
	}
	if p.Body != "" {
		ctx.println()
		ctx.println(p.Body)
	}
	return nil
}

type PromptArchiveCmd struct {
	Prompt string `arg:"" help:"Prompt id or title."`
	Undo   bool   `help:"Unarchive instead."`
}

func (c *PromptArchiveCmd) Run(ctx *Context) error {
	p, err := resolvePrompt(ctx, c.Prompt)
	if err != nil {
		return err
	}
	if err := ctx.Store.SetPromptArchived(ctx.background(), p.ID, !c.Undo); err != nil {
		return err
	}

	if c.Undo {
		ctx.printf("✓ Restored prompt %d: %s\n", p.ID, p.Title)
	} else {
		ctx.printf("✓ Archived prompt %d: %s\n", p.ID, p.Title)
	}
	return nil
}
