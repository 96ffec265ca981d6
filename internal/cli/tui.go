package cli

import (
	"github.com/julianstephens/wellbeing/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(ctx.background()); err != nil {
		return err
	}
	return tui.Run(ctx.background(), ctx.Store, tui.Options{
		Greeting: ctx.greeting(),
		Location: ctx.loc(),
		Now:      ctx.Now,
	})
}
