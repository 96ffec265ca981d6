package cli

import (
	"github.com/julianstephens/wellbeing/internal/constants"
	"github.com/julianstephens/wellbeing/internal/export"
)

type ExportCmd struct {
	Output string `short:"o" help:"CSV file to write. Defaults to export.path from the config."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	path := c.Output
	if path == "" && ctx.Config != nil {
		path = ctx.Config.Export.Path
	}
	if path == "" {
		path = constants.DefaultExportPath
	}

	n, err := export.ToFile(ctx.background(), ctx.Store, path, ctx.loc())
	if err != nil {
		return err
	}
	ctx.printf("✓ Exported %d entries to %s\n", n, path)
	return nil
}
