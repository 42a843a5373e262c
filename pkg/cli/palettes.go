package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func palettesCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "palettes",
		Usage: "List registered color palettes",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = cfg.setupLogger(ctx)

			reg, err := cfg.newPalettes()
			if err != nil {
				return err
			}

			w := c.Root().Writer
			for _, p := range reg.Palettes() {
				fmt.Fprintf(w, "%s\t%d gradient stops\tcenter=%s outer=%s\n",
					p.Name, len(p.Gradient), p.Center, p.Outer)
			}
			return nil
		},
	}
}
