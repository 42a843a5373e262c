package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mindala/mindala/pkg/mandala"
	"github.com/mindala/mindala/pkg/model"
	"github.com/urfave/cli/v3"
)

func renderCommand() *cli.Command {
	var (
		cfg        config
		transcript string
		attention  int64
		meditation int64
		signal     int64
		seed       uint64
		outPath    string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "transcript",
			Aliases:     []string{"t"},
			Usage:       "Prompt text driving style, palette and seed",
			Destination: &transcript,
		},
		&cli.IntFlag{
			Name:        "attention",
			Usage:       "Attention level (0-100)",
			Value:       50,
			Destination: &attention,
		},
		&cli.IntFlag{
			Name:        "meditation",
			Usage:       "Meditation level (0-100)",
			Value:       50,
			Destination: &meditation,
		},
		&cli.IntFlag{
			Name:        "signal-quality",
			Usage:       "Signal quality (0-100)",
			Value:       100,
			Destination: &signal,
		},
		&cli.UintFlag{
			Name:        "seed",
			Usage:       "Explicit seed, bypassing derivation",
			Destination: &seed,
		},
		&cli.StringFlag{
			Name:        "out",
			Usage:       "Output SVG path, - for stdout",
			Value:       "-",
			Destination: &outPath,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "render",
		Usage: "Render a deterministic mandala offline",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = cfg.setupLogger(ctx)

			palettes, err := cfg.newPalettes()
			if err != nil {
				return err
			}

			var svgBytes []byte
			if c.IsSet("seed") {
				svgBytes = mandala.ComposeSVGSeeded(uint32(seed), transcript, palettes)
			} else {
				sample := model.BiometricSample{
					Attention:     int(attention),
					Meditation:    int(meditation),
					SignalQuality: int(signal),
				}
				svgBytes = mandala.ComposeSVG(transcript, &sample, palettes)
			}

			if outPath == "-" {
				_, err := c.Root().Writer.Write(svgBytes)
				return err
			}

			if err := os.WriteFile(outPath, svgBytes, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write SVG", goerr.V("path", outPath))
			}
			fmt.Fprintf(c.Root().Writer, "Wrote %s\n", outPath)
			return nil
		},
	}
}
