package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mindala/mindala/pkg/model"
	"github.com/mindala/mindala/pkg/usecase/generate"
	"github.com/urfave/cli/v3"
)

func generateCommand() *cli.Command {
	var (
		cfg            config
		transcript     string
		transcriptFile string
		attention      int64
		meditation     int64
		signal         int64
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "transcript",
			Aliases:     []string{"t"},
			Usage:       "Session transcript text",
			Sources:     cli.EnvVars("MINDALA_TRANSCRIPT"),
			Destination: &transcript,
		},
		&cli.StringFlag{
			Name:        "transcript-file",
			Usage:       "Path to a file containing the session transcript",
			Destination: &transcriptFile,
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
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)
	flags = append(flags, storageFlags(&cfg)...)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a mandala from a transcript and biometrics",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupLogger(ctx)

			if transcript == "" && transcriptFile != "" {
				data, err := os.ReadFile(transcriptFile)
				if err != nil {
					return goerr.Wrap(err, "failed to read transcript file", goerr.V("path", transcriptFile))
				}
				transcript = string(data)
			}

			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			storage, err := cfg.newStorage(ctx)
			if err != nil {
				return err
			}

			palettes, err := cfg.newPalettes()
			if err != nil {
				return err
			}

			uc := generate.New(gemini, storage, generate.WithPaletteRegistry(palettes))

			sample := model.BiometricSample{
				Attention:     int(attention),
				Meditation:    int(meditation),
				SignalQuality: int(signal),
			}

			var sp *spinner.Spinner
			if gemini != nil {
				sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
					spinner.WithWriter(os.Stderr))
				sp.Suffix = " generating mandala..."
				sp.Start()
			}

			artifact, err := uc.Generate(ctx, generate.Input{
				Transcript: transcript,
				Sample:     &sample,
			})
			// Stop the spinner before anything is printed so the results
			// are not interleaved with redraw escapes
			if sp != nil {
				sp.Stop()
			}
			if err != nil {
				return goerr.Wrap(err, "failed to generate mandala")
			}

			printArtifact(c.Root().Writer, artifact)
			return nil
		},
	}
}

func printArtifact(w io.Writer, artifact *model.MandalaArtifact) {
	fmt.Fprintf(w, "Source: %s\n", artifact.Source)
	fmt.Fprintf(w, "Prompt: %s\n", artifact.Prompt)
	if artifact.RevisedPrompt != "" {
		fmt.Fprintf(w, "Revised prompt: %s\n", artifact.RevisedPrompt)
	}
	fmt.Fprintf(w, "Image: %s\n", artifact.ImageURL)
}
