package cli

import (
	"context"
	"os"

	"github.com/mindala/mindala/pkg/adapter"
	"github.com/mindala/mindala/pkg/mandala"
	"github.com/mindala/mindala/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// config holds configuration values
type config struct {
	logLevel     string
	palettesFile string

	// Remote collaborators
	geminiAPIKey string
	textModel    string
	imageModel   string

	// Artifact storage
	outputDir string
	bucket    string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("MINDALA_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "palettes-file",
			Usage:       "YAML file with additional color palettes",
			Sources:     cli.EnvVars("MINDALA_PALETTES"),
			Destination: &cfg.palettesFile,
		},
	}
}

// llmFlags returns flags for the remote generation configuration
func llmFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key (empty disables remote generation)",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "text-model",
			Usage:       "Model for prompt generation",
			Sources:     cli.EnvVars("MINDALA_TEXT_MODEL"),
			Destination: &cfg.textModel,
		},
		&cli.StringFlag{
			Name:        "image-model",
			Usage:       "Model for image generation",
			Sources:     cli.EnvVars("MINDALA_IMAGE_MODEL"),
			Destination: &cfg.imageModel,
		},
	}
}

// storageFlags returns flags for artifact persistence
func storageFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Directory for generated images",
			Value:       "mandalas",
			Sources:     cli.EnvVars("MINDALA_OUTPUT_DIR"),
			Destination: &cfg.outputDir,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Cloud Storage bucket for generated images (overrides output-dir)",
			Sources:     cli.EnvVars("MINDALA_BUCKET"),
			Destination: &cfg.bucket,
		},
	}
}

// setupLogger installs the configured logger and attaches it to the context
func (cfg *config) setupLogger(ctx context.Context) context.Context {
	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// newGemini creates the remote adapter. A missing API key is not fatal; it
// degrades generation to the local deterministic path.
func (cfg *config) newGemini(ctx context.Context) (adapter.Gemini, error) {
	if cfg.geminiAPIKey == "" {
		logging.From(ctx).Warn("gemini-api-key is not set, remote generation disabled")
		return nil, nil
	}

	var opts []adapter.GeminiOption
	if cfg.textModel != "" {
		opts = append(opts, adapter.WithTextModel(cfg.textModel))
	}
	if cfg.imageModel != "" {
		opts = append(opts, adapter.WithImageModel(cfg.imageModel))
	}

	return adapter.NewGemini(ctx, cfg.geminiAPIKey, opts...)
}

// newStorage creates the artifact store, bucket-backed when configured
func (cfg *config) newStorage(ctx context.Context) (adapter.Storage, error) {
	if cfg.bucket != "" {
		return adapter.NewGCSStorage(ctx, cfg.bucket)
	}
	return adapter.NewLocalStorage(cfg.outputDir)
}

// newPalettes creates the palette registry, merging the optional file
func (cfg *config) newPalettes() (*mandala.PaletteRegistry, error) {
	reg := mandala.NewPaletteRegistry()
	if cfg.palettesFile != "" {
		if err := reg.LoadFile(cfg.palettesFile); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
