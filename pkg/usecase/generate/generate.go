// Package generate orchestrates mandala generation: it asks the remote
// collaborators for a prompt and an image with bounded retries, and falls
// back to the deterministic local engine whenever the remote side is
// unavailable or returns something unusable. Callers always get an artifact;
// only local resource errors surface.
package generate

import (
	"context"
	"time"

	"github.com/mindala/mindala/pkg/adapter"
	"github.com/mindala/mindala/pkg/mandala"
	"github.com/mindala/mindala/pkg/model"
)

type UseCase struct {
	gemini   adapter.Gemini
	storage  adapter.Storage
	palettes *mandala.PaletteRegistry

	sleep func(time.Duration)
	now   func() time.Time
}

type Option func(*UseCase)

// WithPaletteRegistry replaces the built-in palette set.
func WithPaletteRegistry(reg *mandala.PaletteRegistry) Option {
	return func(u *UseCase) {
		u.palettes = reg
	}
}

// WithSleep replaces the retry back-off sleep. For tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(u *UseCase) {
		u.sleep = fn
	}
}

// WithClock replaces the artifact timestamp source. For tests.
func WithClock(fn func() time.Time) Option {
	return func(u *UseCase) {
		u.now = fn
	}
}

// New creates the orchestrator. gemini may be nil; generation then runs
// fallback-only. storage is only touched when a remote image must be
// persisted.
func New(gemini adapter.Gemini, storage adapter.Storage, opts ...Option) *UseCase {
	uc := &UseCase{
		gemini:   gemini,
		storage:  storage,
		palettes: mandala.NewPaletteRegistry(),
		sleep:    time.Sleep,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Input holds one generation request. Sample may be nil when no headset
// reading is available.
type Input struct {
	Transcript string
	Sample     *model.BiometricSample
}

// Generate produces one mandala artifact. The remote path is best effort;
// the local deterministic path guarantees a result.
func (u *UseCase) Generate(ctx context.Context, input Input) (*model.MandalaArtifact, error) {
	if input.Sample != nil {
		clamped := input.Sample.Clamp()
		input.Sample = &clamped
	}

	prompt := u.requestPrompt(ctx, input)
	return u.requestImage(ctx, prompt, input.Sample)
}
