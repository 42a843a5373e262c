// Package mandala is the deterministic image synthesis engine. It derives a
// seed from a prompt and a biometric sample, runs a seeded generator through
// a fixed sequence of composition layers, and serializes the result as SVG.
// The same inputs always produce the same bytes.
package mandala

import "github.com/mindala/mindala/pkg/model"

// ComposeSVG runs the full local pipeline for one prompt: seed derivation,
// theme and style extraction, palette selection, layered composition and SVG
// serialization. The registry may be nil, in which case only the built-in
// palettes are considered.
func ComposeSVG(prompt string, sample *model.BiometricSample, reg *PaletteRegistry) []byte {
	return ComposeSVGSeeded(DeriveSeed(prompt, sample), prompt, reg)
}

// ComposeSVGSeeded is ComposeSVG with the seed supplied directly instead of
// derived from the inputs.
func ComposeSVGSeeded(seed uint32, prompt string, reg *PaletteRegistry) []byte {
	if reg == nil {
		reg = NewPaletteRegistry()
	}

	gen := NewGenerator(seed)
	style := DetermineStyle(prompt)
	themes := ExtractThemes(prompt)
	palette := reg.Select(prompt)

	scene := Compose(gen, palette, style, themes)
	if style == model.StyleDotPainting {
		AddNoiseHalo(scene, seed, palette)
	}

	return RenderSVG(scene)
}
