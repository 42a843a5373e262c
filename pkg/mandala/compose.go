package mandala

import (
	"math"

	"github.com/mindala/mindala/pkg/model"
)

const (
	canvasSize = 600.0

	petalCount  = 12
	detailCount = 8

	outerRingRadius   = 228.0
	outerRingPairGap  = 22.0
	detailPetalRadius = 120.0
	sacredRadius      = 190.0

	echoOpacity = 0.3
)

// Layer tags attached to emitted shapes. Rendering ignores them; they exist
// so callers can inspect the structure of a scene.
const (
	LayerOuterRing   = "outer_ring"
	LayerMiddleRings = "middle_rings"
	LayerInnerRings  = "inner_rings"
	LayerPetals      = "petals"
	LayerSacred      = "sacred"
	LayerDotField    = "dot_field"
	LayerCenter      = "center"
	LayerOuterEcho   = "outer_echo"
	LayerPetalEcho   = "petal_echo"
	LayerAura        = "aura"
	LayerOverlay     = "overlay"
	LayerHalo        = "halo"
)

// dotFieldRadii is the fixed ascending ring list of the dot field. Each ring
// carries floor(radius/2) dots.
var dotFieldRadii = []float64{40, 70, 100, 130, 160, 190}

// styleParams are the deterministic knobs a style turns. They never consume
// generator draws, so style changes cannot shift the draw order.
type styleParams struct {
	petalDotRadius float64
	fieldDotRadius float64
	sacredOpacity  float64
	sacredWidth    float64
}

func paramsFor(style model.StyleTag) styleParams {
	p := styleParams{
		petalDotRadius: 8,
		fieldDotRadius: 3,
		sacredOpacity:  0.25,
		sacredWidth:    1,
	}
	switch style {
	case model.StyleDotPainting:
		p.fieldDotRadius = 3.5
	case model.StyleFloral:
		p.petalDotRadius = 12
	case model.StyleSacred:
		p.sacredOpacity = 0.5
		p.sacredWidth = 2
	}
	return p
}

// Compose builds the layered scene for one generation pass. Layers run in a
// fixed order and each draws a fixed number of generator values, so two
// compositions over the same seed, palette, style and themes are identical.
// The echo passes near the end redraw the outer ring and the petals at
// reduced opacity and repeat the draws of their base layers on purpose; the
// repetition is part of the sequence and must not be collapsed.
func Compose(gen *Generator, palette model.ColorPalette, style model.StyleTag, themes model.ThemeFlags) *Scene {
	params := paramsFor(style)

	s := &Scene{
		Size:       canvasSize,
		Background: Gradient{Inner: palette.Center, Outer: palette.Outer},
	}

	outerRing(s, gen, palette, 1.0, 0, LayerOuterRing)
	middleRings(s, gen, palette)
	innerRings(s, gen, palette)
	detailPetals(s, gen, palette, params.petalDotRadius, 1.0, 0, LayerPetals)
	sacredCircle(s, palette, params)
	dotField(s, gen, palette, params.fieldDotRadius)
	centerMotif(s, palette)

	outerRing(s, gen, palette, echoOpacity, 0, LayerOuterEcho)
	detailPetals(s, gen, palette, params.petalDotRadius, echoOpacity, 45, LayerPetalEcho)

	auraRings(s, palette, themes)
	overlays(s, palette)

	return s
}

// outerRing draws petalCount dot-pair motifs at equal angular steps. Two
// draws per motif: radius jitter, then gradient color.
func outerRing(s *Scene, gen *Generator, p model.ColorPalette, opacity, rotate float64, layer string) {
	step := 360.0 / petalCount
	for i := 0; i < petalCount; i++ {
		angle := float64(i)*step + rotate
		jitter := gen.Next()*6 - 3
		color := gradientColor(gen, p)

		x, y := polar(outerRingRadius+jitter, angle)
		s.add(Circle{X: x, Y: y, R: 10, Fill: color, Opacity: opacity, Layer: layer})

		x, y = polar(outerRingRadius-outerRingPairGap+jitter, angle)
		s.add(Circle{X: x, Y: y, R: 5, Fill: p.Dots, Opacity: opacity, Layer: layer})
	}
}

// middleRings draws two concentric stroked circles. One draw per ring for
// the stroke width.
func middleRings(s *Scene, gen *Generator, p model.ColorPalette) {
	for i, r := range []float64{160, 140} {
		stroke := p.Secondary
		if i == 1 {
			stroke = p.Tertiary
		}
		width := 1 + gen.Next()*1.5
		s.add(Circle{R: r, Stroke: stroke, StrokeWidth: width, Opacity: 0.8, Layer: LayerMiddleRings})
	}
}

// innerRings mirrors middleRings at smaller radii.
func innerRings(s *Scene, gen *Generator, p model.ColorPalette) {
	for i, r := range []float64{100, 80} {
		stroke := p.Accent
		if i == 1 {
			stroke = p.Secondary
		}
		width := 1 + gen.Next()*1.5
		s.add(Circle{R: r, Stroke: stroke, StrokeWidth: width, Opacity: 0.8, Layer: LayerInnerRings})
	}
}

// detailPetals draws detailCount single-dot motifs. Two draws per motif:
// radius jitter, then gradient color.
func detailPetals(s *Scene, gen *Generator, p model.ColorPalette, dotRadius, opacity, rotate float64, layer string) {
	step := 360.0 / detailCount
	for i := 0; i < detailCount; i++ {
		angle := float64(i)*step + rotate
		jitter := gen.Next()*4 - 2
		color := gradientColor(gen, p)

		x, y := polar(detailPetalRadius+jitter, angle)
		s.add(Circle{X: x, Y: y, R: dotRadius, Fill: color, Opacity: opacity, Layer: layer})
	}
}

func sacredCircle(s *Scene, p model.ColorPalette, params styleParams) {
	s.add(Circle{
		R:           sacredRadius,
		Stroke:      p.Tertiary,
		StrokeWidth: params.sacredWidth,
		Opacity:     params.sacredOpacity,
		Layer:       LayerSacred,
	})
}

// dotField places floor(radius/2) evenly spaced dots on each ring of the
// fixed radius list. One draw per dot for the gradient color.
func dotField(s *Scene, gen *Generator, p model.ColorPalette, dotRadius float64) {
	for _, r := range dotFieldRadii {
		count := int(r / 2)
		step := 360.0 / float64(count)
		for i := 0; i < count; i++ {
			color := gradientColor(gen, p)
			x, y := polar(r, float64(i)*step)
			s.add(Circle{X: x, Y: y, R: dotRadius, Fill: color, Opacity: 0.9, Layer: LayerDotField})
		}
	}
}

func centerMotif(s *Scene, p model.ColorPalette) {
	fills := []struct {
		r    float64
		fill string
	}{
		{30, p.Center},
		{20, p.Accent},
		{10, p.Dots},
	}
	for _, f := range fills {
		s.add(Circle{R: f.r, Fill: f.fill, Opacity: 1, Layer: LayerCenter})
	}
}

// auraRings adds one faint ring per detected theme. Purely additive; draws
// nothing from the generator.
func auraRings(s *Scene, p model.ColorPalette, themes model.ThemeFlags) {
	for i := range themes.Names() {
		s.add(Circle{
			R:           210 + float64(i)*8,
			Stroke:      p.Accent,
			StrokeWidth: 1,
			Opacity:     0.1,
			Layer:       LayerAura,
		})
	}
}

// overlays are the two constant finishing strokes, always drawn last.
func overlays(s *Scene, p model.ColorPalette) {
	s.add(Circle{R: 250, Stroke: p.Dots, StrokeWidth: 1, Opacity: 0.15, Layer: LayerOverlay})
	s.add(Circle{R: 200, Stroke: p.Accent, StrokeWidth: 1, Opacity: 0.15, Layer: LayerOverlay})
}

// gradientColor draws one value and maps it onto the palette gradient.
func gradientColor(gen *Generator, p model.ColorPalette) string {
	idx := int(gen.Next() * float64(len(p.Gradient)))
	if idx >= len(p.Gradient) {
		idx = len(p.Gradient) - 1
	}
	return p.Gradient[idx]
}

// polar converts a radius and an angle in degrees to Cartesian coordinates.
func polar(r, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	return r * math.Cos(rad), r * math.Sin(rad)
}
