package mandala_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mindala/mindala/pkg/mandala"
	"github.com/mindala/mindala/pkg/model"
)

func defaultPalette() model.ColorPalette {
	return mandala.SelectPalette("")
}

func TestComposeDeterministic(t *testing.T) {
	palette := defaultPalette()

	a := mandala.Compose(mandala.NewGenerator(42), palette, model.StyleGeometric, model.ThemeFlags{})
	b := mandala.Compose(mandala.NewGenerator(42), palette, model.StyleGeometric, model.ThemeFlags{})

	gt.Equal(t, a, b)
	gt.True(t, bytes.Equal(mandala.RenderSVG(a), mandala.RenderSVG(b)))
}

func TestComposeSeedChangesOutput(t *testing.T) {
	palette := defaultPalette()

	a := mandala.RenderSVG(mandala.Compose(mandala.NewGenerator(1), palette, model.StyleGeometric, model.ThemeFlags{}))
	b := mandala.RenderSVG(mandala.Compose(mandala.NewGenerator(2), palette, model.StyleGeometric, model.ThemeFlags{}))

	gt.True(t, !bytes.Equal(a, b))
}

func TestComposeLayerCounts(t *testing.T) {
	scene := mandala.Compose(mandala.NewGenerator(7), defaultPalette(), model.StyleGeometric, model.ThemeFlags{})

	// 12 dot-pair motifs, two dots each, drawn twice (base + echo)
	gt.Equal(t, scene.CountLayer(mandala.LayerOuterRing), 24)
	gt.Equal(t, scene.CountLayer(mandala.LayerOuterEcho), 24)

	gt.Equal(t, scene.CountLayer(mandala.LayerMiddleRings), 2)
	gt.Equal(t, scene.CountLayer(mandala.LayerInnerRings), 2)
	gt.Equal(t, scene.CountLayer(mandala.LayerPetals), 8)
	gt.Equal(t, scene.CountLayer(mandala.LayerPetalEcho), 8)
	gt.Equal(t, scene.CountLayer(mandala.LayerSacred), 1)
	gt.Equal(t, scene.CountLayer(mandala.LayerCenter), 3)
	gt.Equal(t, scene.CountLayer(mandala.LayerOverlay), 2)

	// floor(r/2) dots per ring over the fixed radius list
	total := 0
	for _, r := range []int{40, 70, 100, 130, 160, 190} {
		total += r / 2
	}
	gt.Equal(t, scene.CountLayer(mandala.LayerDotField), total)
}

func TestComposeDotFieldSpacing(t *testing.T) {
	scene := mandala.Compose(mandala.NewGenerator(99), defaultPalette(), model.StyleGeometric, model.ThemeFlags{})

	// Dot field dots sit exactly on their ring radius; count them per ring.
	perRing := map[int]int{}
	for _, c := range scene.Shapes {
		if c.Layer != mandala.LayerDotField {
			continue
		}
		r := int(math.Round(math.Hypot(c.X, c.Y)))
		perRing[r]++
	}

	for _, r := range []int{40, 70, 100, 130, 160, 190} {
		gt.Equal(t, perRing[r], r/2)
	}
}

func TestComposeOuterRingSymmetry(t *testing.T) {
	scene := mandala.Compose(mandala.NewGenerator(5), defaultPalette(), model.StyleGeometric, model.ThemeFlags{})

	// The large dot of each outer motif sits at exactly i*30 degrees; radius
	// jitter never moves the angle.
	var angles []float64
	for _, c := range scene.Shapes {
		if c.Layer == mandala.LayerOuterRing && c.R == 10 {
			deg := math.Atan2(c.Y, c.X) * 180 / math.Pi
			if deg < 0 {
				deg += 360
			}
			angles = append(angles, deg)
		}
	}

	gt.Equal(t, len(angles), 12)
	for i, deg := range angles {
		diff := math.Abs(deg - float64(i)*30)
		gt.True(t, diff < 1e-9 || math.Abs(diff-360) < 1e-9)
	}
}

func TestComposeThemesAddAuraRings(t *testing.T) {
	palette := defaultPalette()

	none := mandala.Compose(mandala.NewGenerator(3), palette, model.StyleGeometric, model.ThemeFlags{})
	gt.Equal(t, none.CountLayer(mandala.LayerAura), 0)

	two := mandala.Compose(mandala.NewGenerator(3), palette, model.StyleGeometric,
		model.ThemeFlags{Peace: true, Love: true})
	gt.Equal(t, two.CountLayer(mandala.LayerAura), 2)
}

func TestComposeStyleKeepsDrawOrder(t *testing.T) {
	palette := defaultPalette()

	// Styles change sizes and opacities only; positions driven by the
	// generator must be identical across styles for the same seed.
	geo := mandala.Compose(mandala.NewGenerator(11), palette, model.StyleGeometric, model.ThemeFlags{})
	floral := mandala.Compose(mandala.NewGenerator(11), palette, model.StyleFloral, model.ThemeFlags{})

	gt.Equal(t, len(geo.Shapes), len(floral.Shapes))
	for i := range geo.Shapes {
		gt.Equal(t, geo.Shapes[i].X, floral.Shapes[i].X)
		gt.Equal(t, geo.Shapes[i].Y, floral.Shapes[i].Y)
	}
}

func TestAddNoiseHaloDeterministic(t *testing.T) {
	palette := defaultPalette()

	a := &mandala.Scene{Size: 600}
	b := &mandala.Scene{Size: 600}
	mandala.AddNoiseHalo(a, 42, palette)
	mandala.AddNoiseHalo(b, 42, palette)

	gt.Equal(t, a, b)
	gt.Equal(t, a.CountLayer(mandala.LayerHalo), 90)
}
