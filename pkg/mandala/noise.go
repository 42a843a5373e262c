package mandala

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/mindala/mindala/pkg/model"
)

const (
	haloRadius = 270.0
	haloDots   = 90
	haloSway   = 24.0
)

// AddNoiseHalo appends a ring of noise-displaced micro-dots around the
// composition. The displacement comes from an opensimplex source seeded with
// the composition seed, so the halo is as reproducible as the rest of the
// scene; it deliberately does not consume the shared generator stream.
func AddNoiseHalo(s *Scene, seed uint32, p model.ColorPalette) {
	noise := opensimplex.NewNormalized(int64(seed))

	step := 360.0 / float64(haloDots)
	for i := 0; i < haloDots; i++ {
		angle := float64(i) * step
		x, y := polar(1, angle)

		sway := (noise.Eval2(x*2, y*2) - 0.5) * haloSway
		dx, dy := polar(haloRadius+sway, angle)
		s.add(Circle{X: dx, Y: dy, R: 1.8, Fill: p.Tertiary, Opacity: 0.35, Layer: LayerHalo})
	}
}
