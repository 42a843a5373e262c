package mandala

// Scene is the renderable vector description of one composition: a radial
// gradient background plus an ordered list of circle primitives on an
// origin-centered square canvas. Shape order is paint order.
type Scene struct {
	Size       float64
	Background Gradient
	Shapes     []Circle
}

// Gradient is the radial background fill, inner color to outer color.
type Gradient struct {
	Inner string
	Outer string
}

// Circle is the single drawing primitive. Filled dots leave Stroke empty;
// stroked rings leave Fill empty. Layer tags which composition layer emitted
// the shape; it is not rendered.
type Circle struct {
	X, Y, R     float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Layer       string
}

func (s *Scene) add(c Circle) {
	s.Shapes = append(s.Shapes, c)
}

// CountLayer returns the number of shapes tagged with layer.
func (s *Scene) CountLayer(layer string) int {
	n := 0
	for _, c := range s.Shapes {
		if c.Layer == layer {
			n++
		}
	}
	return n
}
