package mandala

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// RenderSVG serializes a scene to SVG bytes. The output is a pure function
// of the scene: shape order, attribute order and number formatting are all
// fixed, so equal scenes serialize to equal bytes.
func RenderSVG(s *Scene) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	half := s.Size / 2
	canvas.Startview(s.Size, s.Size, -half, -half, s.Size, s.Size)

	canvas.Def()
	canvas.RadialGradient("bg", 50, 50, 50, 50, 50, []svg.Offcolor{
		{Offset: 0, Color: s.Background.Inner, Opacity: 1},
		{Offset: 100, Color: s.Background.Outer, Opacity: 1},
	})
	canvas.DefEnd()
	canvas.Circle(0, 0, half, "fill:url(#bg)")

	for _, c := range s.Shapes {
		canvas.Circle(c.X, c.Y, c.R, shapeStyle(c))
	}

	canvas.End()
	return buf.Bytes()
}

// DataURI wraps SVG bytes as a self-contained base64 data URI.
func DataURI(svgBytes []byte) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svgBytes)
}

func shapeStyle(c Circle) string {
	var parts []string
	if c.Fill != "" {
		parts = append(parts, "fill:"+c.Fill)
	} else {
		parts = append(parts, "fill:none")
	}
	if c.Stroke != "" {
		parts = append(parts, "stroke:"+c.Stroke)
		parts = append(parts, "stroke-width:"+formatNum(c.StrokeWidth))
	}
	if c.Opacity > 0 && c.Opacity < 1 {
		parts = append(parts, "opacity:"+formatNum(c.Opacity))
	}
	return strings.Join(parts, ";")
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
