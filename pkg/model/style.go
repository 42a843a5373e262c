package model

import "github.com/m-mizutani/goerr/v2"

var ErrInvalidStyle = goerr.New("invalid style tag")

// StyleTag is the coarse structural category of a mandala. It selects which
// decorative motifs dominate the composition.
type StyleTag string

const (
	StyleDotPainting StyleTag = "dotpainting"
	StyleGeometric   StyleTag = "geometric"
	StyleFloral      StyleTag = "floral"
	StyleSacred      StyleTag = "sacred"
)

// Validate checks if the style tag is one of the known categories
func (s StyleTag) Validate() error {
	switch s {
	case StyleDotPainting, StyleGeometric, StyleFloral, StyleSacred:
		return nil
	default:
		return goerr.Wrap(ErrInvalidStyle, "unknown style", goerr.V("style", string(s)))
	}
}

// ThemeFlags marks which emotional keyword categories were detected in a
// transcript. Flags are independent; any subset may be set.
type ThemeFlags struct {
	Peace     bool
	Love      bool
	Strength  bool
	Growth    bool
	Gratitude bool
}

// Any reports whether at least one theme was detected.
func (t ThemeFlags) Any() bool {
	return t.Peace || t.Love || t.Strength || t.Growth || t.Gratitude
}

// Names returns the detected theme names in a fixed order.
func (t ThemeFlags) Names() []string {
	var names []string
	if t.Peace {
		names = append(names, "peace")
	}
	if t.Love {
		names = append(names, "love")
	}
	if t.Strength {
		names = append(names, "strength")
	}
	if t.Growth {
		names = append(names, "growth")
	}
	if t.Gratitude {
		names = append(names, "gratitude")
	}
	return names
}
