package model

import "github.com/m-mizutani/goerr/v2"

// ColorPalette maps the six color roles of a composition plus an ordered
// gradient stop sequence. A palette is immutable once selected; partial
// palettes are rejected by Validate.
type ColorPalette struct {
	Name string `yaml:"name"`

	Center    string `yaml:"center"`
	Outer     string `yaml:"outer"`
	Dots      string `yaml:"dots"`
	Accent    string `yaml:"accent"`
	Secondary string `yaml:"secondary"`
	Tertiary  string `yaml:"tertiary"`

	Gradient []string `yaml:"gradient"`
}

// Validate checks that every role and the gradient are fully specified
func (p *ColorPalette) Validate() error {
	roles := map[string]string{
		"center":    p.Center,
		"outer":     p.Outer,
		"dots":      p.Dots,
		"accent":    p.Accent,
		"secondary": p.Secondary,
		"tertiary":  p.Tertiary,
	}
	for role, v := range roles {
		if v == "" {
			return goerr.New("palette role is empty", goerr.V("palette", p.Name), goerr.V("role", role))
		}
	}
	if len(p.Gradient) == 0 {
		return goerr.New("palette gradient is empty", goerr.V("palette", p.Name))
	}
	return nil
}
