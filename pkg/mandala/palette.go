package mandala

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mindala/mindala/pkg/model"
	"gopkg.in/yaml.v3"
)

// vividPalette is picked for high-energy prompts.
var vividPalette = model.ColorPalette{
	Name:      "vivid",
	Center:    "#fff9c4",
	Outer:     "#4a148c",
	Dots:      "#ffd600",
	Accent:    "#ff4081",
	Secondary: "#00e5ff",
	Tertiary:  "#76ff03",
	Gradient: []string{
		"#ff1744", "#ff4081", "#ff9100", "#ffd600", "#c6ff00",
		"#76ff03", "#00e676", "#1de9b6", "#00e5ff", "#2979ff",
		"#651fff", "#d500f9", "#f50057",
	},
}

// deepCalmPalette is the default cool-blue palette.
var deepCalmPalette = model.ColorPalette{
	Name:      "deep-calm",
	Center:    "#b3e5fc",
	Outer:     "#01579b",
	Dots:      "#ffcc80",
	Accent:    "#4fc3f7",
	Secondary: "#81d4fa",
	Tertiary:  "#0288d1",
	Gradient: []string{
		"#e1f5fe", "#b3e5fc", "#81d4fa", "#4fc3f7",
		"#29b6f6", "#039be5", "#0288d1", "#01579b",
	},
}

type paletteEntry struct {
	Keywords []string           `yaml:"keywords"`
	Palette  model.ColorPalette `yaml:"palette"`
}

// PaletteRegistry resolves a prompt to one of a closed set of palettes by
// keyword match. Built-in entries are checked first, then file-loaded ones;
// prompts matching nothing get the default palette.
type PaletteRegistry struct {
	entries  []paletteEntry
	fallback model.ColorPalette
}

// NewPaletteRegistry returns a registry holding the built-in palettes.
func NewPaletteRegistry() *PaletteRegistry {
	return &PaletteRegistry{
		entries: []paletteEntry{
			{Keywords: []string{"vibrant", "bright"}, Palette: vividPalette},
		},
		fallback: deepCalmPalette,
	}
}

// LoadFile appends palette entries from a YAML file. Every entry must fully
// specify all six roles and a gradient; partial entries are rejected.
func (r *PaletteRegistry) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read palette file", goerr.V("path", path))
	}

	var doc struct {
		Palettes []paletteEntry `yaml:"palettes"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return goerr.Wrap(err, "failed to parse palette file", goerr.V("path", path))
	}

	for i := range doc.Palettes {
		entry := doc.Palettes[i]
		if len(entry.Keywords) == 0 {
			return goerr.New("palette entry has no keywords", goerr.V("palette", entry.Palette.Name))
		}
		if err := entry.Palette.Validate(); err != nil {
			return goerr.Wrap(err, "invalid palette entry", goerr.V("path", path))
		}
		r.entries = append(r.entries, entry)
	}

	return nil
}

// Select returns the palette whose keywords match the prompt, or the default.
func (r *PaletteRegistry) Select(prompt string) model.ColorPalette {
	p := strings.ToLower(prompt)
	for _, entry := range r.entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(p, kw) {
				return entry.Palette
			}
		}
	}
	return r.fallback
}

// Palettes lists every registered palette, default last.
func (r *PaletteRegistry) Palettes() []model.ColorPalette {
	out := make([]model.ColorPalette, 0, len(r.entries)+1)
	for _, entry := range r.entries {
		out = append(out, entry.Palette)
	}
	return append(out, r.fallback)
}

// SelectPalette resolves a prompt against the built-in palettes only.
func SelectPalette(prompt string) model.ColorPalette {
	return NewPaletteRegistry().Select(prompt)
}
