package timeline

import "image/color"

// Theme is the color triple associated with a clip category.
type Theme struct {
	Solid  color.NRGBA
	Accent color.NRGBA
	Border color.NRGBA
}

// Registry maps clip categories to themes. It is populated at setup and
// read-only afterwards; clip instances only ever look themes up.
type Registry struct {
	themes map[Kind]Theme
}

// NewRegistry creates an empty theme registry.
func NewRegistry() *Registry {
	return &Registry{
		themes: make(map[Kind]Theme),
	}
}

// Register adds a theme for a category, replacing any previous entry.
func (r *Registry) Register(kind Kind, theme Theme) {
	r.themes[kind] = theme
}

// Lookup returns the theme for a category. Unknown categories are a
// setup bug: every category used in a deployment must be registered.
func (r *Registry) Lookup(kind Kind) (Theme, error) {
	theme, ok := r.themes[kind]
	if !ok {
		return Theme{}, &ConfigurationError{Reason: "unregistered clip category " + kind.String()}
	}
	return theme, nil
}

// Kinds returns all registered categories.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.themes))
	for k := range r.themes {
		kinds = append(kinds, k)
	}
	return kinds
}

// DefaultRegistry returns a registry with the stock palette for the
// built-in categories.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindVideo, Theme{
		Solid:  color.NRGBA{R: 0x2d, G: 0x5b, B: 0x8a, A: 0xff},
		Accent: color.NRGBA{R: 0x6f, G: 0xa8, B: 0xdc, A: 0xff},
		Border: color.NRGBA{R: 0x1f, G: 0x3f, B: 0x60, A: 0xff},
	})
	r.Register(KindImage, Theme{
		Solid:  color.NRGBA{R: 0x3a, G: 0x7d, B: 0x44, A: 0xff},
		Accent: color.NRGBA{R: 0x8f, G: 0xc9, B: 0x7f, A: 0xff},
		Border: color.NRGBA{R: 0x28, G: 0x57, B: 0x2f, A: 0xff},
	})
	r.Register(KindAudio, Theme{
		Solid:  color.NRGBA{R: 0x7a, G: 0x4f, B: 0x9d, A: 0xff},
		Accent: color.NRGBA{R: 0xb3, G: 0x8c, B: 0xd9, A: 0xff},
		Border: color.NRGBA{R: 0x55, G: 0x37, B: 0x6e, A: 0xff},
	})
	r.Register(KindText, Theme{
		Solid:  color.NRGBA{R: 0xb0, G: 0x6a, B: 0x2a, A: 0xff},
		Accent: color.NRGBA{R: 0xe6, G: 0xa8, B: 0x6c, A: 0xff},
		Border: color.NRGBA{R: 0x7b, G: 0x4a, B: 0x1d, A: 0xff},
	})
	r.Register(KindEffect, Theme{
		Solid:  color.NRGBA{R: 0x8a, G: 0x2d, B: 0x52, A: 0xff},
		Accent: color.NRGBA{R: 0xd9, G: 0x6f, B: 0x9e, A: 0xff},
		Border: color.NRGBA{R: 0x60, G: 0x1f, B: 0x39, A: 0xff},
	})
	return r
}
