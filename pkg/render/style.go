// Package render draws compositions to PNG and SVG. It is the
// visualization collaborator of the generator packages: it consumes
// their structured output and never feeds anything back. All styling is
// passed by value; the package holds no mutable defaults.
package render

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/mkale/aurelia/pkg/geom"
)

// Style controls how a composition is drawn. Colors are hex strings of
// the form "#rrggbb".
type Style struct {
	Background  string  `toml:"background"`
	Stroke      string  `toml:"stroke"`
	Fill        string  `toml:"fill"`
	StrokeWidth float64 `toml:"stroke_width"`
	FillAlpha   float64 `toml:"fill_alpha"`
	ShowFill    bool    `toml:"show_fill"`
}

// DefaultStyle returns the fallback scheme. It builds a fresh value on
// every call so callers can never mutate shared state.
func DefaultStyle() Style {
	return Style{
		Background:  "#0a0a12",
		Stroke:      "#d4af37",
		Fill:        "#1c1c2e",
		StrokeWidth: 1.5,
		FillAlpha:   0.25,
		ShowFill:    false,
	}
}

// Validate checks that the style can be drawn with.
func (s Style) Validate() error {
	if err := geom.CheckPositive("stroke_width", s.StrokeWidth); err != nil {
		return err
	}
	if s.FillAlpha < 0 || s.FillAlpha > 1 {
		return &geom.InvalidParameterError{
			Param: "fill_alpha", Value: s.FillAlpha, Reason: "must be within [0, 1]",
		}
	}
	for _, c := range []string{s.Background, s.Stroke, s.Fill} {
		if len(c) != 7 || c[0] != '#' {
			return &geom.ConfigurationError{
				Message: fmt.Sprintf("color %q is not a #rrggbb hex string", c),
			}
		}
	}
	return nil
}

// schemeFile is the on-disk layout of a style scheme file.
type schemeFile struct {
	Schemes map[string]Style `toml:"schemes"`
}

// LoadSchemes reads named style schemes from a TOML file. Every scheme
// is validated before any is returned.
func LoadSchemes(path string) (map[string]Style, error) {
	var file schemeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, &geom.ConfigurationError{
			Message: fmt.Sprintf("style scheme file %s: %v", path, err),
		}
	}
	for name, s := range file.Schemes {
		if err := s.Validate(); err != nil {
			return nil, &geom.ConfigurationError{
				Message: fmt.Sprintf("style scheme %q: %v", name, err),
			}
		}
	}
	return file.Schemes, nil
}

// Scheme picks a named scheme from a loaded set, falling back to
// DefaultStyle for the empty name.
func Scheme(schemes map[string]Style, name string) (Style, error) {
	if name == "" {
		return DefaultStyle(), nil
	}
	s, ok := schemes[name]
	if !ok {
		return Style{}, &geom.ConfigurationError{
			Message: fmt.Sprintf("unknown style scheme %q", name),
		}
	}
	return s, nil
}
