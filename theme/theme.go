// SPDX-License-Identifier: Unlicense OR MIT

/*
Package theme loads widget themes from TOML files.

A theme file sets the material palette, the error color of form fields,
the text size and named flexbox presets:

	text_size = 15
	error = "#b00020"

	[palette]
	fg = "#202020"
	bg = "#fafafa"
	contrast_bg = "#3f51b5"
	contrast_fg = "#ffffff"

	[flex.toolbar]
	direction = "horizontal"
	align_items = "center"
	align_content = "center"
	gap = 8

Keys that are not set keep the defaults of material.NewTheme.
*/
package theme

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"gioui.org/extra/flexbox"
	"gioui.org/extra/form"
	"gioui.org/extra/host"
)

// Theme is a decoded theme file.
type Theme struct {
	Palette    material.Palette
	ErrorColor color.NRGBA
	TextSize   unit.Sp

	flex map[string]flexbox.Flex
}

type file struct {
	TextSize float32           `toml:"text_size"`
	Error    string            `toml:"error"`
	Palette  palette           `toml:"palette"`
	Flex     map[string]preset `toml:"flex"`
}

type palette struct {
	Fg         string `toml:"fg"`
	Bg         string `toml:"bg"`
	ContrastBg string `toml:"contrast_bg"`
	ContrastFg string `toml:"contrast_fg"`
}

type preset struct {
	Direction    string  `toml:"direction"`
	AlignItems   string  `toml:"align_items"`
	AlignContent string  `toml:"align_content"`
	Gap          float32 `toml:"gap"`
}

// Default returns the theme used for keys a file does not set.
func Default() *Theme {
	th := material.NewTheme()
	return &Theme{
		Palette:    th.Palette,
		ErrorColor: form.DefaultStyle(th).ErrorColor,
		TextSize:   th.TextSize,
	}
}

// Parse decodes a theme file.
func Parse(data []byte) (*Theme, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes a theme file from r. Unknown keys are errors.
func Load(r io.Reader) (*Theme, error) {
	var f file
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t := Default()
	if f.TextSize < 0 {
		return nil, fmt.Errorf("theme: text_size: negative size %v", f.TextSize)
	}
	if f.TextSize > 0 {
		t.TextSize = unit.Sp(f.TextSize)
	}
	colors := []struct {
		key string
		val string
		dst *color.NRGBA
	}{
		{"error", f.Error, &t.ErrorColor},
		{"palette.fg", f.Palette.Fg, &t.Palette.Fg},
		{"palette.bg", f.Palette.Bg, &t.Palette.Bg},
		{"palette.contrast_bg", f.Palette.ContrastBg, &t.Palette.ContrastBg},
		{"palette.contrast_fg", f.Palette.ContrastFg, &t.Palette.ContrastFg},
	}
	for _, c := range colors {
		if c.val == "" {
			continue
		}
		col, err := ParseColor(c.val)
		if err != nil {
			return nil, fmt.Errorf("theme: %s: %w", c.key, err)
		}
		*c.dst = col
	}
	for name, p := range f.Flex {
		fl, err := p.flex()
		if err != nil {
			return nil, fmt.Errorf("theme: flex.%s: %w", name, err)
		}
		if t.flex == nil {
			t.flex = make(map[string]flexbox.Flex)
		}
		t.flex[name] = fl
	}
	return t, nil
}

// Material returns a material theme with the palette and text size of
// t.
func (t *Theme) Material() *material.Theme {
	th := material.NewTheme()
	th.Palette = t.Palette
	th.TextSize = t.TextSize
	return th
}

// FormStyle returns the form style for th with the error color of t.
func (t *Theme) FormStyle(th *material.Theme) form.Style {
	s := form.DefaultStyle(th)
	s.ErrorColor = t.ErrorColor
	return s
}

// Flex returns the named container preset, identified by id.
func (t *Theme) Flex(name string, id host.ID) (flexbox.Flex, bool) {
	f, ok := t.flex[name]
	f.ID = id
	return f, ok
}

func (p preset) flex() (flexbox.Flex, error) {
	f := flexbox.Flex{AlignContent: layout.Center}
	switch strings.ToLower(p.Direction) {
	case "", "horizontal", "row":
		f.Direction = flexbox.Horizontal
	case "vertical", "column":
		f.Direction = flexbox.Vertical
	default:
		return f, fmt.Errorf("direction: unknown direction %q", p.Direction)
	}
	switch strings.ToLower(p.AlignItems) {
	case "", "start":
		f.AlignItems = flexbox.Start
	case "center":
		f.AlignItems = flexbox.Center
	case "end":
		f.AlignItems = flexbox.End
	case "stretch":
		f.AlignItems = flexbox.Stretch
	default:
		return f, fmt.Errorf("align_items: unknown alignment %q", p.AlignItems)
	}
	if p.AlignContent != "" {
		d, ok := directions[strings.ToLower(p.AlignContent)]
		if !ok {
			return f, fmt.Errorf("align_content: unknown direction %q", p.AlignContent)
		}
		f.AlignContent = d
	}
	if p.Gap < 0 {
		return f, fmt.Errorf("gap: negative gap %v", p.Gap)
	}
	f.Gap = unit.Dp(p.Gap)
	return f, nil
}

var directions = map[string]layout.Direction{
	"nw":     layout.NW,
	"n":      layout.N,
	"ne":     layout.NE,
	"e":      layout.E,
	"se":     layout.SE,
	"s":      layout.S,
	"sw":     layout.SW,
	"w":      layout.W,
	"center": layout.Center,
}

// ParseColor parses colors of the form "#rrggbb" and "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
