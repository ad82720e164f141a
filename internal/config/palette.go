package config

import (
	"fmt"
	"strings"

	"github.com/dshills/goodhex/internal/renderer"
	"github.com/dshills/goodhex/internal/renderer/core"
)

var attributeNames = map[string]core.Attribute{
	"bold":      core.AttrBold,
	"dim":       core.AttrDim,
	"underline": core.AttrUnderline,
	"reverse":   core.AttrReverse,
}

// ParseStyle parses a style spec such as "yellow on blue", "bold red" or
// "#ff8800 on 236".
func ParseStyle(spec string) (core.Style, error) {
	style := core.DefaultStyle()
	words := strings.Fields(strings.ToLower(spec))
	if len(words) == 0 {
		return style, fmt.Errorf("empty style")
	}

	for len(words) > 0 {
		attr, ok := attributeNames[words[0]]
		if !ok {
			break
		}
		style.Attributes |= attr
		words = words[1:]
	}

	switch {
	case len(words) == 0:
	case len(words) == 1:
		fg, err := core.ParseColor(words[0])
		if err != nil {
			return style, err
		}
		style.Foreground = fg
	case len(words) == 3 && words[1] == "on":
		fg, err := core.ParseColor(words[0])
		if err != nil {
			return style, err
		}
		bg, err := core.ParseColor(words[2])
		if err != nil {
			return style, err
		}
		style.Foreground, style.Background = fg, bg
	default:
		return style, fmt.Errorf("bad style %q: want [attrs] <fg> [on <bg>]", spec)
	}
	return style, nil
}

// BuildPalette applies the configured styles over the default palette.
// The configuration is expected to have passed Validate.
func (c *Config) BuildPalette() (renderer.Palette, error) {
	pal := renderer.DefaultPalette()
	p := c.Palette

	for _, e := range []struct {
		path string
		spec string
		dst  *core.Style
	}{
		{"palette.text", p.Text, &pal.Text},
		{"palette.header", p.Header, &pal.Header},
		{"palette.marker", p.Marker, &pal.Marker},
		{"palette.cursor", p.Cursor, &pal.Cursor},
	} {
		if e.spec == "" {
			continue
		}
		s, err := ParseStyle(e.spec)
		if err != nil {
			return pal, fmt.Errorf("%s: %w", e.path, err)
		}
		*e.dst = s
	}

	for i, spec := range p.Tags {
		if i >= renderer.TagCount {
			break
		}
		if spec == "" {
			continue
		}
		s, err := ParseStyle(spec)
		if err != nil {
			return pal, fmt.Errorf("palette.tags[%d]: %w", i, err)
		}
		pal.Tags[i] = s
	}
	return pal, nil
}
