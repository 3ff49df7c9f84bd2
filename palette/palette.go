// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package palette resolves colour style values to RGBA colours.
package palette

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"genomeplot/gplt"

	"golang.org/x/image/colornames"
)

// Transparent is used for unset fill colours.
var Transparent = color.NRGBA{}

// Color resolves a CSS colour name or a #rrggbb / #rrggbbaa hex string.
// Null resolves to Transparent.
func Color(v gplt.StyleValue) (color.NRGBA, error) {
	if v.IsNull() {
		return Transparent, nil
	}
	s, ok := v.Str()
	if !ok {
		return Transparent, fmt.Errorf("colour: %w %v", gplt.ErrInvalidDomainValue, v)
	}
	return Parse(s)
}

func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	// Names are matched the same way as in colour text fields: case and spaces ignored.
	c, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(s, " ", ""))]
	if !ok {
		return Transparent, fmt.Errorf("colour: %w %q", gplt.ErrInvalidDomainValue, s)
	}
	// no alpha, directly convert
	return color.NRGBA(c), nil
}

func parseHex(s string) (color.NRGBA, error) {
	b, err := hex.DecodeString(s[1:])
	if err != nil || (len(b) != 3 && len(b) != 4) {
		return Transparent, fmt.Errorf("colour: %w %q", gplt.ErrInvalidDomainValue, s)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// Name returns the colour name of an opaque colour, if there is one.
func Name(c color.NRGBA) (string, bool) {
	if c.A != 255 {
		return "", false
	}
	// colornames.Names is sorted, so aliases such as aqua/cyan resolve stably.
	for _, name := range colornames.Names {
		if colornames.Map[name] == color.RGBA(c) {
			return name, true
		}
	}
	return "", false
}

// Style is a resolved circle marker style.
type Style struct {
	Line      color.NRGBA
	Fill      color.NRGBA
	Size      float64
	LineWidth float64
}

// Resolve returns the marker style for one contig of a circle kwargs
// parameter. Attributes which are not given keep the values of def.
func Resolve(p gplt.CircleKwargsParam, index int, name string, def Style) (Style, error) {
	k, ok := p.Resolve(index, name)
	if !ok {
		return def, nil
	}
	s := def
	var err error
	if v, ok := k["line_color"]; ok {
		if s.Line, err = Color(v); err != nil {
			return def, err
		}
	}
	if v, ok := k["fill_color"]; ok {
		if s.Fill, err = Color(v); err != nil {
			return def, err
		}
	}
	if v, ok := k["size"]; ok {
		if s.Size, err = number("size", v); err != nil {
			return def, err
		}
	}
	if v, ok := k["line_width"]; ok {
		if s.LineWidth, err = number("line_width", v); err != nil {
			return def, err
		}
	}
	return s, nil
}

func number(attr string, v gplt.StyleValue) (float64, error) {
	n, ok := v.Number()
	if !ok {
		return 0, fmt.Errorf("%s: %w %v", attr, gplt.ErrInvalidDomainValue, v)
	}
	return n, nil
}

// ContigStyles resolves the marker style of every contig.
func ContigStyles(p gplt.CircleKwargsParam, contigs []string, def Style) ([]Style, error) {
	styles := make([]Style, len(contigs))
	for i, name := range contigs {
		s, err := Resolve(p, i, name, def)
		if err != nil {
			return nil, fmt.Errorf("contig %s: %w", name, err)
		}
		styles[i] = s
	}
	return styles, nil
}
