// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// SizingMode is the bokeh plot sizing mode, i.e. how a plot resizes
// relative to its container.
type SizingMode string

const (
	SizingFixed         SizingMode = "fixed"
	SizingStretchWidth  SizingMode = "stretch_width"
	SizingStretchHeight SizingMode = "stretch_height"
	SizingStretchBoth   SizingMode = "stretch_both"
	SizingScaleWidth    SizingMode = "scale_width"
	SizingScaleHeight   SizingMode = "scale_height"
	SizingScaleBoth     SizingMode = "scale_both"
)

const SizingModeDefault = SizingStretchWidth

var sizingModes = []SizingMode{
	SizingFixed,
	SizingStretchWidth,
	SizingStretchHeight,
	SizingStretchBoth,
	SizingScaleWidth,
	SizingScaleHeight,
	SizingScaleBoth,
}

func SizingModes() []SizingMode {
	return slices.Clone(sizingModes)
}

func ParseSizingMode(s string) (SizingMode, error) {
	m := SizingMode(s)
	if !m.Valid() {
		return "", invalidValue(ParamSizingMode, s)
	}
	return m, nil
}

func (m SizingMode) Valid() bool {
	return slices.Contains(sizingModes, m)
}

func (m SizingMode) String() string {
	return string(m)
}

func (m *SizingMode) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeLiteral(ParamSizingMode, value)
	if err != nil {
		return err
	}
	*m, err = ParseSizingMode(s)
	return err
}

func (m *SizingMode) UnmarshalText(text []byte) (err error) {
	*m, err = ParseSizingMode(string(text))
	return
}

// ToolbarLocation is the location of the bokeh toolbar.
type ToolbarLocation string

const (
	ToolbarAbove ToolbarLocation = "above"
	ToolbarBelow ToolbarLocation = "below"
	ToolbarLeft  ToolbarLocation = "left"
	ToolbarRight ToolbarLocation = "right"
)

const ToolbarLocationDefault = ToolbarAbove

var toolbarLocations = []ToolbarLocation{ToolbarAbove, ToolbarBelow, ToolbarLeft, ToolbarRight}

func ToolbarLocations() []ToolbarLocation {
	return slices.Clone(toolbarLocations)
}

func ParseToolbarLocation(s string) (ToolbarLocation, error) {
	l := ToolbarLocation(s)
	if !l.Valid() {
		return "", invalidValue(ParamToolbarLocation, s)
	}
	return l, nil
}

func (l ToolbarLocation) Valid() bool {
	return slices.Contains(toolbarLocations, l)
}

func (l ToolbarLocation) String() string {
	return string(l)
}

func (l *ToolbarLocation) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeLiteral(ParamToolbarLocation, value)
	if err != nil {
		return err
	}
	*l, err = ParseToolbarLocation(s)
	return err
}

func (l *ToolbarLocation) UnmarshalText(text []byte) (err error) {
	*l, err = ParseToolbarLocation(string(text))
	return
}

// OutputBackend is the backend a plot area is rendered onto.
type OutputBackend string

const (
	BackendCanvas OutputBackend = "canvas"
	BackendWebGL  OutputBackend = "webgl"
	BackendSVG    OutputBackend = "svg"
)

// webgl is better for plots like selection scans with lots of points.
const OutputBackendDefault = BackendWebGL

var outputBackends = []OutputBackend{BackendCanvas, BackendWebGL, BackendSVG}

func OutputBackends() []OutputBackend {
	return slices.Clone(outputBackends)
}

func ParseOutputBackend(s string) (OutputBackend, error) {
	b := OutputBackend(s)
	if !b.Valid() {
		return "", invalidValue(ParamOutputBackend, s)
	}
	return b, nil
}

func (b OutputBackend) Valid() bool {
	return slices.Contains(outputBackends, b)
}

func (b OutputBackend) String() string {
	return string(b)
}

func (b *OutputBackend) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeLiteral(ParamOutputBackend, value)
	if err != nil {
		return err
	}
	*b, err = ParseOutputBackend(s)
	return err
}

func (b *OutputBackend) UnmarshalText(text []byte) (err error) {
	*b, err = ParseOutputBackend(string(text))
	return
}

// Enum literals are plain yaml strings, anything else is rejected.
func decodeLiteral(param string, value *yaml.Node) (string, error) {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
		return "", invalidValue(param, value.Value)
	}
	return value.Value, nil
}
