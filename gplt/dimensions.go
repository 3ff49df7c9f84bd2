// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Pixels is a plot dimension in pixels (px). It is used for the plot
// height, the height per row (sample), the main track height and the
// genes track height. Zero means the caller did not supply a value.
type Pixels int

const GenesHeightDefault Pixels = 90

func (p Pixels) IsSet() bool {
	return p != 0
}

func (p Pixels) Validate(param string) error {
	if p < 0 {
		return invalidValue(param, int(p))
	}
	return nil
}

// Width is the plot width in pixels (px). It can always be unset, in which
// case the sizing mode decides.
type Width struct {
	px  int
	set bool
}

// WidthDefault is the unset width.
var WidthDefault = Width{}

func WidthPx(px int) Width {
	return Width{px: px, set: true}
}

func (w Width) Get() (int, bool) {
	return w.px, w.set
}

func (w Width) IsSet() bool {
	return w.set
}

// Used by yaml omitempty.
func (w Width) IsZero() bool {
	return !w.set
}

func (w Width) Validate() error {
	if w.set && w.px <= 0 {
		return invalidValue(ParamWidth, w.px)
	}
	return nil
}

func (w Width) String() string {
	if !w.set {
		return "none"
	}
	return strconv.Itoa(w.px)
}

func (w Width) MarshalYAML() (interface{}, error) {
	if !w.set {
		return nil, nil
	}
	return w.px, nil
}

func (w *Width) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return invalidValue(ParamWidth, value.Value)
	}
	switch value.ShortTag() {
	case "!!null":
		*w = Width{}
		return nil
	case "!!int":
		var px int
		if err := value.Decode(&px); err != nil {
			return invalidValue(ParamWidth, value.Value)
		}
		*w = WidthPx(px)
		return w.Validate()
	default:
		return invalidValue(ParamWidth, value.Value)
	}
}
