// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"gopkg.in/yaml.v3"
)

type titleKind int

const (
	titleUnset titleKind = iota
	titleText
	titleAuto
)

// Title is the plot title. It is either an explicit text or a flag; if the
// flag is true, a title may be automatically generated.
type Title struct {
	kind titleKind
	text string
	auto bool
}

func TitleText(s string) Title {
	return Title{kind: titleText, text: s}
}

func TitleAuto(auto bool) Title {
	return Title{kind: titleAuto, auto: auto}
}

func (t Title) IsSet() bool {
	return t.kind != titleUnset
}

func (t Title) IsZero() bool {
	return !t.IsSet()
}

// Text returns the explicit title text, if this is a text title.
func (t Title) Text() (string, bool) {
	return t.text, t.kind == titleText
}

// Auto returns the flag, if this is a flag title.
func (t Title) Auto() (bool, bool) {
	return t.auto, t.kind == titleAuto
}

// Resolve returns the title to draw. An explicit text wins, true yields the
// generated title, false or unset yields no title.
func (t Title) Resolve(generated string) (string, bool) {
	switch t.kind {
	case titleText:
		return t.text, true
	case titleAuto:
		if t.auto {
			return generated, true
		}
	}
	return "", false
}

func (t Title) MarshalYAML() (interface{}, error) {
	switch t.kind {
	case titleText:
		return t.text, nil
	case titleAuto:
		return t.auto, nil
	default:
		return nil, nil
	}
}

func (t *Title) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return invalidValue(ParamTitle, value.Value)
	}
	switch value.ShortTag() {
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return invalidValue(ParamTitle, value.Value)
		}
		*t = TitleAuto(b)
	case "!!null":
		*t = Title{}
	default:
		// Numbers and other scalars are kept as text, like any title string.
		*t = TitleText(value.Value)
	}
	return nil
}
