// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type StyleKind int

const (
	StyleKindNull StyleKind = iota
	StyleKindString
	StyleKindNumber
	StyleKindBool
)

// StyleValue is a single style attribute value which is forwarded to the
// plotting backend unchanged. The zero value is null.
type StyleValue struct {
	kind StyleKind
	s    string
	n    float64
	b    bool
}

func StyleNull() StyleValue {
	return StyleValue{}
}

func StyleString(s string) StyleValue {
	return StyleValue{kind: StyleKindString, s: s}
}

func StyleNumber(n float64) StyleValue {
	return StyleValue{kind: StyleKindNumber, n: n}
}

func StyleBool(b bool) StyleValue {
	return StyleValue{kind: StyleKindBool, b: b}
}

func (v StyleValue) Kind() StyleKind {
	return v.kind
}

func (v StyleValue) IsNull() bool {
	return v.kind == StyleKindNull
}

func (v StyleValue) Str() (string, bool) {
	return v.s, v.kind == StyleKindString
}

func (v StyleValue) Number() (float64, bool) {
	return v.n, v.kind == StyleKindNumber
}

func (v StyleValue) Bool() (bool, bool) {
	return v.b, v.kind == StyleKindBool
}

// Interface returns the plain Go value, nil for null.
func (v StyleValue) Interface() interface{} {
	switch v.kind {
	case StyleKindString:
		return v.s
	case StyleKindNumber:
		return v.n
	case StyleKindBool:
		return v.b
	default:
		return nil
	}
}

func (v StyleValue) String() string {
	switch v.kind {
	case StyleKindString:
		return v.s
	case StyleKindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case StyleKindBool:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

func (v StyleValue) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

func (v *StyleValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("style value: %w %q", ErrInvalidDomainValue, value.Value)
	}
	switch value.ShortTag() {
	case "!!null":
		*v = StyleNull()
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		*v = StyleBool(b)
	case "!!int", "!!float":
		var n float64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*v = StyleNumber(n)
	default:
		*v = StyleString(value.Value)
	}
	return nil
}

// StyleKwargs maps a style attribute name to its value.
type StyleKwargs map[string]StyleValue

// Keys returns the attribute names in sorted order.
func (k StyleKwargs) Keys() []string {
	keys := maps.Keys(k)
	slices.Sort(keys)
	return keys
}

// Merge returns a new mapping with the attributes of over applied on top of k.
func (k StyleKwargs) Merge(over StyleKwargs) StyleKwargs {
	m := make(StyleKwargs, len(k)+len(over))
	maps.Copy(m, k)
	maps.Copy(m, over)
	return m
}

// Map converts to plain Go values for handing to a backend.
func (k StyleKwargs) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(k))
	for key, v := range k {
		m[key] = v.Interface()
	}
	return m
}

// CircleKwargs are passed through to the bokeh scatter() function with
// marker = 'circle'.
type CircleKwargs = StyleKwargs

// LineKwargs are passed through to the bokeh line() function.
type LineKwargs = StyleKwargs
