// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"fmt"
	"strings"
)

// Domain is the set of values a parameter may take.
type Domain interface {
	Contains(v interface{}) bool
	String() string
}

type enumDomain[T ~string] struct {
	values []T
}

func (d enumDomain[T]) Contains(v interface{}) bool {
	var s T
	switch x := v.(type) {
	case T:
		s = x
	case string:
		s = T(x)
	default:
		return false
	}
	for _, e := range d.values {
		if e == s {
			return true
		}
	}
	return false
}

func (d enumDomain[T]) String() string {
	s := make([]string, len(d.values))
	for i, v := range d.values {
		s[i] = fmt.Sprintf("%q", string(v))
	}
	return "one of " + strings.Join(s, ", ")
}

type pixelsDomain struct{}

func (pixelsDomain) Contains(v interface{}) bool {
	switch x := v.(type) {
	case Pixels:
		return x > 0
	case int:
		return x > 0
	default:
		return false
	}
}

func (pixelsDomain) String() string {
	return "integer (px)"
}

type widthDomain struct{}

func (widthDomain) Contains(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case Width:
		return x.Validate() == nil
	case int:
		return x > 0
	default:
		return false
	}
}

func (widthDomain) String() string {
	return "optional integer (px)"
}

type boolDomain struct{}

func (boolDomain) Contains(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

func (boolDomain) String() string {
	return "bool"
}

type titleDomain struct{}

func (titleDomain) Contains(v interface{}) bool {
	switch v.(type) {
	case Title, string, bool:
		return true
	default:
		return false
	}
}

func (titleDomain) String() string {
	return "string or bool"
}

type modelDomain struct {
	optional bool
}

func (d modelDomain) Contains(v interface{}) bool {
	if v == nil {
		return d.optional
	}
	_, ok := v.(Model)
	return ok
}

func (d modelDomain) String() string {
	if d.optional {
		return "optional bokeh model"
	}
	return "bokeh range"
}

type kwargsDomain struct{}

func (kwargsDomain) Contains(v interface{}) bool {
	_, ok := v.(StyleKwargs)
	return ok
}

func (kwargsDomain) String() string {
	return "mapping"
}

type circleKwargsDictDomain struct{}

func (circleKwargsDictDomain) Contains(v interface{}) bool {
	d, ok := v.(CircleKwargsDict)
	return ok && d.Validate() == nil
}

func (circleKwargsDictDomain) String() string {
	return "mapping of contig index or name to mapping"
}

type circleKwargsListDomain struct{}

func (circleKwargsListDomain) Contains(v interface{}) bool {
	_, ok := v.(CircleKwargsList)
	return ok
}

func (circleKwargsListDomain) String() string {
	return "list of mapping"
}

type circleKwargsParamDomain struct{}

func (circleKwargsParamDomain) Contains(v interface{}) bool {
	switch x := v.(type) {
	case CircleKwargsParam:
		return x.Validate() == nil
	case StyleKwargs, CircleKwargsList:
		return true
	case CircleKwargsDict:
		return x.Validate() == nil
	default:
		return false
	}
}

func (circleKwargsParamDomain) String() string {
	return "mapping, mapping per contig or list of mapping"
}
