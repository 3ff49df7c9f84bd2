// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// ContigKey identifies a contig either by its position or by its name.
type ContigKey struct {
	index int
	name  string
	named bool
}

func ContigIndex(i int) ContigKey {
	return ContigKey{index: i}
}

func ContigName(name string) ContigKey {
	return ContigKey{name: name, named: true}
}

func (k ContigKey) Index() (int, bool) {
	return k.index, !k.named
}

func (k ContigKey) Name() (string, bool) {
	return k.name, k.named
}

func (k ContigKey) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// CircleKwargsDict holds circle kwargs with a value per contig. All keys
// are either contig indices or contig names.
type CircleKwargsDict map[ContigKey]CircleKwargs

// DefaultCircleKwargsDict returns the fixed per contig palette. A fresh
// copy is returned on every call.
func DefaultCircleKwargsDict() CircleKwargsDict {
	d := make(CircleKwargsDict, len(defaultContigColors))
	for i, c := range defaultContigColors {
		d[ContigIndex(i)] = CircleKwargs{
			"line_color": StyleString(c),
			"size":       StyleNumber(3),
			"line_width": StyleNumber(1),
			"fill_color": StyleNull(),
		}
	}
	return d
}

var defaultContigColors = []string{"red", "blue", "orange", "green", "purple"}

// DefaultContigColors returns the line colours of the default palette in
// contig order.
func DefaultContigColors() []string {
	return slices.Clone(defaultContigColors)
}

func (d CircleKwargsDict) Validate() error {
	var named, indexed bool
	for k := range d {
		if k.named {
			named = true
		} else {
			indexed = true
		}
	}
	if named && indexed {
		return fmt.Errorf("%s: %w: mixed contig index and name keys", ParamCircleKwargsDict, ErrInvalidDomainValue)
	}
	return nil
}

// Keys returns the contig keys, indices in ascending order followed by
// names in lexical order.
func (d CircleKwargsDict) Keys() []ContigKey {
	keys := make([]ContigKey, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b ContigKey) int {
		switch {
		case a.named != b.named:
			if a.named {
				return 1
			}
			return -1
		case a.named:
			return compareStrings(a.name, b.name)
		default:
			return a.index - b.index
		}
	})
	return keys
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (d CircleKwargsDict) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range d.Keys() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: k.String(), Tag: "!!int"}
		if k.named {
			key.Tag = "!!str"
		}
		var value yaml.Node
		if err := value.Encode(d[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, &value)
	}
	return node, nil
}

func (d *CircleKwargsDict) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: %w: expected a mapping", ParamCircleKwargsDict, ErrInvalidDomainValue)
	}
	m := make(CircleKwargsDict, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		var key ContigKey
		if keyNode.ShortTag() == "!!int" {
			var idx int
			if err := keyNode.Decode(&idx); err != nil {
				return fmt.Errorf("%s: %w: contig %q", ParamCircleKwargsDict, ErrInvalidDomainValue, keyNode.Value)
			}
			key = ContigIndex(idx)
		} else {
			key = ContigName(keyNode.Value)
		}
		var kwargs CircleKwargs
		if err := valueNode.Decode(&kwargs); err != nil {
			return err
		}
		m[key] = kwargs
	}
	if err := m.Validate(); err != nil {
		return err
	}
	*d = m
	return nil
}

// CircleKwargsList holds circle kwargs with a value per contig, matched
// by position.
type CircleKwargsList []CircleKwargs

type circleKwargsKind int

const (
	circleKwargsUnset circleKwargsKind = iota
	circleKwargsSingle
	circleKwargsDict
	circleKwargsList
)

// CircleKwargsParam is the set of arguments passed through to the bokeh
// scatter() function with marker = 'circle'. It is one of a single mapping
// used for every contig, a mapping per contig, or a list per contig.
type CircleKwargsParam struct {
	kind   circleKwargsKind
	single CircleKwargs
	dict   CircleKwargsDict
	list   CircleKwargsList
}

func SingleCircleKwargs(k CircleKwargs) CircleKwargsParam {
	return CircleKwargsParam{kind: circleKwargsSingle, single: k}
}

func CircleKwargsByContig(d CircleKwargsDict) CircleKwargsParam {
	return CircleKwargsParam{kind: circleKwargsDict, dict: d}
}

func CircleKwargsPerContig(l CircleKwargsList) CircleKwargsParam {
	return CircleKwargsParam{kind: circleKwargsList, list: l}
}

func (p CircleKwargsParam) IsSet() bool {
	return p.kind != circleKwargsUnset
}

func (p CircleKwargsParam) IsZero() bool {
	return !p.IsSet()
}

func (p CircleKwargsParam) Single() (CircleKwargs, bool) {
	return p.single, p.kind == circleKwargsSingle
}

func (p CircleKwargsParam) Dict() (CircleKwargsDict, bool) {
	return p.dict, p.kind == circleKwargsDict
}

func (p CircleKwargsParam) List() (CircleKwargsList, bool) {
	return p.list, p.kind == circleKwargsList
}

func (p CircleKwargsParam) Validate() error {
	if p.kind == circleKwargsDict {
		return p.dict.Validate()
	}
	return nil
}

// Resolve returns the circle kwargs for the contig at the given position
// with the given name. A dict is looked up by name first, then by index.
// An unset parameter falls back to the default palette.
func (p CircleKwargsParam) Resolve(index int, name string) (CircleKwargs, bool) {
	switch p.kind {
	case circleKwargsSingle:
		return p.single, true
	case circleKwargsDict:
		if k, ok := p.dict[ContigName(name)]; ok {
			return k, true
		}
		k, ok := p.dict[ContigIndex(index)]
		return k, ok
	case circleKwargsList:
		if index < 0 || index >= len(p.list) {
			return nil, false
		}
		return p.list[index], true
	default:
		k, ok := DefaultCircleKwargsDict()[ContigIndex(index)]
		return k, ok
	}
}

// An empty dict is written as an empty mapping and reads back as an empty
// single mapping. Both leave every contig with the caller's own style.
func (p CircleKwargsParam) MarshalYAML() (interface{}, error) {
	switch p.kind {
	case circleKwargsSingle:
		return p.single, nil
	case circleKwargsDict:
		return p.dict, nil
	case circleKwargsList:
		return p.list, nil
	default:
		return nil, nil
	}
}

// The variant follows the document shape: a sequence is a list, a mapping
// of mappings is a dict, a mapping of scalars is a single mapping.
func (p *CircleKwargsParam) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var l CircleKwargsList
		if err := value.Decode(&l); err != nil {
			return err
		}
		*p = CircleKwargsPerContig(l)
	case yaml.MappingNode:
		if isMappingOfMappings(value) {
			var d CircleKwargsDict
			if err := value.Decode(&d); err != nil {
				return err
			}
			*p = CircleKwargsByContig(d)
		} else {
			var k CircleKwargs
			if err := value.Decode(&k); err != nil {
				return err
			}
			*p = SingleCircleKwargs(k)
		}
	default:
		return fmt.Errorf("%s: %w %q", ParamCircleKwargsParam, ErrInvalidDomainValue, value.Value)
	}
	return nil
}

func isMappingOfMappings(value *yaml.Node) bool {
	if len(value.Content) == 0 {
		return false
	}
	for i := 1; i < len(value.Content); i += 2 {
		n := value.Content[i]
		if n.Kind == yaml.AliasNode {
			n = n.Alias
		}
		if n.Kind != yaml.MappingNode {
			return false
		}
	}
	return true
}
