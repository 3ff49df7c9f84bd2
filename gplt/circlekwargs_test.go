// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultCircleKwargsDict(t *testing.T) {
	d := DefaultCircleKwargsDict()
	require.Len(t, d, 5)
	colors := []string{"red", "blue", "orange", "green", "purple"}
	for i, c := range colors {
		k, ok := d[ContigIndex(i)]
		require.True(t, ok, "contig %d", i)
		assert.Equal(t, []string{"fill_color", "line_color", "line_width", "size"}, k.Keys())
		lineColor, ok := k["line_color"].Str()
		assert.True(t, ok)
		assert.Equal(t, c, lineColor)
		size, ok := k["size"].Number()
		assert.True(t, ok)
		assert.Equal(t, 3.0, size)
		lineWidth, ok := k["line_width"].Number()
		assert.True(t, ok)
		assert.Equal(t, 1.0, lineWidth)
		assert.True(t, k["fill_color"].IsNull())
	}
	assert.Equal(t, colors, DefaultContigColors())
}

func TestDefaultCircleKwargsDictIsFresh(t *testing.T) {
	d := DefaultCircleKwargsDict()
	d[ContigIndex(0)]["line_color"] = StyleString("black")
	delete(d, ContigIndex(4))
	again := DefaultCircleKwargsDict()
	assert.Len(t, again, 5)
	s, _ := again[ContigIndex(0)]["line_color"].Str()
	assert.Equal(t, "red", s)
}

func TestCircleKwargsDictValidate(t *testing.T) {
	assert.NoError(t, DefaultCircleKwargsDict().Validate())
	named := CircleKwargsDict{ContigName("2L"): {}, ContigName("X"): {}}
	assert.NoError(t, named.Validate())
	mixed := CircleKwargsDict{ContigName("2L"): {}, ContigIndex(1): {}}
	assert.ErrorIs(t, mixed.Validate(), ErrInvalidDomainValue)
}

func TestCircleKwargsDictKeys(t *testing.T) {
	d := CircleKwargsDict{ContigIndex(3): {}, ContigIndex(0): {}, ContigIndex(10): {}}
	assert.Equal(t, []ContigKey{ContigIndex(0), ContigIndex(3), ContigIndex(10)}, d.Keys())
	n := CircleKwargsDict{ContigName("X"): {}, ContigName("2L"): {}, ContigName("3R"): {}}
	assert.Equal(t, []ContigKey{ContigName("2L"), ContigName("3R"), ContigName("X")}, n.Keys())
}

func TestCircleKwargsDictYaml(t *testing.T) {
	data, err := yaml.Marshal(DefaultCircleKwargsDict())
	require.NoError(t, err)
	var out CircleKwargsDict
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, DefaultCircleKwargsDict(), out)

	named := CircleKwargsDict{ContigName("2RL"): {"line_color": StyleString("teal")}}
	data, err = yaml.Marshal(named)
	require.NoError(t, err)
	out = nil
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, named, out)

	err = yaml.Unmarshal([]byte("0: {size: 2}\nX: {size: 2}\n"), &out)
	assert.ErrorIs(t, err, ErrInvalidDomainValue)
}

func TestCircleKwargsParamResolve(t *testing.T) {
	single := SingleCircleKwargs(CircleKwargs{"size": StyleNumber(5)})
	for i, name := range []string{"2L", "2R", "X"} {
		k, ok := single.Resolve(i, name)
		assert.True(t, ok)
		assert.Equal(t, StyleNumber(5), k["size"])
	}

	byName := CircleKwargsByContig(CircleKwargsDict{
		ContigName("X"): {"line_color": StyleString("black")},
	})
	k, ok := byName.Resolve(2, "X")
	assert.True(t, ok)
	assert.Equal(t, StyleString("black"), k["line_color"])
	_, ok = byName.Resolve(0, "2L")
	assert.False(t, ok)

	byIndex := CircleKwargsByContig(DefaultCircleKwargsDict())
	k, ok = byIndex.Resolve(3, "3R")
	assert.True(t, ok)
	assert.Equal(t, StyleString("green"), k["line_color"])

	list := CircleKwargsPerContig(CircleKwargsList{
		{"line_color": StyleString("gray")},
		{"line_color": StyleString("pink")},
	})
	k, ok = list.Resolve(1, "2R")
	assert.True(t, ok)
	assert.Equal(t, StyleString("pink"), k["line_color"])
	_, ok = list.Resolve(2, "3L")
	assert.False(t, ok)
	_, ok = list.Resolve(-1, "")
	assert.False(t, ok)

	var unset CircleKwargsParam
	k, ok = unset.Resolve(4, "X")
	assert.True(t, ok)
	assert.Equal(t, StyleString("purple"), k["line_color"])
	_, ok = unset.Resolve(5, "Y")
	assert.False(t, ok)
}

type circleDoc struct {
	CircleKwargs CircleKwargsParam `yaml:"circle_kwargs,omitempty"`
}

func TestCircleKwargsParamYaml(t *testing.T) {
	var doc circleDoc
	require.NoError(t, yaml.Unmarshal([]byte("circle_kwargs: {size: 4, line_color: black}\n"), &doc))
	k, ok := doc.CircleKwargs.Single()
	require.True(t, ok)
	assert.Equal(t, CircleKwargs{"size": StyleNumber(4), "line_color": StyleString("black")}, k)

	doc = circleDoc{}
	require.NoError(t, yaml.Unmarshal([]byte("circle_kwargs:\n  2L: {size: 4}\n  X: {size: 6}\n"), &doc))
	d, ok := doc.CircleKwargs.Dict()
	require.True(t, ok)
	assert.Equal(t, StyleNumber(6), d[ContigName("X")]["size"])

	doc = circleDoc{}
	require.NoError(t, yaml.Unmarshal([]byte("circle_kwargs:\n  - {size: 1}\n  - {size: 2}\n"), &doc))
	l, ok := doc.CircleKwargs.List()
	require.True(t, ok)
	assert.Len(t, l, 2)

	assert.ErrorIs(t, yaml.Unmarshal([]byte("circle_kwargs: big\n"), &doc), ErrInvalidDomainValue)

	// One anchored style reused for several contigs.
	var shared struct {
		Base         CircleKwargs      `yaml:"base"`
		CircleKwargs CircleKwargsParam `yaml:"circle_kwargs"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("base: &b {size: 2}\ncircle_kwargs:\n  2L: *b\n  X: *b\n"), &shared))
	d, ok = shared.CircleKwargs.Dict()
	require.True(t, ok)
	assert.Equal(t, CircleKwargsDict{
		ContigName("2L"): {"size": StyleNumber(2)},
		ContigName("X"):  {"size": StyleNumber(2)},
	}, d)

	for _, p := range []CircleKwargsParam{
		SingleCircleKwargs(CircleKwargs{"fill_color": StyleNull(), "size": StyleNumber(3)}),
		CircleKwargsByContig(DefaultCircleKwargsDict()),
		CircleKwargsPerContig(CircleKwargsList{{"line_color": StyleString("red")}}),
	} {
		data, err := yaml.Marshal(circleDoc{CircleKwargs: p})
		require.NoError(t, err)
		var out circleDoc
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.Equal(t, p, out.CircleKwargs)
	}
}

func TestCircleKwargsDictYamlIntegerForms(t *testing.T) {
	var d CircleKwargsDict
	require.NoError(t, yaml.Unmarshal([]byte("0x1: {size: 2}\n0x0A: {size: 3}\n"), &d))
	assert.Equal(t, CircleKwargsDict{
		ContigIndex(1):  {"size": StyleNumber(2)},
		ContigIndex(10): {"size": StyleNumber(3)},
	}, d)
}

func TestEmptyCircleKwargsDictYaml(t *testing.T) {
	data, err := yaml.Marshal(circleDoc{CircleKwargs: CircleKwargsByContig(CircleKwargsDict{})})
	require.NoError(t, err)
	var out circleDoc
	require.NoError(t, yaml.Unmarshal(data, &out))
	k, ok := out.CircleKwargs.Single()
	require.True(t, ok)
	assert.Empty(t, k)
	// No attributes for any contig either way.
	resolved, _ := out.CircleKwargs.Resolve(0, "2L")
	assert.Empty(t, resolved)
}

func TestStyleValueYaml(t *testing.T) {
	var k StyleKwargs
	require.NoError(t, yaml.Unmarshal([]byte("a: red\nb: 3\nc: 1.5\nd: true\ne: null\n"), &k))
	assert.Equal(t, StyleKwargs{
		"a": StyleString("red"),
		"b": StyleNumber(3),
		"c": StyleNumber(1.5),
		"d": StyleBool(true),
		"e": StyleNull(),
	}, k)
	assert.Equal(t, map[string]interface{}{"a": "red", "b": 3.0, "c": 1.5, "d": true, "e": nil}, k.Map())

	assert.ErrorIs(t, yaml.Unmarshal([]byte("a: [1, 2]\n"), &k), ErrInvalidDomainValue)
}

func TestStyleKwargsMerge(t *testing.T) {
	base := DefaultCircleKwargsDict()[ContigIndex(0)]
	m := base.Merge(StyleKwargs{"size": StyleNumber(8), "alpha": StyleNumber(0.5)})
	assert.Equal(t, StyleNumber(8), m["size"])
	assert.Equal(t, StyleNumber(0.5), m["alpha"])
	assert.Equal(t, StyleString("red"), m["line_color"])
	assert.Equal(t, StyleNumber(3), base["size"])
}

func TestStyleValueString(t *testing.T) {
	assert.Equal(t, "null", StyleNull().String())
	assert.Equal(t, "3", StyleNumber(3).String())
	assert.Equal(t, "0.25", StyleNumber(0.25).String())
	assert.Equal(t, "false", StyleBool(false).String())
	assert.Equal(t, "navy", StyleString("navy").String())
}
