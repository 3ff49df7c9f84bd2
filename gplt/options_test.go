// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOptionsWithDefaults(t *testing.T) {
	o := Options{}.WithDefaults()
	assert.Equal(t, SizingStretchWidth, o.SizingMode)
	assert.Equal(t, WidthDefault, o.Width)
	assert.Equal(t, Pixels(90), o.GenesHeight)
	assert.Equal(t, ToolbarAbove, o.ToolbarLocation)
	assert.Equal(t, BackendWebGL, o.OutputBackend)
	d, ok := o.CircleKwargs.Dict()
	assert.True(t, ok)
	assert.Equal(t, DefaultCircleKwargsDict(), d)
	// No defaults for these.
	assert.False(t, o.Height.IsSet())
	assert.False(t, o.Title.IsSet())
	assert.NoError(t, o.Validate())
}

func TestOptionsWithDefaultsKeepsValues(t *testing.T) {
	o := Options{
		SizingMode:      SizingFixed,
		Width:           WidthPx(500),
		GenesHeight:     120,
		ToolbarLocation: ToolbarBelow,
		OutputBackend:   BackendSVG,
		CircleKwargs:    SingleCircleKwargs(CircleKwargs{"size": StyleNumber(2)}),
	}
	assert.Equal(t, o, o.WithDefaults())
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{}.Validate())
	assert.ErrorIs(t, Options{SizingMode: "zoom"}.Validate(), ErrInvalidDomainValue)
	assert.ErrorIs(t, Options{Width: WidthPx(-3)}.Validate(), ErrInvalidDomainValue)
	assert.ErrorIs(t, Options{TrackHeight: -1}.Validate(), ErrInvalidDomainValue)
	assert.ErrorIs(t, Options{ToolbarLocation: "top"}.Validate(), ErrInvalidDomainValue)
	assert.ErrorIs(t, Options{OutputBackend: "png"}.Validate(), ErrInvalidDomainValue)
	mixed := CircleKwargsByContig(CircleKwargsDict{ContigName("X"): {}, ContigIndex(0): {}})
	assert.ErrorIs(t, Options{CircleKwargs: mixed}.Validate(), ErrInvalidDomainValue)
}

func TestOptionsRequire(t *testing.T) {
	o := Options{Height: 200, Title: TitleAuto(true)}.WithDefaults()
	assert.NoError(t, o.Require(ParamHeight, ParamTitle, ParamSizingMode, ParamGenesHeight, ParamShow))

	err := o.Require(ParamHeight, ParamRowHeight)
	assert.ErrorIs(t, err, ErrMissingRequiredValue)
	assert.Contains(t, err.Error(), "row_height")

	assert.ErrorIs(t, o.Require(ParamXRange), ErrMissingRequiredValue)
	o.XRange = testModel("x")
	assert.NoError(t, o.Require(ParamXRange))

	assert.ErrorIs(t, o.Require(ParamWidth), ErrMissingRequiredValue)
	assert.ErrorIs(t, o.Require("zoom"), ErrInvalidDomainValue)
}

func TestOptionsRequireCircleKwargsVariants(t *testing.T) {
	o := Options{}.WithDefaults()
	assert.NoError(t, o.Require(ParamCircleKwargsDict))
	assert.ErrorIs(t, o.Require(ParamCircleKwargsList), ErrMissingRequiredValue)

	o.CircleKwargs = CircleKwargsPerContig(CircleKwargsList{{}})
	assert.NoError(t, o.Require(ParamCircleKwargsList, ParamCircleKwargsParam))
	assert.ErrorIs(t, o.Require(ParamCircleKwargsDict), ErrMissingRequiredValue)

	var unset Options
	assert.ErrorIs(t, unset.Require(ParamCircleKwargsDict), ErrMissingRequiredValue)
	// A false flag is a choice, not a missing value.
	assert.NoError(t, unset.Require(ParamShow))

	err := unset.Require(ParamFigure)
	assert.ErrorIs(t, err, ErrInvalidDomainValue)
	assert.Contains(t, err.Error(), "returned by plotting functions")
}

func TestOptionsYaml(t *testing.T) {
	src := `sizing_mode: stretch_both
width: 800
height: 250
genes_height: 100
toolbar_location: right
title: true
output_backend: svg
circle_kwargs:
  - {line_color: black, size: 2}
line_kwargs: {line_width: 2}
`
	var o Options
	require.NoError(t, yaml.Unmarshal([]byte(src), &o))
	assert.Equal(t, SizingStretchBoth, o.SizingMode)
	assert.Equal(t, WidthPx(800), o.Width)
	assert.Equal(t, Pixels(250), o.Height)
	assert.Equal(t, Pixels(100), o.GenesHeight)
	assert.Equal(t, ToolbarRight, o.ToolbarLocation)
	assert.Equal(t, TitleAuto(true), o.Title)
	assert.Equal(t, BackendSVG, o.OutputBackend)
	l, ok := o.CircleKwargs.List()
	require.True(t, ok)
	assert.Equal(t, StyleString("black"), l[0]["line_color"])
	assert.Equal(t, LineKwargs{"line_width": StyleNumber(2)}, o.LineKwargs)

	data, err := yaml.Marshal(&o)
	require.NoError(t, err)
	var out Options
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, o, out)

	data, err = yaml.Marshal(Options{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	assert.ErrorIs(t, yaml.Unmarshal([]byte("sizing_mode: zoom\n"), &out), ErrInvalidDomainValue)
}
