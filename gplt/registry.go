// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"github.com/zhangyunhao116/skipmap"
)

const (
	ParamSizingMode        = "sizing_mode"
	ParamWidth             = "width"
	ParamHeight            = "height"
	ParamRowHeight         = "row_height"
	ParamTrackHeight       = "track_height"
	ParamGenesHeight       = "genes_height"
	ParamShow              = "show"
	ParamToolbarLocation   = "toolbar_location"
	ParamXRange            = "x_range"
	ParamTitle             = "title"
	ParamFigure            = "figure"
	ParamOutputBackend     = "output_backend"
	ParamCircleKwargs      = "circle_kwargs"
	ParamLineKwargs        = "line_kwargs"
	ParamCircleKwargsDict  = "circle_kwargs_dict"
	ParamCircleKwargsList  = "circle_kwargs_list"
	ParamCircleKwargsParam = "circle_kwargs_param"
)

// ParamDef documents a genome plot parameter.
type ParamDef struct {
	Name        string
	Description string
	Domain      Domain
	Default     interface{}
	HasDefault  bool
}

// Validate checks that v belongs to the domain of the parameter.
func (p ParamDef) Validate(v interface{}) error {
	if !p.Domain.Contains(v) {
		return invalidValue(p.Name, v)
	}
	return nil
}

var registry = skipmap.NewString[ParamDef]()

func init() {
	for _, p := range []ParamDef{
		{
			Name: ParamSizingMode,
			Description: "Bokeh plot sizing mode, see also " +
				"https://docs.bokeh.org/en/latest/docs/user_guide/basic/layouts.html#sizing-modes",
			Domain:     enumDomain[SizingMode]{sizingModes},
			Default:    SizingModeDefault,
			HasDefault: true,
		},
		{
			Name:        ParamWidth,
			Description: "Plot width in pixels (px).",
			Domain:      widthDomain{},
			Default:     WidthDefault,
			HasDefault:  true,
		},
		{
			Name:        ParamHeight,
			Description: "Plot height in pixels (px).",
			Domain:      pixelsDomain{},
		},
		{
			Name:        ParamRowHeight,
			Description: "Plot height per row (sample) in pixels (px).",
			Domain:      pixelsDomain{},
		},
		{
			Name:        ParamTrackHeight,
			Description: "Main track height in pixels (px).",
			Domain:      pixelsDomain{},
		},
		{
			Name:        ParamGenesHeight,
			Description: "Genes track height in pixels (px).",
			Domain:      pixelsDomain{},
			Default:     GenesHeightDefault,
			HasDefault:  true,
		},
		{
			Name:        ParamShow,
			Description: "If true, show the plot. If False, do not show the plot, but return the figure.",
			Domain:      boolDomain{},
		},
		{
			Name:        ParamToolbarLocation,
			Description: "Location of bokeh toolbar.",
			Domain:      enumDomain[ToolbarLocation]{toolbarLocations},
			Default:     ToolbarLocationDefault,
			HasDefault:  true,
		},
		{
			Name:        ParamXRange,
			Description: "X axis range (for linking to other tracks).",
			Domain:      modelDomain{},
		},
		{
			Name:        ParamTitle,
			Description: "Plot title. If True, a title may be automatically generated.",
			Domain:      titleDomain{},
		},
		{
			Name:        ParamFigure,
			Description: "A bokeh figure (only returned if show=False).",
			Domain:      modelDomain{optional: true},
		},
		{
			Name: ParamOutputBackend,
			Description: "Specify an output backend to render a plot area onto. See also " +
				"https://docs.bokeh.org/en/latest/docs/user_guide/output/webgl.html",
			Domain:     enumDomain[OutputBackend]{outputBackends},
			Default:    OutputBackendDefault,
			HasDefault: true,
		},
		{
			Name:        ParamCircleKwargs,
			Description: "Passed through to bokeh scatter() function with marker = 'circle'.",
			Domain:      kwargsDomain{},
		},
		{
			Name:        ParamLineKwargs,
			Description: "Passed through to bokeh line() function.",
			Domain:      kwargsDomain{},
		},
		{
			Name: ParamCircleKwargsDict,
			Description: "A dictionary of arguments passed through to bokeh scatter() function " +
				"with marker = 'circle' with a value per contig.",
			Domain:     circleKwargsDictDomain{},
			Default:    DefaultCircleKwargsDict(),
			HasDefault: true,
		},
		{
			Name: ParamCircleKwargsList,
			Description: "A list of arguments passed through to bokeh scatter() function " +
				"with marker = 'circle' with a value per contig.",
			Domain: circleKwargsListDomain{},
		},
		{
			Name:        ParamCircleKwargsParam,
			Description: "A set of arguments passed through to bokeh scatter() function with marker = 'circle'.",
			Domain:      circleKwargsParamDomain{},
		},
	} {
		if p.HasDefault && !p.Domain.Contains(p.Default) {
			panic("default of " + p.Name + " is outside its domain")
		}
		registry.Store(p.Name, p)
	}
}

func Lookup(name string) (ParamDef, bool) {
	p, ok := registry.Load(name)
	return detach(p), ok
}

// The default dict is a map, callers get their own copy.
func detach(p ParamDef) ParamDef {
	if p.Name == ParamCircleKwargsDict {
		p.Default = DefaultCircleKwargsDict()
	}
	return p
}

// Names returns all parameter names in sorted order.
func Names() []string {
	names := make([]string, 0, registry.Len())
	registry.Range(func(name string, _ ParamDef) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Defs returns all parameter definitions sorted by name.
func Defs() []ParamDef {
	defs := make([]ParamDef, 0, registry.Len())
	registry.Range(func(_ string, p ParamDef) bool {
		defs = append(defs, detach(p))
		return true
	})
	return defs
}

func Default(name string) (interface{}, bool) {
	p, ok := registry.Load(name)
	if !ok || !p.HasDefault {
		return nil, false
	}
	return detach(p).Default, true
}

// Validate checks v against the domain of the named parameter.
func Validate(name string, v interface{}) error {
	p, ok := registry.Load(name)
	if !ok {
		return invalidValue("parameter", name)
	}
	return p.Validate(v)
}
