// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import "fmt"

// Options bundles the parameters accepted by genome plotting functions.
// Backend handles are never stored in configuration files.
type Options struct {
	SizingMode      SizingMode        `yaml:"sizing_mode,omitempty"`
	Width           Width             `yaml:"width,omitempty"`
	Height          Pixels            `yaml:"height,omitempty"`
	RowHeight       Pixels            `yaml:"row_height,omitempty"`
	TrackHeight     Pixels            `yaml:"track_height,omitempty"`
	GenesHeight     Pixels            `yaml:"genes_height,omitempty"`
	Show            bool              `yaml:"show,omitempty"`
	ToolbarLocation ToolbarLocation   `yaml:"toolbar_location,omitempty"`
	Title           Title             `yaml:"title,omitempty"`
	OutputBackend   OutputBackend     `yaml:"output_backend,omitempty"`
	CircleKwargs    CircleKwargsParam `yaml:"circle_kwargs,omitempty"`
	LineKwargs      LineKwargs        `yaml:"line_kwargs,omitempty"`
	XRange          Range             `yaml:"-"`
}

// WithDefaults returns a copy with every unset parameter that has a
// default filled in. Width stays unset, which is its default.
func (o Options) WithDefaults() Options {
	if o.SizingMode == "" {
		o.SizingMode = SizingModeDefault
	}
	if !o.GenesHeight.IsSet() {
		o.GenesHeight = GenesHeightDefault
	}
	if o.ToolbarLocation == "" {
		o.ToolbarLocation = ToolbarLocationDefault
	}
	if o.OutputBackend == "" {
		o.OutputBackend = OutputBackendDefault
	}
	if !o.CircleKwargs.IsSet() {
		o.CircleKwargs = CircleKwargsByContig(DefaultCircleKwargsDict())
	}
	return o
}

// Validate returns an error for the first parameter holding a value
// outside its domain. Unset parameters are not checked.
func (o Options) Validate() error {
	if o.SizingMode != "" && !o.SizingMode.Valid() {
		return invalidValue(ParamSizingMode, o.SizingMode)
	}
	if err := o.Width.Validate(); err != nil {
		return err
	}
	for _, p := range []struct {
		name  string
		value Pixels
	}{
		{ParamHeight, o.Height},
		{ParamRowHeight, o.RowHeight},
		{ParamTrackHeight, o.TrackHeight},
		{ParamGenesHeight, o.GenesHeight},
	} {
		if err := p.value.Validate(p.name); err != nil {
			return err
		}
	}
	if o.ToolbarLocation != "" && !o.ToolbarLocation.Valid() {
		return invalidValue(ParamToolbarLocation, o.ToolbarLocation)
	}
	if o.OutputBackend != "" && !o.OutputBackend.Valid() {
		return invalidValue(ParamOutputBackend, o.OutputBackend)
	}
	return o.CircleKwargs.Validate()
}

// Require returns an error for the first named parameter which is unset.
// Show is a plain flag whose zero value false is a valid choice, so it is
// always considered set. Figure is only ever returned by plotting
// functions and cannot be required.
func (o Options) Require(names ...string) error {
	for _, name := range names {
		var set bool
		switch name {
		case ParamSizingMode:
			set = o.SizingMode != ""
		case ParamWidth:
			set = o.Width.IsSet()
		case ParamHeight:
			set = o.Height.IsSet()
		case ParamRowHeight:
			set = o.RowHeight.IsSet()
		case ParamTrackHeight:
			set = o.TrackHeight.IsSet()
		case ParamGenesHeight:
			set = o.GenesHeight.IsSet()
		case ParamShow:
			set = true
		case ParamToolbarLocation:
			set = o.ToolbarLocation != ""
		case ParamTitle:
			set = o.Title.IsSet()
		case ParamOutputBackend:
			set = o.OutputBackend != ""
		case ParamCircleKwargs, ParamCircleKwargsParam:
			set = o.CircleKwargs.IsSet()
		case ParamCircleKwargsDict:
			_, set = o.CircleKwargs.Dict()
		case ParamCircleKwargsList:
			_, set = o.CircleKwargs.List()
		case ParamFigure:
			return fmt.Errorf("%s: %w: returned by plotting functions, not accepted", name, ErrInvalidDomainValue)
		case ParamLineKwargs:
			set = o.LineKwargs != nil
		case ParamXRange:
			set = o.XRange != nil
		default:
			return invalidValue("parameter", name)
		}
		if !set {
			return missingValue(name)
		}
	}
	return nil
}
