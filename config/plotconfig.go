// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"log"

	"genomeplot/gplt"
	"genomeplot/palette"

	"golang.org/x/exp/slices"
)

// PlotConfig holds stored plot parameter values. Zero values mean unset.
type PlotConfig struct {
	SizingMode      gplt.SizingMode      `yaml:",omitempty"`
	Width           int                  `yaml:",omitempty"`
	Height          int                  `yaml:",omitempty"`
	RowHeight       int                  `yaml:",omitempty"`
	TrackHeight     int                  `yaml:",omitempty"`
	GenesHeight     int                  `yaml:",omitempty"`
	ToolbarLocation gplt.ToolbarLocation `yaml:",omitempty"`
	OutputBackend   gplt.OutputBackend   `yaml:",omitempty"`
	// Outline colour per contig, by contig index.
	ContigColors    []string `yaml:",omitempty"`
	MarkerSize      float64  `yaml:",omitempty"`
	MarkerLineWidth float64  `yaml:",omitempty"`
}

// Returns the built-in defaults.
func NewPlotConfig() PlotConfig {
	return PlotConfig{
		SizingMode:      gplt.SizingModeDefault,
		GenesHeight:     int(gplt.GenesHeightDefault),
		ToolbarLocation: gplt.ToolbarLocationDefault,
		OutputBackend:   gplt.OutputBackendDefault,
		ContigColors:    gplt.DefaultContigColors(),
		MarkerSize:      3,
		MarkerLineWidth: 1,
	}
}

// Values outside their domain are reset to unset, so that defaults apply.
func (p *PlotConfig) sanitize(function string) {
	if len(p.SizingMode) != 0 && !p.SizingMode.Valid() {
		log.Printf("Invalid sizing mode \"%s\" in %s was ignored.", p.SizingMode, describe(function))
		p.SizingMode = ""
	}
	if len(p.ToolbarLocation) != 0 && !p.ToolbarLocation.Valid() {
		log.Printf("Invalid toolbar location \"%s\" in %s was ignored.", p.ToolbarLocation, describe(function))
		p.ToolbarLocation = ""
	}
	if len(p.OutputBackend) != 0 && !p.OutputBackend.Valid() {
		log.Printf("Invalid output backend \"%s\" in %s was ignored.", p.OutputBackend, describe(function))
		p.OutputBackend = ""
	}
	for _, n := range []*int{&p.Width, &p.Height, &p.RowHeight, &p.TrackHeight, &p.GenesHeight} {
		if *n < 0 {
			log.Printf("Negative plot dimension %d in %s was ignored.", *n, describe(function))
			*n = 0
		}
	}
	if p.MarkerSize < 0 {
		p.MarkerSize = 0
	}
	if p.MarkerLineWidth < 0 {
		p.MarkerLineWidth = 0
	}
	for _, c := range p.ContigColors {
		if _, err := palette.Parse(c); err != nil {
			log.Printf("Invalid contig colours in %s were ignored: %v", describe(function), err)
			p.ContigColors = nil
			break
		}
	}
}

func describe(function string) string {
	if len(function) == 0 {
		return "plot configuration"
	}
	return "configuration of " + function
}

// Merge returns p with all set values of over applied.
func (p PlotConfig) Merge(over PlotConfig) PlotConfig {
	if len(over.SizingMode) != 0 {
		p.SizingMode = over.SizingMode
	}
	if over.Width != 0 {
		p.Width = over.Width
	}
	if over.Height != 0 {
		p.Height = over.Height
	}
	if over.RowHeight != 0 {
		p.RowHeight = over.RowHeight
	}
	if over.TrackHeight != 0 {
		p.TrackHeight = over.TrackHeight
	}
	if over.GenesHeight != 0 {
		p.GenesHeight = over.GenesHeight
	}
	if len(over.ToolbarLocation) != 0 {
		p.ToolbarLocation = over.ToolbarLocation
	}
	if len(over.OutputBackend) != 0 {
		p.OutputBackend = over.OutputBackend
	}
	if len(over.ContigColors) != 0 {
		p.ContigColors = slices.Clone(over.ContigColors)
	}
	if over.MarkerSize != 0 {
		p.MarkerSize = over.MarkerSize
	}
	if over.MarkerLineWidth != 0 {
		p.MarkerLineWidth = over.MarkerLineWidth
	}
	return p
}

// Options converts to plot options, with built-in defaults for unset values.
func (p PlotConfig) Options() gplt.Options {
	o := gplt.Options{
		SizingMode:      p.SizingMode,
		Height:          gplt.Pixels(p.Height),
		RowHeight:       gplt.Pixels(p.RowHeight),
		TrackHeight:     gplt.Pixels(p.TrackHeight),
		GenesHeight:     gplt.Pixels(p.GenesHeight),
		ToolbarLocation: p.ToolbarLocation,
		OutputBackend:   p.OutputBackend,
	}
	if p.Width > 0 {
		o.Width = gplt.WidthPx(p.Width)
	}
	if len(p.ContigColors) > 0 {
		d := make(gplt.CircleKwargsDict, len(p.ContigColors))
		for i, c := range p.ContigColors {
			k := gplt.CircleKwargs{
				"line_color": gplt.StyleString(c),
				"fill_color": gplt.StyleNull(),
			}
			if p.MarkerSize > 0 {
				k["size"] = gplt.StyleNumber(p.MarkerSize)
			}
			if p.MarkerLineWidth > 0 {
				k["line_width"] = gplt.StyleNumber(p.MarkerLineWidth)
			}
			d[gplt.ContigIndex(i)] = k
		}
		o.CircleKwargs = gplt.CircleKwargsByContig(d)
	}
	return o.WithDefaults()
}
