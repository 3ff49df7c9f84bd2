// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"genomeplot/gplt"

	"github.com/barkimedes/go-deepcopy"
	"golang.org/x/exp/slices"
)

type AppConfig struct {
	// Defaults shared by all plotting functions.
	PlotConfig PlotConfig
	// Overrides per plotting function, e.g. "plot_genes". Zero fields inherit.
	FunctionConfig map[string]PlotConfig `yaml:",omitempty"`
}

var defaultPlotConfig = NewPlotConfig()

func NewAppConfig() AppConfig {
	return AppConfig{
		PlotConfig:     NewPlotConfig(),
		FunctionConfig: make(map[string]PlotConfig),
	}
}

func (a *AppConfig) deepCopy() AppConfig {
	c, err := deepcopy.Anything(a)
	if err != nil {
		panic(err)
	}
	return *c.(*AppConfig)
}

func (a *AppConfig) Sanitize() {
	if a.FunctionConfig == nil {
		a.FunctionConfig = make(map[string]PlotConfig)
	}
	a.PlotConfig.sanitize("")
	for name, c := range a.FunctionConfig {
		c.sanitize(name)
		a.FunctionConfig[name] = c
	}
	a.RestoreDefaults()
}

func (a *AppConfig) SetFunctionConfig(function string, c PlotConfig) {
	if a.FunctionConfig == nil {
		a.FunctionConfig = make(map[string]PlotConfig)
	}
	a.FunctionConfig[function] = c
}

// Options returns the effective plot options of a plotting function.
func (a *AppConfig) Options(function string) gplt.Options {
	return a.PlotConfig.Merge(a.FunctionConfig[function]).Options()
}

// We do not want to store built-in default values in the configuration
// file, so that changed defaults of a newer release take effect.
func (a *AppConfig) RemoveDefaults() {
	c := &a.PlotConfig
	def := defaultPlotConfig
	if c.SizingMode == def.SizingMode {
		c.SizingMode = ""
	}
	if c.GenesHeight == def.GenesHeight {
		c.GenesHeight = 0
	}
	if c.ToolbarLocation == def.ToolbarLocation {
		c.ToolbarLocation = ""
	}
	if c.OutputBackend == def.OutputBackend {
		c.OutputBackend = ""
	}
	if slices.Equal(c.ContigColors, def.ContigColors) {
		c.ContigColors = nil
	}
	if c.MarkerSize == def.MarkerSize {
		c.MarkerSize = 0
	}
	if c.MarkerLineWidth == def.MarkerLineWidth {
		c.MarkerLineWidth = 0
	}
}

// Restore default values which are not stored in the configuration file.
func (a *AppConfig) RestoreDefaults() {
	c := &a.PlotConfig
	def := defaultPlotConfig
	if len(c.SizingMode) == 0 {
		c.SizingMode = def.SizingMode
	}
	if c.GenesHeight == 0 {
		c.GenesHeight = def.GenesHeight
	}
	if len(c.ToolbarLocation) == 0 {
		c.ToolbarLocation = def.ToolbarLocation
	}
	if len(c.OutputBackend) == 0 {
		c.OutputBackend = def.OutputBackend
	}
	if len(c.ContigColors) == 0 {
		c.ContigColors = gplt.DefaultContigColors()
	}
	if c.MarkerSize == 0 {
		c.MarkerSize = def.MarkerSize
	}
	if c.MarkerLineWidth == 0 {
		c.MarkerLineWidth = def.MarkerLineWidth
	}
}
