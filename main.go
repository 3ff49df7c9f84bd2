// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"genomeplot/config"
	"genomeplot/gplt"

	"gopkg.in/yaml.v3"
)

type paramReference struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Domain      string      `yaml:"domain"`
	Default     interface{} `yaml:"default,omitempty"`
}

type reference struct {
	Parameters []paramReference `yaml:"parameters"`
	Effective  gplt.Options     `yaml:"effective"`
}

func main() {
	function := flag.String("function", "", "show the effective options of this plotting function")
	flag.Parse()

	c, err := config.NewGlobalConfig().Copy(false)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := writeReference(os.Stdout, &c, *function); err != nil {
		log.Fatalf("failed to write parameter reference: %v", err)
	}
}

// Writes all parameter definitions and the effective options of function as yaml.
func writeReference(w io.Writer, c *config.AppConfig, function string) error {
	ref := reference{Effective: c.Options(function)}
	for _, p := range gplt.Defs() {
		r := paramReference{
			Name:        p.Name,
			Description: p.Description,
			Domain:      p.Domain.String(),
		}
		// The unset width would otherwise be omitted like a missing default.
		if w, ok := p.Default.(gplt.Width); ok {
			r.Default = w.String()
		} else if p.HasDefault {
			r.Default = p.Default
		}
		ref.Parameters = append(ref.Parameters, r)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&ref); err != nil {
		return err
	}
	return enc.Close()
}
