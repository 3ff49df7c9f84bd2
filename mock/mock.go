// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"log"
	"os"
	"testing"

	"genomeplot/config"
	"genomeplot/gplt"

	"github.com/stretchr/testify/assert"
)

func NewLogger(t *testing.T) (*log.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return log.New(w, "", log.LstdFlags), bufio.NewScanner(r)
}

// NewFunctionConfig returns a test configuration with an override for one
// plotting function.
func NewFunctionConfig(function string, over config.PlotConfig) config.Config {
	c := NewTestConfig()
	appConfig, _ := c.Lock()
	appConfig.SetFunctionConfig(function, over)
	_ = c.Unlock(appConfig, true)
	return c
}

// Range is a backend range handle for tests.
type Range string

func (r Range) ModelID() string {
	return string(r)
}

var _ gplt.Range = Range("")
