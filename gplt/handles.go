// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

// Model is any object created by the plotting backend. It is kept broad to
// accommodate both single panel figures and multi panel layouts.
type Model interface {
	ModelID() string
}

// Range is an x axis range owned by the plotting backend. Tracks which
// share a Range have linked x axes.
type Range interface {
	Model
}

// ShownFigure returns the figure handle a plotting function hands back to
// its caller: nothing if the plot was shown, the figure otherwise.
func ShownFigure(show bool, fig Model) Model {
	if show {
		return nil
	}
	return fig
}
