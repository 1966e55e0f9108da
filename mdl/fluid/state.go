// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "github.com/cpmech/gosl/chk"

// phase indices
const (
	LiqPh = iota // liquid (wetting) phase
	GasPh        // gas (non-wetting) phase
	Nph          // number of phases
)

// PhaseName returns the name of a phase
func PhaseName(iph int) string {
	switch iph {
	case LiqPh:
		return "liquid"
	case GasPh:
		return "gas"
	}
	chk.Panic("phase index %d is invalid", iph)
	return ""
}

// State holds the thermodynamic state of the two-phase (liquid-gas) mixture at one point.
// It is used to prescribe the exterior state at boundary faces.
type State struct {
	Sg   float64      // gas saturation
	P    [Nph]float64 // phase pressures
	R    [Nph]float64 // intrinsic densities
	Temp float64      // temperature
}

// Init initialises this structure. Densities are computed from the phase pressures
// with the models in sys
func (o *State) Init(sg, pl, pg, temp float64, sys *System) {
	o.Sg = sg
	o.P[LiqPh] = pl
	o.P[GasPh] = pg
	o.Temp = temp
	o.R[LiqPh] = sys.Liq.Density(pl)
	o.R[GasPh] = sys.Gas.Density(pg)
}

// Sat returns the saturation of a phase
func (o State) Sat(iph int) float64 {
	if iph == LiqPh {
		return 1.0 - o.Sg
	}
	return o.Sg
}

// Pc returns the capillary pressure pc = pg - pl
func (o State) Pc() float64 {
	return o.P[GasPh] - o.P[LiqPh]
}

// GetCopy returns a copy of State
func (o State) GetCopy() *State {
	s := o
	return &s
}
