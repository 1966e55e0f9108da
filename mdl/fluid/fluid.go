// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for fluid density and viscosity
package fluid

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a model to compute pressure (p) and intrinsic density (R) of a fluid
// along a column with gravity (g). The model is:
//   R(p) = R0 + C·(p - p0)   thus   dR/dp = C
type Model struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0
	P0  float64 // pressure corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R·θ)
	Mu  float64 // dynamic viscosity
	Gas bool    // is gas instead of liquid?

	// additional data
	H    float64 // elevation where (R0,p0) is known
	Grav float64 // gravity acceleration (positive constant)
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params, H, grav float64) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "Mu":
			o.Mu = p.V
		case "gas":
			o.Gas = p.V > 0
		}
	}
	o.H = H
	o.Grav = grav
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note:
//   Gas variable is used to return dry air properties instead of water
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		if o.Gas {
			return dbf.Params{ // dry air
				&dbf.P{N: "R0", V: 0.0012},  // [Mg/m³]
				&dbf.P{N: "P0", V: 0.0},     // [kPa]
				&dbf.P{N: "C", V: 1.17e-5},  // [Mg/(m³·kPa)]
				&dbf.P{N: "Mu", V: 1.8e-8},  // [kPa·s]
				&dbf.P{N: "Gas", V: 1},      // [-]
			}
		}
		return dbf.Params{ // water
			&dbf.P{N: "R0", V: 1.0},    // [Mg/m³]
			&dbf.P{N: "P0", V: 0.0},    // [kPa]
			&dbf.P{N: "C", V: 4.53e-7}, // [Mg/(m³·kPa)]
			&dbf.P{N: "Mu", V: 1e-6},   // [kPa·s]
			&dbf.P{N: "Gas", V: 0},     // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "Mu", V: o.Mu},
		&dbf.P{N: "Gas", V: gas},
	}
}

// Calc computes pressure and density
func (o Model) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// Density computes the intrinsic density corresponding to pressure p
func (o Model) Density(p float64) float64 {
	return o.R0 + o.C*(p-o.P0)
}
