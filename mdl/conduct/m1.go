// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// M1 implements the liquid-gas conductivity model # 1: a bounded blend of linear and
// power laws in saturation. For the liquid phase:
//   klr(sl) = λ0l + (λ1l - λ0l)·[(1-αl)·sl^βl + αl·sl]
// and likewise for the gas phase in terms of sg. λ0 and λ1 are the values at zero and
// full saturation; α blends the linear part in; β sharpens the power part.
type M1 struct {

	// parameters for liquid
	λ0l, λ1l, αl, βl float64

	// parameters for gas
	λ0g, λ1g, αg, βg float64
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises this structure
func (o *M1) Init(prms dbf.Params) (err error) {
	o.λ1l, o.βl = 1.0, 3.0
	o.λ1g, o.βg = 1.0, 3.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam0l":
			o.λ0l = p.V
		case "lam1l":
			o.λ1l = p.V
		case "alpl":
			o.αl = p.V
		case "betl":
			o.βl = p.V
		case "lam0g":
			o.λ0g = p.V
		case "lam1g":
			o.λ1g = p.V
		case "alpg":
			o.αg = p.V
		case "betg":
			o.βg = p.V
		default:
			return chk.Err("m1: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.βl < 1 || o.βg < 1 {
		return chk.Err("m1: betl=%g and betg=%g must be greater than or equal to 1", o.βl, o.βg)
	}
	if o.αl < 0 || o.αl > 1 || o.αg < 0 || o.αg > 1 {
		return chk.Err("m1: alpl=%g and alpg=%g must be in [0, 1]", o.αl, o.αg)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o M1) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam0l", V: 0.001},
			&dbf.P{N: "lam1l", V: 1.0},
			&dbf.P{N: "alpl", V: 0.01},
			&dbf.P{N: "betl", V: 3},
			&dbf.P{N: "lam0g", V: 2.0},
			&dbf.P{N: "lam1g", V: 0.001},
			&dbf.P{N: "alpg", V: 0.01},
			&dbf.P{N: "betg", V: 3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam0l", V: o.λ0l},
		&dbf.P{N: "lam1l", V: o.λ1l},
		&dbf.P{N: "alpl", V: o.αl},
		&dbf.P{N: "betl", V: o.βl},
		&dbf.P{N: "lam0g", V: o.λ0g},
		&dbf.P{N: "lam1g", V: o.λ1g},
		&dbf.P{N: "alpg", V: o.αg},
		&dbf.P{N: "betg", V: o.βg},
	}
}

// Klr returns klr
func (o M1) Klr(sl float64) float64 {
	return o.λ0l + (o.λ1l-o.λ0l)*((1.0-o.αl)*math.Pow(sl, o.βl)+o.αl*sl)
}

// Kgr returns kgr
func (o M1) Kgr(sg float64) float64 {
	return o.λ0g + (o.λ1g-o.λ0g)*((1.0-o.αg)*math.Pow(sg, o.βg)+o.αg*sg)
}

// DklrDsl returns ∂klr/∂sl
func (o M1) DklrDsl(sl float64) float64 {
	return (o.λ1l - o.λ0l) * ((1.0-o.αl)*o.βl*math.Pow(sl, o.βl-1.0) + o.αl)
}

// DkgrDsg returns ∂kgr/∂sg
func (o M1) DkgrDsg(sg float64) float64 {
	return (o.λ1g - o.λ0g) * ((1.0-o.αg)*o.βg*math.Pow(sg, o.βg-1.0) + o.αg)
}
