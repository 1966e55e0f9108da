// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "github.com/cpmech/gosl/chk"

// System bundles the liquid and gas property models of one simulation
type System struct {
	Liq *Model // liquid properties
	Gas *Model // gas properties
}

// Init initialises this structure
func (o *System) Init(liq, gas *Model) error {
	if liq == nil || gas == nil {
		return chk.Err("fluid system: both liquid and gas models must be non-nil")
	}
	o.Liq = liq
	o.Gas = gas
	return nil
}

// Density returns the intrinsic density of a phase at pressure p
func (o System) Density(iph int, p float64) float64 {
	if iph == LiqPh {
		return o.Liq.Density(p)
	}
	return o.Gas.Density(p)
}

// Viscosity returns the dynamic viscosity of a phase
func (o System) Viscosity(iph int) float64 {
	if iph == LiqPh {
		return o.Liq.Mu
	}
	return o.Gas.Mu
}
