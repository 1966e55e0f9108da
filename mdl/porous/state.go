// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

// State holds state variables for porous media with liquid and gas
type State struct {
	A_ns0 float64 // 1 initial partial fraction of solids
	A_sl  float64 // 2 liquid saturation
	A_ρL  float64 // 3 real (intrinsic) density of liquid
	A_ρG  float64 // 4 real (intrinsic) density of gas
	A_Δpc float64 // 5 step increment of capillary pressure
	A_wet bool    // 6 wetting flag
}

// GetCopy returns a copy of State
func (o State) GetCopy() *State {
	return &State{
		o.A_ns0, // 1
		o.A_sl,  // 2
		o.A_ρL,  // 3
		o.A_ρG,  // 4
		o.A_Δpc, // 5
		o.A_wet, // 6
	}
}

// Set sets this State with another State
func (o *State) Set(s *State) {
	o.A_ns0 = s.A_ns0 // 1
	o.A_sl = s.A_sl   // 2
	o.A_ρL = s.A_ρL   // 3
	o.A_ρG = s.A_ρG   // 4
	o.A_Δpc = s.A_Δpc // 5
	o.A_wet = s.A_wet // 6
}

// Sg returns the gas saturation
func (o State) Sg() float64 {
	return 1.0 - o.A_sl
}
