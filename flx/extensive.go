// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flx

import (
	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// evaluation stages of one ExQuantities record. gradients must be computed before
// fluxes; any other call order is a contract violation
const (
	StgEmpty  = iota // nothing computed yet
	StgGrads         // gradients, upwind directions and mobilities computed
	StgFluxes        // filter velocities and volume fluxes computed
)

// ExQuantities holds the extensive quantities of one face evaluation. The record is
// owned exclusively by its face: nothing is shared or aliased across faces, so a
// parallel assembly loop may fill records of distinct faces concurrently.
//
// Per-phase potential gradients are nil for phases not considered by the active
// configuration and must never be read; filter velocities and volume fluxes of such
// phases are exactly zero so that mass-balance sums keep their additive identity.
type ExQuantities struct {

	// results
	K    [][]float64 // [ndim][ndim] intrinsic permeability at the face
	Gpot [][]float64 // [nph][ndim] potential gradients; nil ⇒ phase not considered
	Vel  [][]float64 // [nph][ndim] filter velocities
	Flux []float64   // [nph] volumetric fluxes (velocity·normal)

	// upwind data
	mob []float64 // [nph] upstream mobilities
	up  []int     // [nph] upstream control volume; -1 ⇒ outside the domain
	dn  []int     // [nph] downstream control volume
	in  int       // interior control volume
	ex  int       // exterior control volume; -1 at boundary faces

	// state machine
	stg int
}

// NewExQuantities allocates a record for one face evaluation
func NewExQuantities(ndim int) *ExQuantities {
	o := new(ExQuantities)
	o.K = la.MatAlloc(ndim, ndim)
	o.Gpot = make([][]float64, fluid.Nph)
	o.Vel = la.MatAlloc(fluid.Nph, ndim)
	o.Flux = make([]float64, fluid.Nph)
	o.mob = make([]float64, fluid.Nph)
	o.up = make([]int, fluid.Nph)
	o.dn = make([]int, fluid.Nph)
	o.stg = StgEmpty
	return o
}

// Reset clears results so the record can be used for a fresh evaluation
func (o *ExQuantities) Reset() {
	for iph := 0; iph < fluid.Nph; iph++ {
		o.Gpot[iph] = nil
	}
	o.stg = StgEmpty
}

// Stage returns the current evaluation stage
func (o ExQuantities) Stage() int {
	return o.stg
}

// Perm returns the intrinsic permeability tensor at the face
func (o ExQuantities) Perm() [][]float64 {
	if o.stg < StgGrads {
		chk.Panic("flx: permeability requested before gradients were computed")
	}
	return o.K
}

// PotentialGrad returns the pressure-potential gradient of a phase
func (o ExQuantities) PotentialGrad(iph int) []float64 {
	if o.stg < StgGrads {
		chk.Panic("flx: potential gradient requested before gradients were computed")
	}
	if o.Gpot[iph] == nil {
		chk.Panic("flx: potential gradient of phase %q is undefined because the phase is not considered", fluid.PhaseName(iph))
	}
	return o.Gpot[iph]
}

// FilterVelocity returns the filter velocity of a phase
func (o ExQuantities) FilterVelocity(iph int) []float64 {
	if o.stg < StgFluxes {
		chk.Panic("flx: filter velocity requested before fluxes were computed")
	}
	return o.Vel[iph]
}

// VolumeFlux returns the volumetric flux of a phase across the face. The sign is
// positive for flow in the direction of the face normal
func (o ExQuantities) VolumeFlux(iph int) float64 {
	if o.stg < StgFluxes {
		chk.Panic("flx: volume flux requested before fluxes were computed")
	}
	return o.Flux[iph]
}

// Up returns the upstream control volume of a phase; -1 ⇒ outside the domain
func (o ExQuantities) Up(iph int) int {
	if o.stg < StgGrads {
		chk.Panic("flx: upstream index requested before gradients were computed")
	}
	return o.up[iph]
}

// Dn returns the downstream control volume of a phase
func (o ExQuantities) Dn(iph int) int {
	if o.stg < StgGrads {
		chk.Panic("flx: downstream index requested before gradients were computed")
	}
	return o.dn[iph]
}

// Mobility returns the upstream mobility of a phase
func (o ExQuantities) Mobility(iph int) float64 {
	if o.stg < StgGrads {
		chk.Panic("flx: mobility requested before gradients were computed")
	}
	return o.mob[iph]
}

// In returns the interior control volume of the face
func (o ExQuantities) In() int {
	return o.in
}

// Ex returns the exterior control volume of the face; -1 at boundary faces
func (o ExQuantities) Ex() int {
	return o.ex
}
