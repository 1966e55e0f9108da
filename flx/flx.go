// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flx computes inter-cell volumetric fluxes for multiphase flow through
// porous media using a finite-volume discretisation. For each face, a flux model
// first computes per-phase pressure-potential gradients corrected for gravity and
// classifies each phase as upstream or downstream; it then combines the intrinsic
// permeability tensor, the potential gradient, and the upstream mobility into a
// filter velocity and a volumetric flux. Results live in a face-local ExQuantities
// record for reuse by the residual/Jacobian assembler.
package flx

import (
	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/JoakimRA/opmewoms/msh"
)

// time level indices of stored solutions
const (
	Current  = iota // the iterate being solved for
	Previous        // the last accepted solution
)

// ScalarFn returns the value of a scalar field at a control volume
type ScalarFn func(cv int) float64

// GradCalculator approximates the gradient of a scalar field at a face
// integration point
type GradCalculator interface {

	// Grad computes the gradient at an interior face. val samples the field at
	// control-volume centres
	Grad(g []float64, f *msh.Face, val ScalarFn)

	// BoundaryGrad computes the gradient at a boundary face between the interior
	// control volume and the prescribed exterior value bndval
	BoundaryGrad(g []float64, f *msh.Face, val ScalarFn, bndval float64)
}

// Problem provides simulation-wide data required by flux models
type Problem interface {
	GravityOn() bool                       // gravity correction is enabled
	Gravity(cv, tidx int) []float64        // acceleration at a control volume
	FacePerm(K [][]float64, f *msh.Face)   // intrinsic permeability at an interior face
}

// IntQuantities provides per-control-volume intensive quantities at a time level
type IntQuantities interface {
	Pressure(cv, iph, tidx int) float64 // phase pressure
	Density(cv, iph, tidx int) float64  // intrinsic density of phase
	Mobility(cv, iph, tidx int) float64 // phase mobility = kr/μ
	Perm(cv int) [][]float64            // intrinsic permeability of a control volume
	Pos(cv int) []float64               // centre of a control volume
}

// MatLaw synthesises relative permeabilities from a prescribed fluid state. It is
// needed at boundary faces when the upstream side lies outside the domain
type MatLaw interface {
	RelPerms(kr []float64, bnd *fluid.State)
}

// Ctx bundles the external collaborators of one face evaluation. The collaborators
// are read-only during flux assembly, hence one Ctx may be shared by concurrent
// face evaluations
type Ctx struct {
	Ndim   int            // space dimension
	Consid []bool         // [fluid.Nph] phase is considered by the active configuration
	Gcalc  GradCalculator // gradient approximation
	Prob   Problem        // gravity and permeability data
	Iq     IntQuantities  // per-control-volume quantities
	Mat    MatLaw         // relative permeabilities for prescribed states
	Fsys   *fluid.System  // fluid densities and viscosities
}
