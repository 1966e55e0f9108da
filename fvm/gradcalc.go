// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the finite-volume domain assembly that evaluates flux
// models on every face of a structured grid
package fvm

import (
	"github.com/JoakimRA/opmewoms/flx"
	"github.com/JoakimRA/opmewoms/msh"
)

// TwoPoint implements a two-point gradient approximation: the difference of the
// field values divided by the distance, directed along the line connecting the two
// control-volume centres (interior faces) or the centre and the face integration
// point (boundary faces)
type TwoPoint struct {
	Grd *msh.Grid
}

// Grad computes the gradient at an interior face
func (o TwoPoint) Grad(g []float64, f *msh.Face, val flx.ScalarFn) {
	xin := o.Grd.C[f.In]
	xex := o.Grd.C[f.Ex]
	var l2 float64
	for i := range g {
		d := xex[i] - xin[i]
		g[i] = d
		l2 += d * d
	}
	coef := (val(f.Ex) - val(f.In)) / l2
	for i := range g {
		g[i] *= coef
	}
}

// BoundaryGrad computes the gradient at a boundary face against the prescribed
// exterior value bndval
func (o TwoPoint) BoundaryGrad(g []float64, f *msh.Face, val flx.ScalarFn, bndval float64) {
	xin := o.Grd.C[f.In]
	var l2 float64
	for i := range g {
		d := f.X[i] - xin[i]
		g[i] = d
		l2 += d * d
	}
	coef := (bndval - val(f.In)) / l2
	for i := range g {
		g[i] *= coef
	}
}
