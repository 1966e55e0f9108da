// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flx

import (
	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/JoakimRA/opmewoms/msh"
	"github.com/cpmech/gosl/chk"
)

// Model defines flux-law models. For every face, gradients must be computed before
// fluxes; the ExQuantities record enforces this order.
//
// Gradient computation reports numerical failures (non-finite corrected gradients)
// as errors so the enclosing nonlinear solver can reduce the step or abort. Flux
// computation cannot fail numerically; calling it out of order panics.
type Model interface {
	CalcGradients(q *ExQuantities, ctx *Ctx, f *msh.Face, tidx int) error
	CalcBoundaryGradients(q *ExQuantities, ctx *Ctx, f *msh.Face, tidx int, bnd *fluid.State) error
	CalcFluxes(q *ExQuantities, ctx *Ctx, f *msh.Face)
	CalcBoundaryFluxes(q *ExQuantities, ctx *Ctx, f *msh.Face)
}

// New returns a new flux model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'flx' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
