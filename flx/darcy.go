// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flx

import (
	"math"

	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/JoakimRA/opmewoms/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Darcy implements the linear Darcy relation between potential gradient and filter
// velocity:
//   v = -λ·K·(∇p - ρ·g)
// where λ is the upstream mobility, K the intrinsic permeability tensor, and the
// gravity term enters as a hydrostatic correction of the raw pressure gradient.
type Darcy struct {
}

// add model to factory
func init() {
	allocators["darcy"] = func() Model { return new(Darcy) }
}

// CalcGradients computes the per-phase potential gradients, the upwind directions,
// the upstream mobilities, and the face permeability of one interior face
func (o *Darcy) CalcGradients(q *ExQuantities, ctx *Ctx, f *msh.Face, tidx int) (err error) {
	if q.stg != StgEmpty {
		chk.Panic("flx: gradient computation must start from an empty record; call Reset first")
	}
	ndim := ctx.Ndim
	q.in = f.In
	q.ex = f.Ex

	// raw pressure gradients. phases not considered stay undefined
	for iph := 0; iph < fluid.Nph; iph++ {
		if !ctx.Consid[iph] {
			q.Gpot[iph] = nil
			continue
		}
		q.Gpot[iph] = make([]float64, ndim)
		jph := iph
		ctx.Gcalc.Grad(q.Gpot[iph], f, func(cv int) float64 {
			return ctx.Iq.Pressure(cv, jph, tidx)
		})
	}

	// correct the pressure gradients by the gravitational acceleration. the
	// acceleration at the face is estimated from the interior and exterior values
	if ctx.Prob.GravityOn() {
		gIn := ctx.Prob.Gravity(q.in, tidx)
		gEx := ctx.Prob.Gravity(q.ex, tidx)
		posIn := ctx.Iq.Pos(q.in)
		posEx := ctx.Iq.Pos(q.ex)

		// displacements from the volume centres to the integration point, and the
		// centre-to-centre vector
		dIn := make([]float64, ndim)
		dEx := make([]float64, ndim)
		dTot := make([]float64, ndim)
		var l2 float64
		for i := 0; i < ndim; i++ {
			dIn[i] = posIn[i] - f.X[i]
			dEx[i] = posEx[i] - f.X[i]
			dTot[i] = posEx[i] - posIn[i]
			l2 += dTot[i] * dTot[i]
		}

		for iph := 0; iph < fluid.Nph; iph++ {
			if !ctx.Consid[iph] {
				continue
			}

			// hydrostatic pressures at the integration point of the face
			ρIn := ctx.Iq.Density(q.in, iph, tidx)
			ρEx := ctx.Iq.Density(q.ex, iph, tidx)
			pStatIn := -ρIn * la.VecDot(gIn, dIn)
			pStatEx := -ρEx * la.VecDot(gEx, dEx)

			// the hydrostatic gradient points along the centre-to-centre vector
			// with length (pStatEx - pStatIn)/|centreToCentre|
			coef := (pStatEx - pStatIn) / l2
			for i := 0; i < ndim; i++ {
				q.Gpot[iph][i] += coef * dTot[i]
			}

			if !vecIsFinite(q.Gpot[iph]) {
				return chk.Err("flx: non-finite potential gradient for phase %q", fluid.PhaseName(iph))
			}
		}
	}

	// intrinsic permeability at the face
	ctx.Prob.FacePerm(q.K, f)

	// determine the upstream and downstream control volumes and take the mobility
	// from the upstream side
	for iph := 0; iph < fluid.Nph; iph++ {
		if !ctx.Consid[iph] {
			continue
		}
		proj := la.VecDot(q.Gpot[iph], f.N)
		if proj > 0 {
			q.up[iph] = q.ex
			q.dn[iph] = q.in
		} else {
			q.up[iph] = q.in
			q.dn[iph] = q.ex
		}
		q.mob[iph] = ctx.Iq.Mobility(q.up[iph], iph, tidx)
	}

	q.stg = StgGrads
	return
}

// CalcBoundaryGradients computes the same quantities for a boundary face whose
// exterior state bnd is prescribed. The exterior index becomes -1; when the
// upstream direction points outward, the mobility is synthesised from the
// prescribed state's relative permeability and viscosity
func (o *Darcy) CalcBoundaryGradients(q *ExQuantities, ctx *Ctx, f *msh.Face, tidx int, bnd *fluid.State) (err error) {
	if q.stg != StgEmpty {
		chk.Panic("flx: gradient computation must start from an empty record; call Reset first")
	}
	ndim := ctx.Ndim
	q.in = f.In
	q.ex = -1

	// raw pressure gradients against the prescribed state
	for iph := 0; iph < fluid.Nph; iph++ {
		if !ctx.Consid[iph] {
			q.Gpot[iph] = nil
			continue
		}
		q.Gpot[iph] = make([]float64, ndim)
		jph := iph
		ctx.Gcalc.BoundaryGrad(q.Gpot[iph], f, func(cv int) float64 {
			return ctx.Iq.Pressure(cv, jph, tidx)
		}, bnd.P[iph])
	}

	// permeability straight from the interior volume: no averaging partner
	perm := ctx.Iq.Perm(q.in)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			q.K[i][j] = perm[i][j]
		}
	}

	// gravity correction with the interior-side hydrostatic term only
	if ctx.Prob.GravityOn() {
		gIn := ctx.Prob.Gravity(q.in, tidx)
		posIn := ctx.Iq.Pos(q.in)

		dIn := make([]float64, ndim)
		var l2 float64
		for i := 0; i < ndim; i++ {
			dIn[i] = posIn[i] - f.X[i]
			l2 += dIn[i] * dIn[i]
		}
		absDist := math.Sqrt(l2)

		for iph := 0; iph < fluid.Nph; iph++ {
			if !ctx.Consid[iph] {
				continue
			}

			ρIn := ctx.Iq.Density(q.in, iph, tidx)
			pStatIn := -ρIn * la.VecDot(gIn, dIn)

			coef := (0 - pStatIn) / absDist
			for i := 0; i < ndim; i++ {
				q.Gpot[iph][i] += coef * dIn[i]
			}

			if !vecIsFinite(q.Gpot[iph]) {
				return chk.Err("flx: non-finite potential gradient for phase %q", fluid.PhaseName(iph))
			}
		}
	}

	// relative permeabilities of the prescribed state
	kr := make([]float64, fluid.Nph)
	ctx.Mat.RelPerms(kr, bnd)

	// upwind directions and mobilities. an outward upstream side has no volume
	// record, hence kr/μ from the prescribed state
	for iph := 0; iph < fluid.Nph; iph++ {
		if !ctx.Consid[iph] {
			continue
		}
		proj := la.VecDot(q.Gpot[iph], f.N)
		if proj > 0 {
			q.up[iph] = q.ex
			q.dn[iph] = q.in
		} else {
			q.up[iph] = q.in
			q.dn[iph] = q.ex
		}
		if q.up[iph] < 0 {
			q.mob[iph] = kr[iph] / ctx.Fsys.Viscosity(iph)
		} else {
			q.mob[iph] = ctx.Iq.Mobility(q.in, iph, tidx)
		}
	}

	q.stg = StgGrads
	return
}

// CalcFluxes computes the filter velocities and volumetric fluxes of all phases at
// an interior face. Gradients and upwind directions must have been computed already
func (o *Darcy) CalcFluxes(q *ExQuantities, ctx *Ctx, f *msh.Face) {
	o.calcFluxes(q, ctx, f)
}

// CalcBoundaryFluxes computes the filter velocities and volumetric fluxes of all
// phases at a boundary face. Gradients and upwind directions must have been
// computed already
func (o *Darcy) CalcBoundaryFluxes(q *ExQuantities, ctx *Ctx, f *msh.Face) {
	o.calcFluxes(q, ctx, f)
}

func (o *Darcy) calcFluxes(q *ExQuantities, ctx *Ctx, f *msh.Face) {
	if q.stg != StgGrads {
		chk.Panic("flx: fluxes requested before gradients were computed")
	}
	ndim := ctx.Ndim
	for iph := 0; iph < fluid.Nph; iph++ {

		// phases not considered get exactly zero so flux sums keep their
		// additive identity
		if !ctx.Consid[iph] {
			for i := 0; i < ndim; i++ {
				q.Vel[iph][i] = 0
			}
			q.Flux[iph] = 0
			continue
		}

		// v = -λ·K·∇Φ  and  flux = v·n
		la.MatVecMul(q.Vel[iph], -q.mob[iph], q.K, q.Gpot[iph])
		q.Flux[iph] = la.VecDot(q.Vel[iph], f.N)
	}
	q.stg = StgFluxes
}

// vecIsFinite tells whether all components of v are finite
func vecIsFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
