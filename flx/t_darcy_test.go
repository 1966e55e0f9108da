// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flx

import (
	"math"
	"testing"

	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/JoakimRA/opmewoms/msh"
	"github.com/cpmech/gosl/chk"
)

// fakeIq implements IntQuantities over explicit per-cell tables
type fakeIq struct {
	pos [][]float64 // [ncell][ndim] centres
	p   [][]float64 // [ncell][nph] pressures
	ρ   [][]float64 // [ncell][nph] densities
	mob [][]float64 // [ncell][nph] mobilities
	K   [][]float64 // permeability, same for all cells
}

func (o *fakeIq) Pressure(cv, iph, tidx int) float64 { return o.p[cv][iph] }
func (o *fakeIq) Density(cv, iph, tidx int) float64  { return o.ρ[cv][iph] }
func (o *fakeIq) Mobility(cv, iph, tidx int) float64 { return o.mob[cv][iph] }
func (o *fakeIq) Perm(cv int) [][]float64            { return o.K }
func (o *fakeIq) Pos(cv int) []float64               { return o.pos[cv] }

// fakeProb implements Problem with a constant gravity vector
type fakeProb struct {
	on bool
	g  []float64
	K  [][]float64
}

func (o *fakeProb) GravityOn() bool                { return o.on }
func (o *fakeProb) Gravity(cv, tidx int) []float64 { return o.g }
func (o *fakeProb) FacePerm(K [][]float64, f *msh.Face) {
	for i := range K {
		copy(K[i], o.K[i])
	}
}

// twoPoint implements GradCalculator with a two-point difference
type twoPoint struct {
	pos [][]float64
}

func (o *twoPoint) Grad(g []float64, f *msh.Face, val ScalarFn) {
	var l2 float64
	for i := range g {
		d := o.pos[f.Ex][i] - o.pos[f.In][i]
		g[i] = d
		l2 += d * d
	}
	coef := (val(f.Ex) - val(f.In)) / l2
	for i := range g {
		g[i] *= coef
	}
}

func (o *twoPoint) BoundaryGrad(g []float64, f *msh.Face, val ScalarFn, bndval float64) {
	var l2 float64
	for i := range g {
		d := f.X[i] - o.pos[f.In][i]
		g[i] = d
		l2 += d * d
	}
	coef := (bndval - val(f.In)) / l2
	for i := range g {
		g[i] *= coef
	}
}

// fakeMat implements MatLaw with fixed relative permeabilities
type fakeMat struct {
	kr []float64
}

func (o *fakeMat) RelPerms(kr []float64, bnd *fluid.State) {
	copy(kr, o.kr)
}

// newTestCtx builds a 1D two-cell configuration: centres at 0.5 and 1.5, face at
// 1.0 with normal [1]. both phases considered
func newTestCtx() (*Ctx, *fakeIq, *fakeProb, *msh.Face) {
	iq := &fakeIq{
		pos: [][]float64{{0.5}, {1.5}},
		p:   [][]float64{{10, 11}, {8, 9}},
		ρ:   [][]float64{{1, 0.0012}, {1, 0.0012}},
		mob: [][]float64{{2, 0.5}, {3, 0.25}},
		K:   [][]float64{{3}},
	}
	prob := &fakeProb{on: false, g: []float64{-10}, K: [][]float64{{3}}}
	liq := new(fluid.Model)
	liq.Init(liq.GetPrms(true), 10, 10)
	gas := new(fluid.Model)
	gas.Gas = true
	gas.Init(gas.GetPrms(true), 10, 10)
	var fsys fluid.System
	fsys.Init(liq, gas)
	ctx := &Ctx{
		Ndim:   1,
		Consid: []bool{true, true},
		Gcalc:  &twoPoint{pos: iq.pos},
		Prob:   prob,
		Iq:     iq,
		Mat:    &fakeMat{kr: []float64{0.7, 0.2}},
		Fsys:   &fsys,
	}
	face := &msh.Face{In: 0, Ex: 1, N: []float64{1}, X: []float64{1.0}, A: 1.0}
	return ctx, iq, prob, face
}

// mustPanic runs fcn and fails the test unless it panics
func mustPanic(tst *testing.T, msg string, fcn func()) {
	defer func() {
		if recover() == nil {
			tst.Errorf("%s: should have panicked\n", msg)
		}
	}()
	fcn()
}

func Test_darcy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("darcy01. 1D two-cell face: flux and upwinding")

	ctx, iq, _, face := newTestCtx()
	mdl, err := New("darcy")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// Δp = -2 for both phases ⇒ interior is upstream
	q := NewExQuantities(ctx.Ndim)
	err = mdl.CalcGradients(q, ctx, face, Current)
	if err != nil {
		tst.Errorf("CalcGradients failed: %v\n", err)
		return
	}

	// gravity disabled ⇒ potential gradient equals the raw two-point gradient
	chk.Vector(tst, "∇Φl", 1e-15, q.PotentialGrad(fluid.LiqPh), []float64{-2})
	chk.Vector(tst, "∇Φg", 1e-15, q.PotentialGrad(fluid.GasPh), []float64{-2})

	// exactly one of up/dn is the interior volume
	for iph := 0; iph < fluid.Nph; iph++ {
		chk.IntAssert(q.Up(iph), 0)
		chk.IntAssert(q.Dn(iph), 1)
	}
	chk.Scalar(tst, "λl upstream", 1e-15, q.Mobility(fluid.LiqPh), 2)
	chk.Scalar(tst, "λg upstream", 1e-15, q.Mobility(fluid.GasPh), 0.5)

	// flux = -λ·k·Δp/Δx
	mdl.CalcFluxes(q, ctx, face)
	chk.Scalar(tst, "fluxl", 1e-15, q.VolumeFlux(fluid.LiqPh), -2.0*3.0*(-2.0))
	chk.Scalar(tst, "fluxg", 1e-15, q.VolumeFlux(fluid.GasPh), -0.5*3.0*(-2.0))
	chk.Vector(tst, "vl", 1e-15, q.FilterVelocity(fluid.LiqPh), []float64{12})

	// swap the pressure differential ⇒ exterior becomes upstream
	iq.p = [][]float64{{8, 9}, {10, 11}}
	q.Reset()
	err = mdl.CalcGradients(q, ctx, face, Current)
	if err != nil {
		tst.Errorf("CalcGradients failed: %v\n", err)
		return
	}
	for iph := 0; iph < fluid.Nph; iph++ {
		chk.IntAssert(q.Up(iph), 1)
		chk.IntAssert(q.Dn(iph), 0)
	}
	chk.Scalar(tst, "λl upstream", 1e-15, q.Mobility(fluid.LiqPh), 3)
	mdl.CalcFluxes(q, ctx, face)
	chk.Scalar(tst, "fluxl", 1e-15, q.VolumeFlux(fluid.LiqPh), -3.0*3.0*2.0)
}

func Test_darcy02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("darcy02. phases not considered: undefined gradient, zero flux")

	ctx, _, _, face := newTestCtx()
	ctx.Consid = []bool{true, false}
	mdl, _ := New("darcy")

	q := NewExQuantities(ctx.Ndim)
	err := mdl.CalcGradients(q, ctx, face, Current)
	if err != nil {
		tst.Errorf("CalcGradients failed: %v\n", err)
		return
	}

	// reading the undefined gradient is a contract violation
	mustPanic(tst, "undefined-phase read", func() {
		q.PotentialGrad(fluid.GasPh)
	})

	// the flux stage yields exactly zero for the absent phase
	mdl.CalcFluxes(q, ctx, face)
	chk.Scalar(tst, "fluxg", 0, q.VolumeFlux(fluid.GasPh), 0)
	chk.Vector(tst, "vg", 0, q.FilterVelocity(fluid.GasPh), []float64{0})
}

func Test_darcy03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("darcy03. state machine misuse")

	ctx, _, _, face := newTestCtx()
	mdl, _ := New("darcy")

	// fluxes before gradients
	q := NewExQuantities(ctx.Ndim)
	mustPanic(tst, "fluxes before gradients", func() {
		mdl.CalcFluxes(q, ctx, face)
	})

	// re-entry without Reset
	err := mdl.CalcGradients(q, ctx, face, Current)
	if err != nil {
		tst.Errorf("CalcGradients failed: %v\n", err)
		return
	}
	mustPanic(tst, "gradients on a non-empty record", func() {
		mdl.CalcGradients(q, ctx, face, Current)
	})
}

func Test_darcy04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("darcy04. gravity correction and numerical failure")

	ctx, iq, prob, face := newTestCtx()
	prob.on = true
	mdl, _ := New("darcy")

	// hydrostatic equilibrium: p(x) = 10·(2 - x) with ρ = 1 and g = [-10] ⇒ the
	// corrected potential gradient and the flux vanish
	iq.p = [][]float64{{15, 15}, {5, 5}}
	iq.ρ = [][]float64{{1, 1}, {1, 1}}

	q := NewExQuantities(ctx.Ndim)
	err := mdl.CalcGradients(q, ctx, face, Current)
	if err != nil {
		tst.Errorf("CalcGradients failed: %v\n", err)
		return
	}
	chk.Vector(tst, "∇Φl", 1e-14, q.PotentialGrad(fluid.LiqPh), []float64{0})
	mdl.CalcFluxes(q, ctx, face)
	chk.Scalar(tst, "fluxl", 1e-13, q.VolumeFlux(fluid.LiqPh), 0)

	// opposite-sign infinite densities make the hydrostatic term non-finite; the
	// failure must surface as an error instead of reaching the flux output
	iq.ρ = [][]float64{{math.Inf(1), 1}, {math.Inf(-1), 1}}
	q.Reset()
	err = mdl.CalcGradients(q, ctx, face, Current)
	if err == nil {
		tst.Errorf("CalcGradients should have failed with non-finite gradient\n")
		return
	}
	chk.IntAssert(q.Stage(), StgEmpty) // record must not advance after the failure
}

func Test_darcy05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("darcy05. idempotence: bit-identical repetition")

	ctx, _, _, face := newTestCtx()
	mdl, _ := New("darcy")

	qa := NewExQuantities(ctx.Ndim)
	qb := NewExQuantities(ctx.Ndim)
	for _, q := range []*ExQuantities{qa, qb} {
		err := mdl.CalcGradients(q, ctx, face, Current)
		if err != nil {
			tst.Errorf("CalcGradients failed: %v\n", err)
			return
		}
		mdl.CalcFluxes(q, ctx, face)
	}
	for iph := 0; iph < fluid.Nph; iph++ {
		if qa.VolumeFlux(iph) != qb.VolumeFlux(iph) {
			tst.Errorf("volume fluxes differ for phase %d\n", iph)
		}
		for i := 0; i < ctx.Ndim; i++ {
			if qa.PotentialGrad(iph)[i] != qb.PotentialGrad(iph)[i] {
				tst.Errorf("potential gradients differ for phase %d\n", iph)
			}
			if qa.FilterVelocity(iph)[i] != qb.FilterVelocity(iph)[i] {
				tst.Errorf("filter velocities differ for phase %d\n", iph)
			}
		}
	}
}
