// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"

	"github.com/JoakimRA/opmewoms/flx"
	"github.com/JoakimRA/opmewoms/mdl/conduct"
	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/JoakimRA/opmewoms/mdl/porous"
	"github.com/JoakimRA/opmewoms/mdl/retention"
	"github.com/JoakimRA/opmewoms/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// newColumn builds a 1D column with nc cells of unit size and a porous medium with
// isotropic permeability k and (almost) incompressible fluids
func newColumn(tst *testing.T, nc int, k float64, gravOn bool) *Domain {

	// grid
	grd := new(msh.Grid)
	err := grd.Init(1, []int{nc}, []float64{float64(nc)}, nil)
	if err != nil {
		tst.Fatalf("grid Init failed: %v\n", err)
	}

	// models
	Cnd := new(conduct.M1)
	if err = Cnd.Init(Cnd.GetPrms(true)); err != nil {
		tst.Fatalf("conduct Init failed: %v\n", err)
	}
	Lrm := new(retention.VanGen)
	if err = Lrm.Init(Lrm.GetPrms(true)); err != nil {
		tst.Fatalf("retention Init failed: %v\n", err)
	}
	H := float64(nc)
	grav := 10.0
	Liq := new(fluid.Model)
	Liq.Init(Liq.GetPrms(true), H, grav)
	Liq.C = 1e-15 // keep densities constant for the checks below
	Gas := new(fluid.Model)
	Gas.Gas = true
	Gas.Init(Gas.GetPrms(true), H, grav)
	Gas.C = 1e-15

	mdl := new(porous.Model)
	prms := dbf.Params{
		&dbf.P{N: "nf0", V: 0.3},
		&dbf.P{N: "RhoS0", V: 2.7},
		&dbf.P{N: "k", V: k},
	}
	if err = mdl.Init(prms, Cnd, Lrm, Liq, Gas); err != nil {
		tst.Fatalf("porous Init failed: %v\n", err)
	}

	fsys := new(fluid.System)
	if err = fsys.Init(Liq, Gas); err != nil {
		tst.Fatalf("fluid system Init failed: %v\n", err)
	}

	// domain
	dom, err := NewDomain(grd, mdl, fsys, "darcy", &dbf.Cte{C: grav}, []bool{true, true}, gravOn, false)
	if err != nil {
		tst.Fatalf("NewDomain failed: %v\n", err)
	}
	return dom
}

func Test_dom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dom01. pressure-driven column without gravity")

	nc := 2
	k := 3.0
	dom := newColumn(tst, nc, k, false)

	// Δp = -2 across the single interior face; pc < 0 keeps the medium saturated
	pl := []float64{10, 8}
	pg := []float64{0, 0}
	err := dom.SetIni(0, pl, pg)
	if err != nil {
		tst.Errorf("SetIni failed: %v\n", err)
		return
	}

	res, err := dom.CalcFluxes(flx.Current)
	if err != nil {
		tst.Errorf("CalcFluxes failed: %v\n", err)
		return
	}
	chk.IntAssert(len(res), 1+2)

	// expected liquid flux = -λ·k·Δp/Δx with λ = klr(slmax)/μl
	mob := dom.Mdl.Cnd.Klr(dom.Mdl.Lrm.SlMax()) / dom.Fsys.Viscosity(fluid.LiqPh)
	q := res[0]
	chk.Scalar(tst, "fluxl", 1e-7, q.VolumeFlux(fluid.LiqPh), -mob*k*(-2.0))
	chk.IntAssert(q.Up(fluid.LiqPh), 0)
	chk.IntAssert(q.Dn(fluid.LiqPh), 1)

	// boundary faces are no-flow unless a state is prescribed
	if res[1] != nil || res[2] != nil {
		tst.Errorf("no-flow boundary faces must yield nil records\n")
	}
}

func Test_dom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dom02. hydrostatic equilibrium ⇒ zero flux")

	nc := 4
	dom := newColumn(tst, nc, 1e-10, true)

	// hydrostatic liquid pressure with ρl = 1 and g = 10: pl(z) = 10·(nc - z)
	pl := make([]float64, nc)
	pg := make([]float64, nc)
	for cv := 0; cv < nc; cv++ {
		z := dom.Grd.C[cv][0]
		pl[cv] = 10.0 * (float64(nc) - z)
	}
	err := dom.SetIni(0, pl, pg)
	if err != nil {
		tst.Errorf("SetIni failed: %v\n", err)
		return
	}

	res, err := dom.CalcFluxes(flx.Current)
	if err != nil {
		tst.Errorf("CalcFluxes failed: %v\n", err)
		return
	}
	for i := 0; i < len(dom.Grd.Faces); i++ {
		chk.Scalar(tst, "fluxl", 1e-12, res[i].VolumeFlux(fluid.LiqPh), 0)
	}
}

func Test_dom03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dom03. concurrent assembly equals sequential assembly")

	nc := 12
	dom := newColumn(tst, nc, 2.0, false)
	pl := make([]float64, nc)
	pg := make([]float64, nc)
	for cv := 0; cv < nc; cv++ {
		pl[cv] = 10.0 + float64(cv*cv) // nonuniform profile
	}
	err := dom.SetIni(0, pl, pg)
	if err != nil {
		tst.Errorf("SetIni failed: %v\n", err)
		return
	}

	// prescribe a boundary state at the last boundary face
	var bnd fluid.State
	bnd.Init(0, 200.0, 0, 298.0, dom.Fsys)
	dom.SetBoundary(1, &bnd)

	seq, err := dom.CalcFluxes(flx.Current)
	if err != nil {
		tst.Errorf("CalcFluxes failed: %v\n", err)
		return
	}
	dom.Nproc = 4
	par, err := dom.CalcFluxes(flx.Current)
	if err != nil {
		tst.Errorf("CalcFluxes failed: %v\n", err)
		return
	}
	for i := range seq {
		if seq[i] == nil {
			if par[i] != nil {
				tst.Errorf("face %d: nil mismatch\n", i)
			}
			continue
		}
		for iph := 0; iph < fluid.Nph; iph++ {
			if seq[i].VolumeFlux(iph) != par[i].VolumeFlux(iph) {
				tst.Errorf("face %d: concurrent flux differs\n", i)
			}
		}
	}
}

func Test_dom04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dom04. WrtInitial evaluates with previous-level unknowns")

	nc := 2
	dom := newColumn(tst, nc, 3.0, false)
	err := dom.SetIni(0, []float64{10, 8}, []float64{0, 0})
	if err != nil {
		tst.Errorf("SetIni failed: %v\n", err)
		return
	}

	// fluxes of the initial solution
	res0, err := dom.CalcFluxes(flx.Current)
	if err != nil {
		tst.Errorf("CalcFluxes failed: %v\n", err)
		return
	}

	// advance to a different iterate
	err = dom.Update(1, []float64{20, 4}, []float64{0, 0})
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	res1, err := dom.CalcFluxes(flx.Current)
	if err != nil {
		tst.Errorf("CalcFluxes failed: %v\n", err)
		return
	}
	if res1[0].VolumeFlux(fluid.LiqPh) == res0[0].VolumeFlux(fluid.LiqPh) {
		tst.Errorf("fluxes should have changed after Update\n")
		return
	}

	// with the flag on, the current level maps to the previous one
	dom.WrtInitial = true
	resW, err := dom.CalcFluxes(flx.Current)
	if err != nil {
		tst.Errorf("CalcFluxes failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "flux(WrtInitial)", 1e-15, resW[0].VolumeFlux(fluid.LiqPh), res0[0].VolumeFlux(fluid.LiqPh))
}
