// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/JoakimRA/opmewoms/flx"
	"github.com/JoakimRA/opmewoms/fvm"
	"github.com/JoakimRA/opmewoms/inp"
	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/twocell", ".sim", true)
	verbose := io.ArgToBool(1, true)
	nproc := io.ArgToInt(2, 1)

	// message
	if verbose {
		io.PfWhite("\nopmewoms -- multiphase inter-cell fluxes over structured grids\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of goroutines", "nproc", nproc,
		))
	}

	// read simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation data:\n%v", err)
	}
	if verbose {
		io.Pf("simulation = %q (%s)\n", sim.Key, sim.Data.Desc)
	}

	// domain
	dom, err := fvm.NewDomainFromSim(sim)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}
	dom.Nproc = nproc

	// hydrostatic initial condition: pressures from the fluid profiles at the
	// cell centres, with the last coordinate as elevation
	grd := dom.Grd
	pl := make([]float64, grd.Ncell)
	pg := make([]float64, grd.Ncell)
	for cv := 0; cv < grd.Ncell; cv++ {
		z := grd.C[cv][grd.Ndim-1]
		pl[cv], _ = dom.Fsys.Liq.Calc(z)
		pg[cv], _ = dom.Fsys.Gas.Calc(z)
	}
	err = dom.SetIni(0, pl, pg)
	if err != nil {
		chk.Panic("cannot set initial state:\n%v", err)
	}

	// fluxes over all faces
	res, err := dom.CalcFluxes(flx.Current)
	if err != nil {
		chk.Panic("flux calculation failed:\n%v", err)
	}

	// report
	nint := len(grd.Faces)
	io.Pf("\n%6s%5s%5s %14s %14s %14s\n", "face", "in", "ex", "x[last]", "flux(liq)", "flux(gas)")
	for i, q := range res {
		if q == nil {
			continue // no-flow boundary
		}
		var x float64
		if i < nint {
			x = grd.Faces[i].X[grd.Ndim-1]
		} else {
			x = grd.Bry[i-nint].X[grd.Ndim-1]
		}
		io.Pf("%6d%5d%5d %14.6e %14.6e %14.6e\n", i, q.In(), q.Ex(), x,
			q.VolumeFlux(fluid.LiqPh), q.VolumeFlux(fluid.GasPh))
	}
}
