// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/JoakimRA/opmewoms/inp"
	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/JoakimRA/opmewoms/msh"
)

// NewDomainFromSim builds a domain from data read from .sim and .mat files
func NewDomainFromSim(sim *inp.Simulation) (o *Domain, err error) {

	// grid
	grd := new(msh.Grid)
	err = grd.Init(sim.Grid.Ndim, sim.Grid.Ncell, sim.Grid.Size, sim.Grid.Xmin)
	if err != nil {
		return
	}

	// fluids
	fsys := new(fluid.System)
	err = fsys.Init(sim.LiqMdl().Fluid, sim.GasMdl().Fluid)
	if err != nil {
		return
	}

	// domain
	consid := []bool{true, !sim.Data.NoGas}
	return NewDomain(grd, sim.PorMdl().Porous, fsys, sim.Data.FluxMdl, sim.Gfcn, consid, sim.GravW, sim.Data.WrtIni)
}
