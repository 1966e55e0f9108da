// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. sim and mat files")

	sim, err := ReadSim("data/twocell.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", sim.Mdb)

	// global data
	if sim.Key != "twocell" {
		tst.Errorf("sim key is incorrect: %q\n", sim.Key)
		return
	}
	if sim.Data.FluxMdl != "darcy" {
		tst.Errorf("fluxmdl is incorrect: %q\n", sim.Data.FluxMdl)
		return
	}
	if !sim.GravW {
		tst.Errorf("gravity correction should be enabled\n")
		return
	}
	chk.Scalar(tst, "g(0)", 1e-15, sim.Gfcn.F(0, nil), 10)

	// grid
	chk.IntAssert(sim.Grid.Ndim, 1)
	chk.IntAssert(sim.Grid.Ncell[0], 2)
	chk.Scalar(tst, "size", 1e-15, sim.Grid.Size[0], 2.0)

	// materials
	liq := sim.LiqMdl()
	gas := sim.GasMdl()
	por := sim.PorMdl()
	if liq == nil || gas == nil || por == nil {
		tst.Errorf("cannot find materials\n")
		return
	}
	if liq.Fluid == nil || liq.Fluid.Gas {
		tst.Errorf("liquid fluid model is incorrect\n")
		return
	}
	if gas.Fluid == nil || !gas.Fluid.Gas {
		tst.Errorf("gas fluid model is incorrect\n")
		return
	}
	chk.Scalar(tst, "muL", 1e-15, liq.Fluid.Mu, 1e-6)
	chk.Scalar(tst, "muG", 1e-15, gas.Fluid.Mu, 1.8e-8)

	// porous model must be wired by its group
	if por.Porous == nil {
		tst.Errorf("porous model is not allocated\n")
		return
	}
	if por.Porous.Cnd == nil || por.Porous.Lrm == nil {
		tst.Errorf("porous model is not wired to conductivity and retention models\n")
		return
	}
	chk.Scalar(tst, "kxx", 1e-25, por.Porous.Kint[0][0], 1e-10)
	chk.Scalar(tst, "nf0", 1e-15, por.Porous.Nf0, 0.3)

	// group wiring
	grp := sim.Mdb.Get("grp1")
	if grp == nil || grp.Liq == nil || grp.Gas == nil {
		tst.Errorf("group wiring is incorrect\n")
		return
	}
	if grp.Liq != liq.Fluid || grp.Gas != gas.Fluid {
		tst.Errorf("group does not point to the simulation fluids\n")
		return
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. missing function")

	var fcns FuncsData
	fcn, err := fcns.Get("zero")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "zero(123)", 1e-17, fcn.F(123, nil), 0)

	_, err = fcns.Get("inexistent")
	if err == nil {
		tst.Errorf("error should have occurred\n")
		return
	}
	io.Pf("OK, error caught: %v\n", err)
}
