// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01. hydrostatic column")

	H := 10.0
	g := 10.0

	var water Model
	water.Init(water.GetPrms(true), H, g)

	var dryair Model
	dryair.Gas = true
	dryair.Init(dryair.GetPrms(true), H, g)

	// at the top of the column: reference values
	p, R := water.Calc(H)
	chk.Scalar(tst, "p(H)", 1e-15, p, water.P0)
	chk.Scalar(tst, "R(H)", 1e-15, R, water.R0)

	// at the bottom: close to the incompressible limit ρ·g·H
	p, R = water.Calc(0)
	chk.Scalar(tst, "p(0)", 1e-3, p, water.R0*g*H)
	chk.Scalar(tst, "R(0)", 1e-15, R, water.Density(p))

	// viscosities must be positive
	if water.Mu <= 0 || dryair.Mu <= 0 {
		tst.Errorf("viscosities must be positive: Mul=%g Mug=%g\n", water.Mu, dryair.Mu)
	}
}

func Test_fld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld02. system and prescribed state")

	H := 10.0
	g := 10.0

	liq := new(Model)
	liq.Init(liq.GetPrms(true), H, g)
	gas := new(Model)
	gas.Gas = true
	gas.Init(gas.GetPrms(true), H, g)

	var sys System
	err := sys.Init(liq, gas)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "μl", 1e-15, sys.Viscosity(LiqPh), liq.Mu)
	chk.Scalar(tst, "μg", 1e-15, sys.Viscosity(GasPh), gas.Mu)

	var sta State
	sta.Init(0.3, 10.0, 12.0, 298.0, &sys)
	chk.Scalar(tst, "sl", 1e-15, sta.Sat(LiqPh), 0.7)
	chk.Scalar(tst, "sg", 1e-15, sta.Sat(GasPh), 0.3)
	chk.Scalar(tst, "pc", 1e-15, sta.Pc(), 2.0)
	chk.Scalar(tst, "ρl", 1e-15, sta.R[LiqPh], liq.Density(10.0))
	chk.Scalar(tst, "ρg", 1e-15, sta.R[GasPh], gas.Density(12.0))

	if PhaseName(LiqPh) != "liquid" || PhaseName(GasPh) != "gas" {
		tst.Errorf("phase names are incorrect\n")
	}
}
