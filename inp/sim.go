// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/opmewoms

	// problem definition and options
	Gravity string `json:"gravity"` // name of gravity function; "zero" disables the correction
	LiqMat  string `json:"liq"`     // name of liquid material
	GasMat  string `json:"gas"`     // name of gas material
	PorMat  string `json:"por"`     // name of porous material
	NoGas   bool   `json:"nogas"`   // gas phase is not considered
	FluxMdl string `json:"fluxmdl"` // name of flux model; e.g. "darcy"
	WrtIni  bool   `json:"wrtini"`  // evaluate fluxes with the previous-level unknowns
}

// SetDefaults sets default values
func (o *Data) SetDefaults() {
	if o.FluxMdl == "" {
		o.FluxMdl = "darcy"
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/opmewoms"
	}
	if o.Gravity == "" {
		o.Gravity = "zero"
	}
}

// GridData holds the structured-grid definition
type GridData struct {
	Ndim  int       `json:"ndim"`  // space dimension
	Ncell []int     `json:"ncell"` // number of cells along each direction
	Size  []float64 `json:"size"`  // domain size along each direction
	Xmin  []float64 `json:"xmin"`  // lower-left corner; may be empty
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data      `json:"data"`      // global simulation data
	Grid      GridData  `json:"grid"`      // grid definition
	Functions FuncsData `json:"functions"` // all functions

	// derived
	DirIn string // directory where the .sim file is located
	Key   string // simulation key; e.g. "twocell" from "twocell.sim"
	Gfcn  dbf.T  // gravity function
	GravW bool   // gravity correction is enabled
	Mdb   *MatDb // materials database
}

// ReadSim reads a simulation file and initialises the materials database
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, err
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}
	o.Data.SetDefaults()
	o.DirIn = filepath.Dir(simfilepath)
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// check grid
	if o.Grid.Ndim < 1 || o.Grid.Ndim > 3 {
		return nil, chk.Err("simulation %q: grid ndim = %d is invalid", o.Key, o.Grid.Ndim)
	}
	if len(o.Grid.Ncell) != o.Grid.Ndim || len(o.Grid.Size) != o.Grid.Ndim {
		return nil, chk.Err("simulation %q: grid ncell and size must have %d entries each", o.Key, o.Grid.Ndim)
	}

	// gravity function
	o.Gfcn, err = o.Functions.Get(o.Data.Gravity)
	if err != nil {
		return nil, err
	}
	o.GravW = o.Data.Gravity != "zero" && o.Data.Gravity != "none"

	// materials database. the reference column height is the vertical extent of
	// the domain and the reference gravity is the initial value of the function
	if o.Data.Matfile == "" {
		return nil, chk.Err("simulation %q: matfile is missing", o.Key)
	}
	H := o.Grid.Size[o.Grid.Ndim-1]
	grav := o.Gfcn.F(0, nil)
	if grav < 1e-3 {
		grav = 10.0 // fluids keep a positive reference constant even without gravity
	}
	o.Mdb, err = ReadMat(o.DirIn, o.Data.Matfile, H, grav)
	if err != nil {
		return nil, err
	}

	// check materials needed by this simulation
	for _, name := range []string{o.Data.LiqMat, o.Data.GasMat, o.Data.PorMat} {
		if name == "" {
			return nil, chk.Err("simulation %q: liq, gas and por material names must be given", o.Key)
		}
		if o.Mdb.Get(name) == nil {
			return nil, chk.Err("simulation %q: material %q is not in the database", o.Key, name)
		}
	}
	return
}

// LiqMdl returns the liquid model of this simulation
func (o Simulation) LiqMdl() *Material {
	return o.Mdb.Get(o.Data.LiqMat)
}

// GasMdl returns the gas model of this simulation
func (o Simulation) GasMdl() *Material {
	return o.Mdb.Get(o.Data.GasMat)
}

// PorMdl returns the porous model of this simulation
func (o Simulation) PorMdl() *Material {
	return o.Mdb.Get(o.Data.PorMat)
}
