// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/JoakimRA/opmewoms/mdl/conduct"
	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/JoakimRA/opmewoms/mdl/porous"
	"github.com/JoakimRA/opmewoms/mdl/retention"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "fluid", "conduct", "reten", "porous"
	Model string     `json:"model"` // name of model; e.g. "m1", "vg", "lin", etc.
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Fluid   *fluid.Model    // pointer to actual fluid model
	Conduct conduct.Model   // pointer to actual conductivity model
	Reten   retention.Model // pointer to actual retention model
	Porous  *porous.Model   // pointer to actual porous model

	// derived: group wiring
	Liq *fluid.Model // liquid model of a group
	Gas *fluid.Model // gas model of a group
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials

	// derived
	Fluids   map[string]*Material // subset with materials/models: fluids
	Conducts map[string]*Material // subset with materials/models: conductivities
	Retens   map[string]*Material // subset with materials/models: retention models
	Porous   map[string]*Material // subset with materials/models: porous materials
	Groups   map[string]*Material // subset with materials/models: groups
}

// ReadMat reads all materials data from a .mat JSON file
//  H and grav are the reference column height and gravity constant of the fluids
func ReadMat(dir, fn string, H, grav float64) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// subsets
	mdb.Fluids = make(map[string]*Material)
	mdb.Conducts = make(map[string]*Material)
	mdb.Retens = make(map[string]*Material)
	mdb.Porous = make(map[string]*Material)
	mdb.Groups = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "fluid":
			mdb.Fluids[m.Name] = m
			continue
		case "conduct":
			mdb.Conducts[m.Name] = m
			continue
		case "reten":
			mdb.Retens[m.Name] = m
			continue
		case "porous":
			mdb.Porous[m.Name] = m
			continue
		case "group":
			mdb.Groups[m.Name] = m
			continue
		default:
			err = chk.Err("material type %q is incorrect; options are \"fluid\", \"conduct\", \"reten\", \"porous\" and \"group\"", m.Type)
			return
		}
	}

	// alloc/init: fluids
	for _, m := range mdb.Fluids {
		m.Fluid = new(fluid.Model)
		m.Fluid.Init(m.Prms, H, grav)
	}

	// alloc/init: conducts
	for _, m := range mdb.Conducts {
		m.Conduct, err = conduct.New(m.Model)
		if err != nil {
			return
		}
		err = m.Conduct.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// alloc/init: retens
	for _, m := range mdb.Retens {
		m.Reten, err = retention.New(m.Model)
		if err != nil {
			return
		}
		err = m.Reten.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// alloc: porous
	for _, m := range mdb.Porous {
		m.Porous = new(porous.Model)
	}

	// handle groups
	porous2group := make(map[string]*Material)
	for _, m := range mdb.Groups {
		matnames := strings.Fields(m.Extra)
		for _, name := range matnames {
			if mm, ok := mdb.Fluids[name]; ok {
				if mm.Fluid.Gas {
					m.Gas = mm.Fluid
				} else {
					m.Liq = mm.Fluid
				}
			}
			if mm, ok := mdb.Conducts[name]; ok {
				m.Conduct = mm.Conduct
			}
			if mm, ok := mdb.Retens[name]; ok {
				m.Reten = mm.Reten
			}
			if mm, ok := mdb.Porous[name]; ok {
				m.Porous = mm.Porous
				porous2group[name] = m
			}
		}
	}

	// init: porous
	for _, m := range mdb.Porous {
		g := porous2group[m.Name]
		if g == nil {
			err = chk.Err("cannot initialise porous model (%q) because it does not belong to any group", m.Name)
			return
		}
		if g.Conduct == nil {
			err = chk.Err("porous material (%q) in group (%q) must have conductivity model", m.Name, g.Name)
			return
		}
		if g.Reten == nil {
			err = chk.Err("porous material (%q) in group (%q) must have liquid retention model", m.Name, g.Name)
			return
		}
		if g.Liq == nil || g.Gas == nil {
			err = chk.Err("porous material (%q) in group (%q) must have liquid and gas fluid models", m.Name, g.Name)
			return
		}
		err = m.Porous.Init(m.Prms, g.Conduct, g.Reten, g.Liq, g.Gas)
		if err != nil {
			return
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%v\n    }", o.Name, o.Type, o.Model, o.Extra, o.Prms)
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v\n}", o.Functions, o.Materials)
}
