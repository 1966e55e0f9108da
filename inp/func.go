// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, grav, myfunction1, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		fcn = &dbf.Zero
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = dbf.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\n      \"name\":%q, \"type\":%q, \"prms\" : [\n%v\n      ]\n    }", o.Name, o.Type, o.Prms)
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
