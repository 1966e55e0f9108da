// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"sync"

	"github.com/JoakimRA/opmewoms/flx"
	"github.com/JoakimRA/opmewoms/mdl/fluid"
	"github.com/JoakimRA/opmewoms/mdl/porous"
	"github.com/JoakimRA/opmewoms/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Domain holds the grid, the material models, and the primary unknowns of one
// simulation, and runs the per-face flux evaluation. It implements the collaborator
// interfaces consumed by flux models (flx.Problem, flx.IntQuantities, flx.MatLaw).
//
// Primary unknowns and states are stored at two time levels (flx.Current and
// flx.Previous). The WrtInitial flag swaps the levels seen by the flux evaluation,
// so fluxes of the last accepted solution can be requested through the same
// accessors.
type Domain struct {

	// input
	Grd        *msh.Grid       // the grid
	Mdl        *porous.Model   // porous medium: permeability, porosity, auxiliary models
	Fsys       *fluid.System   // fluid densities and viscosities
	Fmodel     flx.Model       // flux model; e.g. "darcy"
	Gfcn       dbf.T           // gravity magnitude as a function of time
	GravOn     bool            // enable the gravity correction
	WrtInitial bool            // evaluate with the previous-level unknowns
	Nproc      int             // number of concurrent face evaluations; ≤ 1 ⇒ sequential

	// context shared (read-only) by all face evaluations
	Ctx *flx.Ctx

	// primary unknowns and states at two time levels
	T   [2]float64         // times
	Pl  [2][]float64       // [ncell] liquid pressures
	Pg  [2][]float64       // [ncell] gas pressures
	Sta [2][]*porous.State // [ncell] porous-medium states

	// prescribed boundary states indexed by position in Grd.Bry; absent entries
	// mean no-flow
	BrySta map[int]*fluid.State

	// derived
	gravv [2][]float64 // gravity vectors at the two time levels
}

// NewDomain creates a domain over grid grd
func NewDomain(grd *msh.Grid, mdl *porous.Model, fsys *fluid.System, fmodel string, gfcn dbf.T, consid []bool, gravOn, wrtInitial bool) (o *Domain, err error) {
	o = new(Domain)
	o.Grd = grd
	o.Mdl = mdl
	o.Fsys = fsys
	o.Gfcn = gfcn
	o.GravOn = gravOn
	o.WrtInitial = wrtInitial
	o.Nproc = 1
	o.Fmodel, err = flx.New(fmodel)
	if err != nil {
		return nil, err
	}
	if len(consid) != fluid.Nph {
		return nil, chk.Err("fvm: consid must have %d entries", fluid.Nph)
	}
	for k := 0; k < 2; k++ {
		o.Pl[k] = make([]float64, grd.Ncell)
		o.Pg[k] = make([]float64, grd.Ncell)
		o.Sta[k] = make([]*porous.State, grd.Ncell)
		o.gravv[k] = make([]float64, grd.Ndim)
	}
	o.BrySta = make(map[int]*fluid.State)
	o.Ctx = &flx.Ctx{
		Ndim:   grd.Ndim,
		Consid: consid,
		Gcalc:  TwoPoint{Grd: grd},
		Prob:   o,
		Iq:     o,
		Mat:    o,
		Fsys:   fsys,
	}
	return
}

// SetIni sets the initial unknowns at both time levels and creates the states
func (o *Domain) SetIni(t float64, pl, pg []float64) (err error) {
	for k := 0; k < 2; k++ {
		o.T[k] = t
		copy(o.Pl[k], pl)
		copy(o.Pg[k], pg)
		o.calcGravity(k)
		for cv := 0; cv < o.Grd.Ncell; cv++ {
			ρL := o.Fsys.Liq.Density(pl[cv])
			ρG := o.Fsys.Gas.Density(pg[cv])
			o.Sta[k][cv], err = o.Mdl.NewState(ρL, ρG, pl[cv], pg[cv])
			if err != nil {
				return
			}
		}
	}
	return
}

// Update accepts the current level as previous and sets new unknowns at time t,
// updating saturations and densities cell by cell
func (o *Domain) Update(t float64, pl, pg []float64) (err error) {
	o.T[flx.Previous] = o.T[flx.Current]
	o.Pl[flx.Previous], o.Pl[flx.Current] = o.Pl[flx.Current], o.Pl[flx.Previous]
	o.Pg[flx.Previous], o.Pg[flx.Current] = o.Pg[flx.Current], o.Pg[flx.Previous]
	o.Sta[flx.Previous], o.Sta[flx.Current] = o.Sta[flx.Current], o.Sta[flx.Previous]
	o.T[flx.Current] = t
	o.calcGravity(flx.Previous)
	for cv := 0; cv < o.Grd.Ncell; cv++ {
		Δpl := pl[cv] - o.Pl[flx.Previous][cv]
		Δpg := pg[cv] - o.Pg[flx.Previous][cv]
		o.Pl[flx.Current][cv] = pl[cv]
		o.Pg[flx.Current][cv] = pg[cv]
		sta := o.Sta[flx.Previous][cv].GetCopy()
		err = o.Mdl.Update(sta, Δpl, Δpg, pl[cv], pg[cv])
		if err != nil {
			return
		}
		o.Sta[flx.Current][cv] = sta
	}
	o.calcGravity(flx.Current)
	return
}

// SetBoundary prescribes the exterior fluid state of boundary face ibry (an index
// into Grd.Bry)
func (o *Domain) SetBoundary(ibry int, bnd *fluid.State) {
	o.BrySta[ibry] = bnd
}

// CalcFluxes evaluates gradients and then fluxes on every interior and boundary
// face at time level tidx. The result has one record per interior face followed by
// one per boundary face; boundary faces without a prescribed state are no-flow and
// yield nil records. Each record is owned by its face, so evaluations run
// concurrently when Nproc > 1
func (o *Domain) CalcFluxes(tidx int) (res []*flx.ExQuantities, err error) {
	nint := len(o.Grd.Faces)
	ntot := nint + len(o.Grd.Bry)
	res = make([]*flx.ExQuantities, ntot)

	// one face: gradients then fluxes
	one := func(i int) error {
		q := flx.NewExQuantities(o.Grd.Ndim)
		if i < nint {
			f := o.Grd.Faces[i]
			if e := o.Fmodel.CalcGradients(q, o.Ctx, f, tidx); e != nil {
				return e
			}
			o.Fmodel.CalcFluxes(q, o.Ctx, f)
		} else {
			bnd, ok := o.BrySta[i-nint]
			if !ok {
				return nil // no-flow boundary
			}
			f := o.Grd.Bry[i-nint]
			if e := o.Fmodel.CalcBoundaryGradients(q, o.Ctx, f, tidx, bnd); e != nil {
				return e
			}
			o.Fmodel.CalcBoundaryFluxes(q, o.Ctx, f)
		}
		res[i] = q
		return nil
	}

	// sequential
	if o.Nproc <= 1 {
		for i := 0; i < ntot; i++ {
			if err = one(i); err != nil {
				return nil, err
			}
		}
		return
	}

	// concurrent: chunk the faces over Nproc goroutines
	errs := make([]error, o.Nproc)
	var wg sync.WaitGroup
	csize := (ntot + o.Nproc - 1) / o.Nproc
	for w := 0; w < o.Nproc; w++ {
		lo := w * csize
		hi := lo + csize
		if hi > ntot {
			hi = ntot
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if e := one(i); e != nil {
					errs[w] = e
					return
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return
}

// tindex maps a requested time level to the stored one, honouring WrtInitial
func (o Domain) tindex(tidx int) int {
	if o.WrtInitial {
		return 1 - tidx
	}
	return tidx
}

// calcGravity recomputes the gravity vector of time level k. Gravity acts along
// the last coordinate direction
func (o *Domain) calcGravity(k int) {
	for i := range o.gravv[k] {
		o.gravv[k][i] = 0
	}
	if o.Gfcn != nil {
		o.gravv[k][o.Grd.Ndim-1] = -o.Gfcn.F(o.T[k], nil)
	}
}

// GravityOn tells whether the gravity correction is enabled
func (o *Domain) GravityOn() bool {
	return o.GravOn
}

// Gravity returns the gravitational acceleration at a control volume
func (o *Domain) Gravity(cv, tidx int) []float64 {
	return o.gravv[o.tindex(tidx)]
}

// FacePerm copies the intrinsic permeability tensor of the (single) porous
// medium into K. With one material per domain both sides of a face share the
// same tensor, so no averaging is needed.
func (o *Domain) FacePerm(K [][]float64, f *msh.Face) {
	kin := o.Mdl.Kint
	for i := 0; i < o.Grd.Ndim; i++ {
		for j := 0; j < o.Grd.Ndim; j++ {
			K[i][j] = kin[i][j]
		}
	}
}

// Pressure returns the pressure of a phase at a control volume
func (o *Domain) Pressure(cv, iph, tidx int) float64 {
	k := o.tindex(tidx)
	if iph == fluid.LiqPh {
		return o.Pl[k][cv]
	}
	return o.Pg[k][cv]
}

// Density returns the intrinsic density of a phase at a control volume
func (o *Domain) Density(cv, iph, tidx int) float64 {
	s := o.Sta[o.tindex(tidx)][cv]
	if iph == fluid.LiqPh {
		return s.A_ρL
	}
	return s.A_ρG
}

// Mobility returns the mobility kr/μ of a phase at a control volume
func (o *Domain) Mobility(cv, iph, tidx int) float64 {
	s := o.Sta[o.tindex(tidx)][cv]
	if iph == fluid.LiqPh {
		return o.Mdl.Cnd.Klr(s.A_sl) / o.Fsys.Viscosity(fluid.LiqPh)
	}
	return o.Mdl.Cnd.Kgr(s.Sg()) / o.Fsys.Viscosity(fluid.GasPh)
}

// Perm returns the intrinsic permeability tensor of a control volume
func (o *Domain) Perm(cv int) [][]float64 {
	return o.Mdl.Kint
}

// Pos returns the centre of a control volume
func (o *Domain) Pos(cv int) []float64 {
	return o.Grd.C[cv]
}

// RelPerms computes the relative permeabilities of a prescribed fluid state
func (o *Domain) RelPerms(kr []float64, bnd *fluid.State) {
	kr[fluid.LiqPh] = o.Mdl.Cnd.Klr(bnd.Sat(fluid.LiqPh))
	kr[fluid.GasPh] = o.Mdl.Cnd.Kgr(bnd.Sg)
}
