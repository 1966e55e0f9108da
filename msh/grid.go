// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements a structured grid of cuboid control volumes for
// finite-volume discretisations
package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Face holds the geometric data of one face: either the boundary shared by two
// control volumes, or the boundary between a control volume and the domain exterior
type Face struct {
	In int       // index of interior control volume
	Ex int       // index of exterior control volume; -1 ⇒ outside the domain
	N  []float64 // [ndim] unit normal, pointing from interior to exterior
	X  []float64 // [ndim] integration point (face centre)
	A  float64   // area (length in 2D, 1 in 1D)
}

// Grid implements a structured grid over a box-shaped domain
type Grid struct {

	// input
	Ndim int       // space dimension: 1, 2 or 3
	Nc   []int     // [ndim] number of cells along each direction
	L    []float64 // [ndim] domain size along each direction
	Xmin []float64 // [ndim] lower-left corner; nil ⇒ origin

	// derived
	Ncell int         // total number of cells
	C     [][]float64 // [ncell][ndim] cell centres
	Vol   []float64   // [ncell] cell volumes
	Faces []*Face     // interior faces
	Bry   []*Face     // boundary faces
}

// Init initialises this structure and builds cells and faces
func (o *Grid) Init(ndim int, nc []int, l []float64, xmin []float64) (err error) {

	// check input
	if ndim < 1 || ndim > 3 {
		return chk.Err("grid: ndim = %d is invalid; it must be 1, 2 or 3", ndim)
	}
	if len(nc) != ndim || len(l) != ndim {
		return chk.Err("grid: nc and l must have %d entries each", ndim)
	}
	for i := 0; i < ndim; i++ {
		if nc[i] < 1 {
			return chk.Err("grid: number of cells along direction %d must be at least 1", i)
		}
		if l[i] < 1e-14 {
			return chk.Err("grid: domain size along direction %d must be positive", i)
		}
	}
	o.Ndim = ndim
	o.Nc = nc
	o.L = l
	o.Xmin = xmin
	if o.Xmin == nil {
		o.Xmin = make([]float64, ndim)
	}

	// pad cell counts and spacings up to 3D so one loop nest covers all dimensions
	n := []int{1, 1, 1}
	δ := []float64{1, 1, 1}
	x0 := []float64{0, 0, 0}
	for i := 0; i < ndim; i++ {
		n[i] = nc[i]
		δ[i] = l[i] / float64(nc[i])
		x0[i] = o.Xmin[i]
	}

	// node coordinates along each direction
	xcoords := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		xcoords[i] = utl.LinSpace(x0[i], x0[i]+δ[i]*float64(n[i]), n[i]+1)
	}

	// cell centres and volumes
	o.Ncell = n[0] * n[1] * n[2]
	o.C = make([][]float64, o.Ncell)
	o.Vol = make([]float64, o.Ncell)
	vol := 1.0
	for i := 0; i < ndim; i++ {
		vol *= δ[i]
	}
	for k := 0; k < n[2]; k++ {
		for j := 0; j < n[1]; j++ {
			for i := 0; i < n[0]; i++ {
				c := o.index(i, j, k, n)
				full := []float64{
					(xcoords[0][i] + xcoords[0][i+1]) / 2.0,
					(xcoords[1][j] + xcoords[1][j+1]) / 2.0,
					(xcoords[2][k] + xcoords[2][k+1]) / 2.0,
				}
				o.C[c] = full[:ndim]
				o.Vol[c] = vol
			}
		}
	}

	// faces: for each direction, the planes between consecutive cells plus the
	// two boundary planes. interior faces take the lower-index cell as interior
	// side; boundary faces point outward
	for dir := 0; dir < ndim; dir++ {

		// area of a face orthogonal to dir
		area := 1.0
		for i := 0; i < ndim; i++ {
			if i != dir {
				area *= δ[i]
			}
		}

		for k := 0; k < n[2]; k++ {
			for j := 0; j < n[1]; j++ {
				for i := 0; i < n[0]; i++ {
					idx := []int{i, j, k}
					c := o.index(i, j, k, n)

					// interior face towards the next cell along dir
					if idx[dir] < n[dir]-1 {
						jdx := []int{i, j, k}
						jdx[dir]++
						ex := o.index(jdx[0], jdx[1], jdx[2], n)
						o.Faces = append(o.Faces, o.newFace(c, ex, dir, +1, δ, area))
					}

					// boundary faces at the two ends of dir
					if idx[dir] == 0 {
						o.Bry = append(o.Bry, o.newFace(c, -1, dir, -1, δ, area))
					}
					if idx[dir] == n[dir]-1 {
						o.Bry = append(o.Bry, o.newFace(c, -1, dir, +1, δ, area))
					}
				}
			}
		}
	}
	return
}

// index returns the cell index corresponding to integer coordinates (i,j,k)
func (o Grid) index(i, j, k int, n []int) int {
	return i + j*n[0] + k*n[0]*n[1]
}

// newFace builds one face orthogonal to direction dir. sign is +1 for a face on the
// upper side of the interior cell and -1 for the lower side
func (o Grid) newFace(in, ex, dir, sign int, δ []float64, area float64) *Face {
	normal := make([]float64, o.Ndim)
	normal[dir] = float64(sign)
	x := make([]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		x[i] = o.C[in][i]
	}
	x[dir] += float64(sign) * δ[dir] / 2.0
	return &Face{In: in, Ex: ex, N: normal, X: x, A: area}
}
