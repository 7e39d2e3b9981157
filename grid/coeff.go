// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gofdtd/medium"

// Scaling selects the field-storage convention, fixed for the lifetime
// of a Grid (spec.md §3's scaled/unscaled invariant).
type Scaling int

const (
	// Scaled stores physical value * local edge length; curl differences
	// become plain subtractions and beta/gamma absorb reciprocal edge
	// lengths.
	Scaled Scaling = iota
	// Unscaled stores the physical value directly; curl operators
	// multiply by the reciprocal secondary-edge arrays.
	Unscaled
)

// Coefficients is the strategy interface for per-cell update coefficients.
type Coefficients interface {
	AlphaE(c Component, i, j, k int) float64
	BetaE(c Component, i, j, k int) float64
	GammaH(c Component, i, j, k int) float64
	// MediumAt returns the medium index painted at (c,i,j,k), or -1 if
	// the strategy does not retain per-cell medium identity (Dense).
	MediumAt(c Component, i, j, k int) int
}

// ScaleFactorE exports scaleFactorE for packages (debye, source) that
// need to apply the same SCALE_Jx/SCALE_Ex-style geometric factor to a
// current density or field difference outside the grid package itself.
func ScaleFactorE(m *Mesh, scaling Scaling, c Component, i, j, k int) float64 {
	return scaleFactorE(m, scaling, c, i, j, k)
}

// ScaleFactorH is ScaleFactorE's magnetic-component analogue, used by
// sibc to unscale the tangential H samples it gathers and rescale the
// tangential E it caches back for the subsequent H correction.
func ScaleFactorH(m *Mesh, scaling Scaling, c Component, i, j, k int) float64 {
	return scaleFactorH(m, scaling, c, i, j, k)
}

// scaleFactor returns the (dex/idhy/idhz)-style geometric factor applied
// to beta/gamma at cell (i,j,k) for the SCALE_betaE.../SCALE_gammaH...
// macros of the original source, permuted per component axis.
func scaleFactorE(m *Mesh, scaling Scaling, c Component, i, j, k int) float64 {
	if scaling == Unscaled {
		return 1.0
	}
	switch c {
	case EX:
		return m.De[XDIR][i] * m.IDh[YDIR][j] * m.IDh[ZDIR][k]
	case EY:
		return m.IDh[XDIR][i] * m.De[YDIR][j] * m.IDh[ZDIR][k]
	default: // EZ
		return m.IDh[XDIR][i] * m.IDh[YDIR][j] * m.De[ZDIR][k]
	}
}

func scaleFactorH(m *Mesh, scaling Scaling, c Component, i, j, k int) float64 {
	if scaling == Unscaled {
		return 1.0
	}
	switch c {
	case HX:
		return m.Dh[XDIR][i] * m.IDe[YDIR][j] * m.IDe[ZDIR][k]
	case HY:
		return m.IDe[XDIR][i] * m.Dh[YDIR][j] * m.IDe[ZDIR][k]
	default: // HZ
		return m.IDe[XDIR][i] * m.IDe[YDIR][j] * m.Dh[ZDIR][k]
	}
}

// DenseCoefficients stores alpha/beta per E-component and gamma per
// H-component as independent Field3 arrays, enabling per-cell averaging
// (e.g. the PML medium carry-in, or surface-fraction-weighted painting).
type DenseCoefficients struct {
	Alpha [3]*Field3 // Ex,Ey,Ez
	Beta  [3]*Field3
	Gamma [3]*Field3 // Hx,Hy,Hz
}

func NewDenseCoefficients(nx, ny, nz int) *DenseCoefficients {
	d := &DenseCoefficients{}
	for c := 0; c < 3; c++ {
		d.Alpha[c] = NewField3(nx, ny, nz)
		d.Beta[c] = NewField3(nx, ny, nz)
		d.Gamma[c] = NewField3(nx, ny, nz)
	}
	return d
}

func (d *DenseCoefficients) AlphaE(c Component, i, j, k int) float64 { return d.Alpha[c].At(i, j, k) }
func (d *DenseCoefficients) BetaE(c Component, i, j, k int) float64  { return d.Beta[c].At(i, j, k) }
func (d *DenseCoefficients) GammaH(c Component, i, j, k int) float64 {
	return d.Gamma[c-HX].At(i, j, k)
}
func (d *DenseCoefficients) MediumAt(c Component, i, j, k int) int { return -1 }

// PaintMedium applies medium m's alpha/beta/gamma, scaled per spec's
// SCALE_betaE.../SCALE_gammaH... rule, to every cell of field component
// c's field-limit box.
func PaintMedium(d *DenseCoefficients, mesh *Mesh, scaling Scaling, c Component, flim FieldLimits, m *medium.Medium) {
	ilo, jlo, klo := flim.Lo(c)
	ihi, jhi, khi := flim.Hi(c)
	if c.IsElectric() {
		for i := ilo; i <= ihi; i++ {
			for j := jlo; j <= jhi; j++ {
				for k := klo; k <= khi; k++ {
					d.Alpha[c].Set(i, j, k, m.Alpha)
					d.Beta[c].Set(i, j, k, m.Beta*scaleFactorE(mesh, scaling, c, i, j, k))
				}
			}
		}
		return
	}
	for i := ilo; i <= ihi; i++ {
		for j := jlo; j <= jhi; j++ {
			for k := klo; k <= khi; k++ {
				d.Gamma[c-HX].Set(i, j, k, m.Gamma*scaleFactorH(mesh, scaling, c, i, j, k))
			}
		}
	}
}

// IndexedCoefficients stores one medium-index per field component cell,
// dereferenced through the shared medium table (spec.md §3). This saves
// memory when the number of distinct media is small but forbids
// per-cell averaging: painting always assigns a single index, never a
// blend.
type IndexedCoefficients struct {
	Index [6]*indexField3 // Ex..Hz
	Mesh  *Mesh
	Table *medium.Table
	Scale Scaling
}

type indexField3 struct {
	Nx, Ny, Nz int
	Data       []int
}

func newIndexField3(nx, ny, nz int) *indexField3 {
	data := make([]int, nx*ny*nz)
	return &indexField3{Nx: nx, Ny: ny, Nz: nz, Data: data}
}
func (f *indexField3) idx(i, j, k int) int   { return (i*f.Ny+j)*f.Nz + k }
func (f *indexField3) at(i, j, k int) int    { return f.Data[f.idx(i, j, k)] }
func (f *indexField3) set(i, j, k, v int)    { f.Data[f.idx(i, j, k)] = v }

func NewIndexedCoefficients(mesh *Mesh, table *medium.Table, scale Scaling, nx, ny, nz int) *IndexedCoefficients {
	ic := &IndexedCoefficients{Mesh: mesh, Table: table, Scale: scale}
	for c := 0; c < 6; c++ {
		ic.Index[c] = newIndexField3(nx, ny, nz)
	}
	return ic
}

func (ic *IndexedCoefficients) AlphaE(c Component, i, j, k int) float64 {
	return ic.Table.Get(ic.Index[c].at(i, j, k)).Alpha
}
func (ic *IndexedCoefficients) BetaE(c Component, i, j, k int) float64 {
	m := ic.Table.Get(ic.Index[c].at(i, j, k))
	return m.Beta * scaleFactorE(ic.Mesh, ic.Scale, c, i, j, k)
}
func (ic *IndexedCoefficients) GammaH(c Component, i, j, k int) float64 {
	m := ic.Table.Get(ic.Index[c].at(i, j, k))
	return m.Gamma * scaleFactorH(ic.Mesh, ic.Scale, c, i, j, k)
}
func (ic *IndexedCoefficients) MediumAt(c Component, i, j, k int) int {
	return ic.Index[c].at(i, j, k)
}
func (ic *IndexedCoefficients) Paint(c Component, flim FieldLimits, idx int) {
	ilo, jlo, klo := flim.Lo(c)
	ihi, jhi, khi := flim.Hi(c)
	for i := ilo; i <= ihi; i++ {
		for j := jlo; j <= jhi; j++ {
			for k := klo; k <= khi; k++ {
				ic.Index[c].set(i, j, k, idx)
			}
		}
	}
}
