// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package debye implements dispersive Debye media via auxiliary
// recursive-convolution polarisation currents painted onto a
// sub-region of the grid.
package debye

import (
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gosl/chk"
)

// Block is one Debye-medium region: the medium (with its per-pole
// dAlpha/dBeta recursive-convolution coefficients already computed),
// the field-limit box it occupies per electric component, and the
// per-pole auxiliary currents plus the previous-step field cache needed
// by the "Elast" term of the update.
type Block struct {
	Medium *medium.Medium
	Flim   [3]grid.FieldLimits // indexed by EX..EZ

	J    [3]*grid.Field4C // per-component, per-pole auxiliary current
	Last [3]*grid.Field3  // E value at the previous step, per component
}

// NewBlock allocates a block's auxiliary storage sized to its
// field-limit boxes.
func NewBlock(m *medium.Medium, flim [3]grid.FieldLimits) (*Block, error) {
	if m.Kind != medium.Debye {
		return nil, chk.Err("debye.NewBlock: medium %q is not a Debye medium", m.Name)
	}
	np := len(m.Poles)
	b := &Block{Medium: m, Flim: flim}
	for c := 0; c < 3; c++ {
		ilo, jlo, klo := flim[c].Lo(grid.Component(c))
		ihi, jhi, khi := flim[c].Hi(grid.Component(c))
		nx, ny, nz := ihi-ilo+1, jhi-jlo+1, khi-klo+1
		b.J[c] = grid.NewField4C(nx, ny, nz, np)
		b.Last[c] = grid.NewField3(nx, ny, nz)
	}
	return b, nil
}

// UpdateE advances every block's auxiliary currents and subtracts the
// resulting polarisation current from the grid's electric field, per
// debye.c's updateDebyeBlocksEfield: the new current sum uses the
// *old* per-pole currents (dAlpha-weighted plus the current pole
// itself, i.e. a one-step-ahead predictor), the field is corrected
// first, then the per-pole currents are advanced from the *new* field
// value relative to the cached previous one.
func UpdateE(g *grid.Grid, scaling grid.Scaling, blocks []*Block) {
	for _, b := range blocks {
		for c := grid.EX; c <= grid.EZ; c++ {
			updateComponent(g, scaling, b, c)
		}
	}
}

func updateComponent(g *grid.Grid, scaling grid.Scaling, b *Block, c grid.Component) {
	flim := b.Flim[c]
	ilo, jlo, klo := flim.Lo(c)
	ihi, jhi, khi := flim.Hi(c)
	f := g.E[c]
	J := b.J[c]
	last := b.Last[c]
	np := len(b.Medium.Poles)

	for i := ilo; i <= ihi; i++ {
		for j := jlo; j <= jhi; j++ {
			for k := klo; k <= khi; k++ {
				ii, jj, kk := i-ilo, j-jlo, k-klo

				var jsum complex128
				for p := 0; p < np; p++ {
					jsum += (1 + b.Medium.DAlpha[p]) * J.At(ii, jj, kk, p)
				}

				beta := g.Coeffs.BetaE(c, i, j, k)
				scale := grid.ScaleFactorE(g.Mesh, scaling, c, i, j, k)
				cur := f.At(i, j, k)
				newVal := cur - beta*scale*real(jsum)
				f.Set(i, j, k, newVal)

				dField := complex(unscale(newVal-last.At(ii, jj, kk), scale), 0)
				for p := 0; p < np; p++ {
					old := J.At(ii, jj, kk, p)
					J.Set(ii, jj, kk, p, b.Medium.DAlpha[p]*old+b.Medium.DBeta[p]*dField)
				}
				last.Set(ii, jj, kk, newVal)
			}
		}
	}
}

func unscale(v, scale float64) float64 {
	if scale == 0 {
		return v
	}
	return v / scale
}

// StabilityOK reports whether every pole of m satisfies the recursive-
// convolution stability bound |dAlpha| <= 1, required for the auxiliary
// current update to not diverge (spec.md §4.5).
func StabilityOK(m *medium.Medium) bool {
	for _, a := range m.DAlpha {
		if realabs(a) > 1.0+1e-12 {
			return false
		}
	}
	return true
}

func realabs(z complex128) float64 {
	r, i := real(z), imag(z)
	return r*r + i*i // compared against 1 squared; avoids a sqrt in the hot stability check
}
