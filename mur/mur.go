// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mur implements the first-order Mur absorbing boundary
// condition: a one-sided free-space wave-equation correction applied to
// the tangential E-field components one cell inside each Mur-tagged
// face, after edges shared with an adjacent Mur face have been excluded
// to avoid a double correction.
package mur

import (
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
)

// Mur owns the per-face zeta coefficient and field-limit boxes derived
// once at setup.
type Mur struct {
	Boundary [6]bool
	Zeta     [6]float64
	Elim     [6]grid.FieldLimits
}

// NewMur derives, for every face marked Mur, the phase-velocity factor
// zeta (free-space assumed, per spec.md §4.6) and the tangential-field
// limit box with edges shared by two Mur faces excluded on both sides
// (matching deselectAdjacentEdgesByType in the original source: an edge
// belongs to whichever of its two adjoining faces claims it first is
// never revisited by the other, so it is simplest to just exclude it
// from both and let the ordinary ghost/ABC handling on the unclaimed
// cell fall through to ghost fill instead).
func NewMur(mesh *grid.Mesh, boundary [6]bool, dt float64) *Mur {
	m := &Mur{Boundary: boundary}
	for face := grid.XLO; face <= grid.ZHI; face++ {
		if !boundary[face] {
			continue
		}
		axis := face.Axis()
		var edge float64
		if face.IsLo() {
			edge = mesh.De[axis][mesh.GIBox[2*int(axis)]]
		} else {
			edge = mesh.De[axis][mesh.GIBox[2*int(axis)+1]-1]
		}
		m.Zeta[face] = (medium.C0*dt - edge) / (medium.C0*dt + edge)

		include := excludeMurMurEdges(boundary, face)
		box := mesh.GIBox
		m.Elim[face] = grid.SetFieldLimits(box, include)
	}
	return m
}

// excludeMurMurEdges returns the includeBoundary flags for face's own
// field-limit derivation, turning off every OTHER face that is also Mur
// (an edge shared by two Mur faces is corrected by neither of them).
func excludeMurMurEdges(boundary [6]bool, face grid.Face) (include [6]bool) {
	for f := grid.XLO; f <= grid.ZHI; f++ {
		include[f] = true
	}
	for f := grid.XLO; f <= grid.ZHI; f++ {
		if f.Axis() == face.Axis() {
			continue
		}
		if boundary[f] {
			include[f] = false
		}
	}
	return
}

// UpdateE applies the Mur correction to every tangential E component on
// every Mur face, using the ordinary grid update evaluated one cell
// into the interior as the free-space prediction. Must run after
// ghost fill and before the interior UpdateE call for the same E
// components (the original applies Mur before the ordinary E update;
// here it instead directly overwrites the boundary plane since the
// prediction is self-contained and does not depend on the boundary's
// own old curl term).
func (m *Mur) UpdateE(g *grid.Grid) {
	for face := grid.XLO; face <= grid.ZHI; face++ {
		if !m.Boundary[face] {
			continue
		}
		axis := face.Axis()
		for c := grid.EX; c <= grid.EZ; c++ {
			if c.Axis() == axis {
				continue // normal component: Mur applies to tangential fields only
			}
			m.updateComponent(g, c, face)
		}
	}
}

func (m *Mur) updateComponent(g *grid.Grid, c grid.Component, face grid.Face) {
	flim := m.Elim[face]
	ilo, jlo, klo := flim.Lo(c)
	ihi, jhi, khi := flim.Hi(c)
	axis := int(face.Axis())

	boundaryIdx := g.Mesh.GIBox[2*axis]
	interiorIdx := boundaryIdx + 1
	if !face.IsLo() {
		boundaryIdx = g.Mesh.GIBox[2*axis+1] - 1
		interiorIdx = boundaryIdx - 1
	}

	f := g.E[c]
	zeta := m.Zeta[face]

	planeCoords := func(fixed, a, b int) (i, j, k int) {
		switch axis {
		case 0:
			return fixed, a, b
		case 1:
			return a, fixed, b
		default:
			return a, b, fixed
		}
	}

	loopLo1, loopHi1, loopLo2, loopHi2 := planeRange(axis, ilo, ihi, jlo, jhi, klo, khi)
	for a := loopLo1; a <= loopHi1; a++ {
		for b := loopLo2; b <= loopHi2; b++ {
			bi, bj, bk := planeCoords(boundaryIdx, a, b)
			ii, ij, ik := planeCoords(interiorIdx, a, b)
			alpha := g.Coeffs.AlphaE(c, ii, ij, ik)
			beta := g.Coeffs.BetaE(c, ii, ij, ik)
			predicted := alpha*f.At(ii, ij, ik) + beta*g.CurlH(c, ii, ij, ik)
			old := f.At(bi, bj, bk)
			f.Set(bi, bj, bk, f.At(ii, ij, ik)+zeta*(predicted-old))
		}
	}
}

// planeRange returns the two free-axis loop ranges for the plane normal
// to axis.
func planeRange(axis, ilo, ihi, jlo, jhi, klo, khi int) (lo1, hi1, lo2, hi2 int) {
	switch axis {
	case 0:
		return jlo, jhi, klo, khi
	case 1:
		return ilo, ihi, klo, khi
	default:
		return ilo, ihi, jlo, jhi
	}
}
