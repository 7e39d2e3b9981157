// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/chk"

// BoundaryKind names the outer-face treatment applied during ghost fill.
type BoundaryKind int

const (
	BoundaryPEC BoundaryKind = iota
	BoundaryPMC
	BoundaryPeriodic
	BoundaryOther // Mur/CPML/SIBC: no ghost fill, handled by their own packages
)

// Boundary records the per-face treatment used by FillGhostE/FillGhostH.
type Boundary [6]BoundaryKind

// CheckPeriodicPairing returns an error if exactly one face of an
// opposing pair is marked periodic (spec.md §4.7).
func CheckPeriodicPairing(b Boundary) error {
	pairs := [3][2]Face{{XLO, XHI}, {YLO, YHI}, {ZLO, ZHI}}
	for _, p := range pairs {
		lo, hi := b[p[0]] == BoundaryPeriodic, b[p[1]] == BoundaryPeriodic
		if lo != hi {
			return chk.Err("periodic face unpaired: %v and %v must both be periodic or neither", p[0], p[1])
		}
	}
	return nil
}

// FillGhostE fills the one-cell ghost layer outside the outer grid for
// all three E components, per face, per spec.md §4.7: PEC mirrors the
// tangential inner value, PMC mirrors it negated, periodic faces copy
// across from the opposing face's last inner cell. Components normal to
// a face are left untouched (ghost fill only applies to tangential
// components, matching the field-limit tangential/normal split of
// SetFieldLimits).
func (g *Grid) FillGhostE(b Boundary) {
	for c := EX; c <= EZ; c++ {
		g.fillGhostComponent(g.E[c], c, b)
	}
}

// FillGhostH is the magnetic analogue of FillGhostE.
func (g *Grid) FillGhostH(b Boundary) {
	for c := HX; c <= HZ; c++ {
		g.fillGhostComponent(g.H[c-HX], c, b)
	}
}

func (g *Grid) fillGhostComponent(f *Field3, c Component, b Boundary) {
	ob := g.Mesh.GOBox
	gb := g.Mesh.GGBox
	for face := XLO; face <= ZHI; face++ {
		if !fieldIsTangentialToFace(c, face) {
			continue
		}
		switch b[face] {
		case BoundaryPEC:
			g.mirrorFace(f, face, ob, gb, 1.0)
		case BoundaryPMC:
			g.mirrorFace(f, face, ob, gb, -1.0)
		case BoundaryPeriodic:
			g.wrapFace(f, face, ob, gb)
		case BoundaryOther:
			// left to the owning package (mur/pml/sibc)
		}
	}
}

// mirrorFace copies the outer grid's boundary-adjacent plane into the
// one-cell ghost plane outside face, scaled by sign (+1 PEC, -1 PMC).
func (g *Grid) mirrorFace(f *Field3, face Face, ob, gb BBox, sign float64) {
	axis := int(face.Axis())
	ghostIdx := gb[2*axis]
	innerIdx := ob[2*axis]
	if !face.IsLo() {
		ghostIdx = gb[2*axis+1]
		innerIdx = ob[2*axis+1]
	}
	forEachPlane(gb, axis, func(a, bIdx int) {
		i, j, k := planeCoords(axis, ghostIdx, a, bIdx)
		pi, pj, pk := planeCoords(axis, innerIdx, a, bIdx)
		f.Set(i, j, k, sign*f.At(pi, pj, pk))
	})
}

// wrapFace copies the opposing face's last-inner-cell plane into this
// face's ghost plane (periodic wrap).
func (g *Grid) wrapFace(f *Field3, face Face, ob, gb BBox) {
	axis := int(face.Axis())
	ghostIdx := gb[2*axis]
	oppositeInner := ob[2*axis+1]
	if !face.IsLo() {
		ghostIdx = gb[2*axis+1]
		oppositeInner = ob[2*axis]
	}
	forEachPlane(gb, axis, func(a, bIdx int) {
		i, j, k := planeCoords(axis, ghostIdx, a, bIdx)
		pi, pj, pk := planeCoords(axis, oppositeInner, a, bIdx)
		f.Set(i, j, k, f.At(pi, pj, pk))
	})
}

// forEachPlane invokes fn(a,b) for every cell of the plane normal to
// axis, spanning the other two axes' full ghost-grid extent.
func forEachPlane(gb BBox, axis int, fn func(a, b int)) {
	axes := [3][2]int{{1, 2}, {0, 2}, {0, 1}}[axis]
	aLo, aHi := gb[2*axes[0]], gb[2*axes[0]+1]
	bLo, bHi := gb[2*axes[1]], gb[2*axes[1]+1]
	for a := aLo; a <= aHi; a++ {
		for b := bLo; b <= bHi; b++ {
			fn(a, b)
		}
	}
}

// planeCoords expands a fixed coordinate on axis plus the two free plane
// coordinates (a,b) into full (i,j,k).
func planeCoords(axis, fixed, a, b int) (i, j, k int) {
	switch axis {
	case 0:
		return fixed, a, b
	case 1:
		return a, fixed, b
	default:
		return a, b, fixed
	}
}
