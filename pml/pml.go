// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import (
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
)

const eps0 = medium.Eps0

// NewPML builds the graded axis profiles for every boundary face marked
// PML and partitions the outer-grid perimeter into six non-overlapping
// slab regions following the original's Z-then-Y-then-X onion order (X
// slabs own the full y/z extent including corners; Y slabs exclude the
// x corners already owned by the X slabs; Z slabs exclude both).
func NewPML(mesh *grid.Mesh, boundary [6]bool, grading [6]Grading, dt float64) *PML {
	p := &PML{Boundary: boundary}

	for axis := grid.XDIR; axis <= grid.ZDIR; axis++ {
		lo, hi := mesh.GGBox[2*int(axis)], mesh.GGBox[2*int(axis)+1]
		prof := newIdentityProfile(lo, hi)
		giLo, giHi := mesh.GIBox[2*int(axis)], mesh.GIBox[2*int(axis)+1]
		goLo, goHi := mesh.GOBox[2*int(axis)], mesh.GOBox[2*int(axis)+1]
		loFace := grid.Face(2 * int(axis))
		hiFace := grid.Face(2*int(axis) + 1)
		if boundary[loFace] {
			prof.gradeLoFace(mesh.De[axis], mesh.Dh[axis], lo, goLo, giLo-1, dt, eps0, grading[loFace])
		}
		if boundary[hiFace] {
			prof.gradeHiFace(mesh.De[axis], mesh.Dh[axis], lo, giHi, goHi, dt, eps0, grading[hiFace])
		}
		p.Profile[axis] = prof
	}

	nx := mesh.GGBox[grid.XHI] - mesh.GGBox[grid.XLO] + 1
	ny := mesh.GGBox[grid.YHI] - mesh.GGBox[grid.YLO] + 1
	nz := mesh.GGBox[grid.ZHI] - mesh.GGBox[grid.ZLO] + 1
	for c := 0; c < 3; c++ {
		p.PP[c] = grid.NewField3(nx, ny, nz)
		p.P[c] = grid.NewField3(nx, ny, nz)
		p.B[c] = grid.NewField3(nx, ny, nz)
	}

	gi, gg := mesh.GIBox, mesh.GGBox
	faceBox := func(face grid.Face) grid.BBox {
		axis := int(face.Axis())
		box := gg
		// X regions (axis 0) own the full y/z extent; Y regions (axis 1)
		// exclude x corners (use GIBox there); Z regions (axis 2) exclude
		// both x and y corners.
		if axis >= 1 {
			box[grid.XLO], box[grid.XHI] = gi[grid.XLO], gi[grid.XHI]
		}
		if axis >= 2 {
			box[grid.YLO], box[grid.YHI] = gi[grid.YLO], gi[grid.YHI]
		}
		if face.IsLo() {
			box[2*axis], box[2*axis+1] = gg[2*axis], gi[2*axis]-1
		} else {
			box[2*axis], box[2*axis+1] = gi[2*axis+1]+1, gg[2*axis+1]
		}
		return box
	}

	for face := grid.XLO; face <= grid.ZHI; face++ {
		if !boundary[face] {
			continue
		}
		box := faceBox(face)
		elim := grid.SetFieldLimits(box, [6]bool{true, true, true, true, true, true})
		hlim := grid.SetFieldLimits(box, [6]bool{true, true, true, true, true, true})
		p.regions = append(p.regions, region{Face: face, Elim: elim, Hlim: hlim})
	}

	return p
}

// UpdateE advances the cascaded PP->P->E convolution for all three E
// components in every PML region, using the grid's own medium
// alpha/beta (g.Coeffs) for the raw curl
// accumulation, exactly as the original's PPx/Px chain does.
func (p *PML) UpdateE(g *grid.Grid) {
	for _, r := range p.regions {
		for c := grid.EX; c <= grid.EZ; c++ {
			p.updateEComponent(g, c, r.Elim)
		}
	}
}

func (p *PML) updateEComponent(g *grid.Grid, c grid.Component, flim grid.FieldLimits) {
	ilo, jlo, klo := flim.Lo(c)
	ihi, jhi, khi := flim.Hi(c)
	pp, pAux, e := p.PP[c], p.P[c], g.E[c]

	axX, axY, axZ := p.Profile[grid.XDIR], p.Profile[grid.YDIR], p.Profile[grid.ZDIR]

	for i := ilo; i <= ihi; i++ {
		for j := jlo; j <= jhi; j++ {
			for k := klo; k <= khi; k++ {
				alpha := g.Coeffs.AlphaE(c, i, j, k)
				beta := g.Coeffs.BetaE(c, i, j, k)
				oldPP := pp.At(i, j, k)
				rawCurl := g.CurlH(c, i, j, k)
				newPP := alpha*oldPP + beta*rawCurl
				pp.Set(i, j, k, newPP)

				oldP := pAux.At(i, j, k)
				var ad, bd, ah, ibh float64
				switch c {
				case grid.EX:
					ad, bd = axY.AD[j], axY.BD[j]
					ah, ibh = axX.AH[i], axX.IBH[i]
				case grid.EY:
					ad, bd = axZ.AD[k], axZ.BD[k]
					ah, ibh = axY.AH[j], axY.IBH[j]
				default: // EZ
					ad, bd = axX.AD[i], axX.BD[i]
					ah, ibh = axZ.AH[k], axZ.IBH[k]
				}
				newP := ad*oldP + bd*(newPP-oldPP)
				pAux.Set(i, j, k, newP)

				var az, bz float64
				switch c {
				case grid.EX:
					az, bz = axZ.AD[k], axZ.BD[k]
				case grid.EY:
					az, bz = axX.AD[i], axX.BD[i]
				default:
					az, bz = axY.AD[j], axY.BD[j]
				}
				old := e.At(i, j, k)
				e.Set(i, j, k, az*old+bz*ibh*(newP-ah*oldP))
			}
		}
	}
}

// UpdateH is the magnetic analogue of UpdateE.
func (p *PML) UpdateH(g *grid.Grid) {
	for _, r := range p.regions {
		for c := grid.HX; c <= grid.HZ; c++ {
			p.updateHComponent(g, c, r.Hlim)
		}
	}
}

func (p *PML) updateHComponent(g *grid.Grid, c grid.Component, flim grid.FieldLimits) {
	ilo, jlo, klo := flim.Lo(c)
	ihi, jhi, khi := flim.Hi(c)
	b := p.B[c-grid.HX]
	h := g.H[c-grid.HX]

	axX, axY, axZ := p.Profile[grid.XDIR], p.Profile[grid.YDIR], p.Profile[grid.ZDIR]

	for i := ilo; i <= ihi; i++ {
		for j := jlo; j <= jhi; j++ {
			for k := klo; k <= khi; k++ {
				gamma := g.Coeffs.GammaH(c, i, j, k)
				rawCurl := g.CurlE(c, i, j, k)
				oldB := b.At(i, j, k)
				newB := oldB + gamma*rawCurl

				var ah, bh float64
				switch c {
				case grid.HX:
					ah, bh = axY.AH[j], axY.BH[j]
				case grid.HY:
					ah, bh = axZ.AH[k], axZ.BH[k]
				default:
					ah, bh = axX.AH[i], axX.BH[i]
				}
				old := h.At(i, j, k)
				h.Set(i, j, k, ah*old+bh*(newB-oldB))
				b.Set(i, j, k, newB)
			}
		}
	}
}

