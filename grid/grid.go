// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
)

// CoeffStrategy selects how per-cell update coefficients are stored.
type CoeffStrategy int

const (
	Dense CoeffStrategy = iota
	Indexed
)

// sentinel is the limit-checking "uncovered cell" marker (spec.md §4.1).
const sentinel = -1.0e30

// Grid owns the Yee field arrays, the mesh, and the update-coefficient
// strategy for the whole simulation. It is the "Solver owning struct"
// spec.md §9 asks for, scoped to just the lattice (the broader
// orchestration lives in package engine).
type Grid struct {
	Mesh    *Mesh
	Scaling Scaling

	E [3]*Field3 // Ex,Ey,Ez
	H [3]*Field3 // Hx,Hy,Hz

	Coeffs Coefficients

	// field-limit boxes for the inner, outer and ghost grid extents,
	// with no boundary faces included (spec.md §4.1's ggbox convention:
	// the full inner/outer grid is stepped, boundary treatment is a
	// separate phase).
	InnerLimits FieldLimits
	OuterLimits FieldLimits

	LimitCheck bool // enable the sentinel double-write/uncovered-cell assertion mode
	Parallel   bool // shard E/H updates across goroutines over the outer loop index
}

// NewGrid allocates field arrays sized to the full ghost-grid extent and
// derives the inner/outer field-limit boxes (no boundary faces
// included, since grid-interior stepping never touches a boundary on
// its own).
func NewGrid(mesh *Mesh, scaling Scaling, strategy CoeffStrategy) *Grid {
	nx := mesh.GGBox[XHI] - mesh.GGBox[XLO] + 1
	ny := mesh.GGBox[YHI] - mesh.GGBox[YLO] + 1
	nz := mesh.GGBox[ZHI] - mesh.GGBox[ZLO] + 1

	g := &Grid{Mesh: mesh, Scaling: scaling}
	for c := 0; c < 3; c++ {
		g.E[c] = NewField3(nx, ny, nz)
		g.H[c] = NewField3(nx, ny, nz)
	}

	switch strategy {
	case Dense:
		g.Coeffs = NewDenseCoefficients(nx, ny, nz)
	case Indexed:
		chk.Panic("NewGrid: the indexed strategy is not supported here; build it with NewIndexedCoefficients (needs a medium table)")
	}

	noBoundary := [6]bool{}
	g.InnerLimits = SetFieldLimits(mesh.GIBox, noBoundary)
	g.OuterLimits = SetFieldLimits(mesh.GOBox, noBoundary)

	if g.LimitCheck {
		g.resetSentinels()
	}
	return g
}

func (g *Grid) resetSentinels() {
	for c := 0; c < 3; c++ {
		g.E[c].Fill(sentinel)
		g.H[c].Fill(sentinel)
	}
}

// CurlH returns the curl-of-H term feeding component c's electric update
// at (i,j,k), in either the scaled (plain subtraction) or unscaled
// (reciprocal secondary-edge-weighted) convention, per grid.h's
// curl_Hx/Hy/Hz macros. Exported so the boundary packages (pml, mur)
// can reuse exactly the same curl as the interior update.
func (g *Grid) CurlH(c Component, i, j, k int) float64 {
	m := g.Mesh
	switch c {
	case EX:
		hz, hz1 := g.H[2].At(i, j, k), g.H[2].At(i, j-1, k)
		hy, hy1 := g.H[1].At(i, j, k), g.H[1].At(i, j, k-1)
		if g.Scaling == Scaled {
			return hz - hz1 + hy1 - hy
		}
		return m.IDh[YDIR][j]*(hz-hz1) + m.IDh[ZDIR][k]*(hy1-hy)
	case EY:
		hx, hx1 := g.H[0].At(i, j, k), g.H[0].At(i, j, k-1)
		hz, hz1 := g.H[2].At(i, j, k), g.H[2].At(i-1, j, k)
		if g.Scaling == Scaled {
			return hx - hx1 + hz1 - hz
		}
		return m.IDh[ZDIR][k]*(hx-hx1) + m.IDh[XDIR][i]*(hz1-hz)
	default: // EZ
		hy, hy1 := g.H[1].At(i, j, k), g.H[1].At(i-1, j, k)
		hx, hx1 := g.H[0].At(i, j, k), g.H[0].At(i, j-1, k)
		if g.Scaling == Scaled {
			return hy - hy1 + hx1 - hx
		}
		return m.IDh[XDIR][i]*(hy-hy1) + m.IDh[YDIR][j]*(hx1-hx)
	}
}

// CurlE is the magnetic-update analogue of CurlH.
func (g *Grid) CurlE(c Component, i, j, k int) float64 {
	m := g.Mesh
	switch c {
	case HX:
		ey, ey1 := g.E[1].At(i, j, k+1), g.E[1].At(i, j, k)
		ez, ez1 := g.E[2].At(i, j, k), g.E[2].At(i, j+1, k)
		if g.Scaling == Scaled {
			return ey - ey1 + ez - ez1
		}
		return m.IDe[ZDIR][k]*(ey-ey1) + m.IDe[YDIR][j]*(ez-ez1)
	case HY:
		ez, ez1 := g.E[2].At(i+1, j, k), g.E[2].At(i, j, k)
		ex, ex1 := g.E[0].At(i, j, k), g.E[0].At(i, j, k+1)
		if g.Scaling == Scaled {
			return ez - ez1 + ex - ex1
		}
		return m.IDe[XDIR][i]*(ez-ez1) + m.IDe[ZDIR][k]*(ex-ex1)
	default: // HZ
		ex, ex1 := g.E[0].At(i, j+1, k), g.E[0].At(i, j, k)
		ey, ey1 := g.E[1].At(i, j, k), g.E[1].At(i+1, j, k)
		if g.Scaling == Scaled {
			return ex - ex1 + ey - ey1
		}
		return m.IDe[YDIR][j]*(ex-ex1) + m.IDe[XDIR][i]*(ey-ey1)
	}
}

// UpdateE advances the three electric components over flim, the
// canonical E_new = alpha*E_old + beta*curl_H update of spec.md §4.1.
func (g *Grid) UpdateE(flim FieldLimits) {
	for c := EX; c <= EZ; c++ {
		g.updateEComponent(c, flim)
	}
}

func (g *Grid) updateEComponent(c Component, flim FieldLimits) {
	ilo, jlo, klo := flim.Lo(c)
	ihi, jhi, khi := flim.Hi(c)
	f := g.E[c]
	work := func(i int) {
		for j := jlo; j <= jhi; j++ {
			for k := klo; k <= khi; k++ {
				if g.LimitCheck && f.At(i, j, k) != sentinel {
					chk.Panic("grid: double write detected at E%d(%d,%d,%d)", c, i, j, k)
				}
				a := g.Coeffs.AlphaE(c, i, j, k)
				b := g.Coeffs.BetaE(c, i, j, k)
				v := a*f.At(i, j, k) + b*g.CurlH(c, i, j, k)
				f.Set(i, j, k, v)
			}
		}
	}
	g.forEachOuter(ilo, ihi, work)
}

// UpdateH advances the three magnetic components over flim, the
// canonical H_new = H_old + gamma*curl_E update of spec.md §4.1.
func (g *Grid) UpdateH(flim FieldLimits) {
	for c := HX; c <= HZ; c++ {
		g.updateHComponent(c, flim)
	}
}

func (g *Grid) updateHComponent(c Component, flim FieldLimits) {
	ilo, jlo, klo := flim.Lo(c)
	ihi, jhi, khi := flim.Hi(c)
	f := g.H[c-HX]
	work := func(i int) {
		for j := jlo; j <= jhi; j++ {
			for k := klo; k <= khi; k++ {
				if g.LimitCheck && f.At(i, j, k) != sentinel {
					chk.Panic("grid: double write detected at H%d(%d,%d,%d)", c, i, j, k)
				}
				gam := g.Coeffs.GammaH(c, i, j, k)
				v := f.At(i, j, k) + gam*g.CurlE(c, i, j, k)
				f.Set(i, j, k, v)
			}
		}
	}
	g.forEachOuter(ilo, ihi, work)
}

// forEachOuter runs work(i) for i in [ilo,ihi], optionally sharded
// across goroutines (spec.md §5's embarrassingly-parallel outer loop;
// no two iterations ever write the same cell since i selects disjoint
// slabs of the destination array).
func (g *Grid) forEachOuter(ilo, ihi int, work func(i int)) {
	if !g.Parallel || ihi-ilo < 4 {
		for i := ilo; i <= ihi; i++ {
			work(i)
		}
		return
	}
	nWorkers := 4
	span := ihi - ilo + 1
	chunk := (span + nWorkers - 1) / nWorkers
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		lo := ilo + w*chunk
		hi := lo + chunk - 1
		if hi > ihi {
			hi = ihi
		}
		if lo > hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i <= hi; i++ {
				work(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// CheckUncovered sweeps the outer box after a step in limit-checking
// mode and panics if any cell still holds the initial sentinel (spec.md
// §4.1's "uncovered cell" invariant).
func (g *Grid) CheckUncovered() {
	if !g.LimitCheck {
		return
	}
	for c := 0; c < 3; c++ {
		checkField(g.E[c], "E", c)
		checkField(g.H[c], "H", c)
	}
}

func checkField(f *Field3, tag string, c int) {
	for _, v := range f.Data {
		if v == sentinel {
			chk.Panic("grid: uncovered cell detected in %s%d after step", tag, c)
		}
	}
}

// Energy returns the total electromagnetic energy stored in the inner
// grid, used by testable property #1 (cubic free-space energy
// conservation). Energy density is (eps*E^2 + mu*H^2)/2 per Yee cell,
// approximated here using free-space permittivity/permeability and unit
// cell volume since the scenario this supports is vacuum-filled.
func (g *Grid) Energy() float64 {
	const eps0 = 8.854187817e-12
	const mu0 = 4.0e-7 * math.Pi
	sum := 0.0
	flim := g.InnerLimits
	for c := EX; c <= EZ; c++ {
		ilo, jlo, klo := flim.Lo(c)
		ihi, jhi, khi := flim.Hi(c)
		f := g.E[c]
		for i := ilo; i <= ihi; i++ {
			for j := jlo; j <= jhi; j++ {
				for k := klo; k <= khi; k++ {
					v := f.At(i, j, k)
					sum += 0.5 * eps0 * v * v
				}
			}
		}
	}
	for c := HX; c <= HZ; c++ {
		ilo, jlo, klo := flim.Lo(c)
		ihi, jhi, khi := flim.Hi(c)
		f := g.H[c-HX]
		for i := ilo; i <= ihi; i++ {
			for j := jlo; j <= jhi; j++ {
				for k := klo; k <= khi; k++ {
					v := f.At(i, j, k)
					sum += 0.5 * mu0 * v * v
				}
			}
		}
	}
	return sum
}
