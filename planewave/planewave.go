// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package planewave implements the total-field/scattered-field plane
// wave injector: everywhere inside a box the grid carries the sum of
// incident and scattered fields, everywhere outside it only the
// scattered field, with the one-cell-stencil boundary correction
// carrying the difference across the box faces.
package planewave

import (
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gofdtd/pml"
	"github.com/cpmech/gofdtd/waveform"
)

// GridType selects the incident-field evaluation strategy for an
// Injector, chosen once from the mesh's own line spacing at init.
type GridType int

const (
	Cubic GridType = iota
	UniformNonCubic
	NonUniform
)

// Injector is one TF/SF plane-wave source.
type Injector struct {
	Box        grid.BBox
	ActiveFace [6]bool

	gridType  GridType
	inc       incidence
	amplitude float64
	waveform  waveform.Model
	delay     float64
	vPh       float64
	aux       *AuxGrid

	mesh   *grid.Mesh
	origin [3]float64 // r0: the box's own lo corner, in physical coordinates
}

// NewInjector classifies the mesh (cubic/uniform/non-uniform), builds
// the matching evaluation strategy and the incidence triad, per
// spec.md §4.4.
func NewInjector(mesh *grid.Mesh, box grid.BBox, active [6]bool, thetaRad, phiRad, etaRad, amplitude float64, wf waveform.Model, delay, dt float64, nPML int, auxWaveform waveform.Model) *Injector {
	inj := &Injector{
		Box: box, ActiveFace: active, mesh: mesh,
		inc: newIncidence(thetaRad, phiRad, etaRad),
		amplitude: amplitude, waveform: wf, delay: delay,
	}
	for axis := grid.XDIR; axis <= grid.ZDIR; axis++ {
		inj.origin[axis] = axisCoord(mesh, axis, box[2*int(axis)])
	}

	dx, dy, dz := mesh.MinEdge(grid.XDIR), mesh.MinEdge(grid.YDIR), mesh.MinEdge(grid.ZDIR)
	switch {
	case isCubic(mesh):
		n := mesh.GIBox[grid.XHI] - mesh.GIBox[grid.XLO] + 1 + 4*nPML
		inj.gridType = Cubic
		inj.aux = NewAuxGrid(n, dx, dt, nPML, pml.DefaultGrading(nPML), auxWaveform, delay)
	case isUniform(mesh):
		inj.gridType = UniformNonCubic
		inj.vPh = numericalPhaseVelocity(thetaRad, phiRad, dx, dy, dz, dt, medium.C0)
	default:
		inj.gridType = NonUniform
		inj.vPh = medium.C0
	}
	return inj
}

func isCubic(m *grid.Mesh) bool {
	return isUniform(m) && m.MinEdge(grid.XDIR) == m.MinEdge(grid.YDIR) && m.MinEdge(grid.YDIR) == m.MinEdge(grid.ZDIR)
}

func isUniform(m *grid.Mesh) bool {
	for axis := grid.XDIR; axis <= grid.ZDIR; axis++ {
		lo, hi := m.GIBox[2*int(axis)], m.GIBox[2*int(axis)+1]
		d0 := m.De[axis][lo]
		for i := lo; i <= hi; i++ {
			if m.De[axis][i] != d0 {
				return false
			}
		}
	}
	return true
}

// axisCoord returns the lower physical coordinate of ghost-cell index
// idx along axis, the cumulative sum of primary edge widths from the
// inner-grid origin. It is an edge-node approximation, not an exact
// per-component Yee half-cell offset; the TF/SF correction is
// insensitive to that sub-cell error, since d only ever enters a smooth
// waveform argument.
func axisCoord(m *grid.Mesh, axis grid.Axis, idx int) float64 {
	lo := m.GIBox[2*int(axis)]
	x := 0.0
	if idx >= lo {
		for i := lo; i < idx; i++ {
			x += m.De[axis][i]
		}
	} else {
		for i := idx; i < lo; i++ {
			x -= m.De[axis][i]
		}
	}
	return x
}

// distance projects the physical position of (i,j,k) onto the
// propagation direction, relative to the box origin.
func (inj *Injector) distance(i, j, k int) float64 {
	r := vec3{
		axisCoord(inj.mesh, grid.XDIR, i) - inj.origin[grid.XDIR],
		axisCoord(inj.mesh, grid.YDIR, j) - inj.origin[grid.YDIR],
		axisCoord(inj.mesh, grid.ZDIR, k) - inj.origin[grid.ZDIR],
	}
	return inj.inc.K.dot(r)
}

// shape evaluates the dimensionless time waveform w(t-d/vph-delay)
// shared by every field component, per spec.md §4.4's single-waveform
// incident-field formula.
func (inj *Injector) shape(d, t float64) float64 {
	if inj.gridType == Cubic {
		return inj.aux.SampleE(d)
	}
	tRet := t - d/inj.vPh - inj.delay
	if tRet < 0 {
		return 0
	}
	return inj.waveform.Value(tRet)
}

// amp returns the incident-field amplitude vector's component along
// axis for the E or H family.
func (inj *Injector) amp(electric bool, axis grid.Axis) float64 {
	if electric {
		return inj.amplitude * inj.inc.E[axis]
	}
	return (inj.amplitude / eta0) * inj.inc.H[axis]
}

// UpdateE steps the auxiliary grid (cubic strategy only) and applies
// the one-cell-stencil correction to every tangential E component on
// every active face.
func (inj *Injector) UpdateE(g *grid.Grid, t float64) {
	if inj.aux != nil {
		inj.aux.StepE()
	}
	for face := grid.XLO; face <= grid.ZHI; face++ {
		if !inj.ActiveFace[face] {
			continue
		}
		inj.correctFace(g, face, t, true)
	}
}

// UpdateH is UpdateE's magnetic analogue.
func (inj *Injector) UpdateH(g *grid.Grid, t float64) {
	if inj.aux != nil {
		inj.aux.StepH()
	}
	for face := grid.XLO; face <= grid.ZHI; face++ {
		if !inj.ActiveFace[face] {
			continue
		}
		inj.correctFace(g, face, t, false)
	}
}

// correctFace applies the generalized axis-agnostic TF/SF correction
// derived from the per-face/per-component update blocks this package is
// grounded on: for normal axis n with tangential axes t1=(n+1)%3,
// t2=(n+2)%3, the E correction cross-pairs E_t1 with incident H_t2 and
// E_t2 with incident H_t1 (H correction the opposite pairing), with sign
// flipping between the lo and hi face and between the E and H families.
func (inj *Injector) correctFace(g *grid.Grid, face grid.Face, t float64, electric bool) {
	n := int(face.Axis())
	t1, t2 := (n+1)%3, (n+2)%3
	lo := face.IsLo()

	var nv, ext int
	if lo {
		nv = inj.Box[2*n]
		ext = nv - 1
	} else {
		nv = inj.Box[2*n+1]
		ext = nv + 1
	}
	t1lo, t1hi := inj.Box[2*t1], inj.Box[2*t1+1]
	t2lo, t2hi := inj.Box[2*t2], inj.Box[2*t2+1]

	sign := 1.0
	if !lo {
		sign = -1.0
	}
	if !electric {
		sign = -sign
	}

	for t1v := t1lo; t1v <= t1hi; t1v++ {
		for t2v := t2lo; t2v <= t2hi; t2v++ {
			if electric {
				inj.correctE(g, n, t1, t2, nv, ext, t1v, t2v, t, sign)
			} else {
				inj.correctH(g, n, t1, t2, nv, ext, t1v, t2v, t, sign)
			}
		}
	}
}

func (inj *Injector) correctE(g *grid.Grid, n, t1, t2, nv, ext, t1v, t2v int, t, sign float64) {
	c1, c2 := eComponent(t1), eComponent(t2)

	i, j, k := coord3(n, t1, t2, nv, t1v, t2v)
	ie, je, ke := coord3(n, t1, t2, ext, t1v, t2v)
	d := inj.distance(ie, je, ke)
	hInc := inj.amp(false, grid.Axis(t2)) * inj.shape(d, t)
	beta := g.Coeffs.BetaE(c1, i, j, k)
	f := g.E[c1]
	f.Set(i, j, k, f.At(i, j, k)+sign*beta*hInc)

	hInc2 := inj.amp(false, grid.Axis(t1)) * inj.shape(d, t)
	beta2 := g.Coeffs.BetaE(c2, i, j, k)
	f2 := g.E[c2]
	f2.Set(i, j, k, f2.At(i, j, k)-sign*beta2*hInc2)
}

func (inj *Injector) correctH(g *grid.Grid, n, t1, t2, nv, ext, t1v, t2v int, t, sign float64) {
	c1, c2 := hComponent(t1), hComponent(t2)

	i, j, k := coord3(n, t1, t2, nv, t1v, t2v)
	ie, je, ke := coord3(n, t1, t2, ext, t1v, t2v)
	d := inj.distance(ie, je, ke)
	eInc := inj.amp(true, grid.Axis(t2)) * inj.shape(d, t)
	gam := g.Coeffs.GammaH(c1, i, j, k)
	f := g.H[c1-grid.HX]
	f.Set(i, j, k, f.At(i, j, k)+sign*gam*eInc)

	eInc2 := inj.amp(true, grid.Axis(t1)) * inj.shape(d, t)
	gam2 := g.Coeffs.GammaH(c2, i, j, k)
	f2 := g.H[c2-grid.HX]
	f2.Set(i, j, k, f2.At(i, j, k)-sign*gam2*eInc2)
}

func coord3(n, t1, t2, nv, t1v, t2v int) (i, j, k int) {
	var idx [3]int
	idx[n] = nv
	idx[t1] = t1v
	idx[t2] = t2v
	return idx[0], idx[1], idx[2]
}

func eComponent(axis int) grid.Component { return grid.EX + grid.Component(axis) }
func hComponent(axis int) grid.Component { return grid.HX + grid.Component(axis) }
