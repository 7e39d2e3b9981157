// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planewave

import (
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gofdtd/pml"
	"github.com/cpmech/gofdtd/waveform"
)

// AuxGrid is the one-dimensional TEM line used to evaluate the incident
// field for a cubic-grid injector: a full Yee grid one cell wide in y
// and z, free-space everywhere, CPML-backed at both ends over nPML
// cells, hard-driven by a waveform at one interior node along Ey, with
// Hz the companion propagating component. Building it as an ordinary
// grid.Grid plus pml.PML (rather than deriving a bespoke 1-D recursive
// convolution) costs nothing: Ex, Ez, Hx and Hy start at zero and, by
// inspection of grid.Grid.CurlH/CurlE, can never be driven away from
// zero when nothing varies along y or z, so the 3-D machinery collapses
// to a pure 1-D TEM line by construction.
type AuxGrid struct {
	Grid   *grid.Grid
	PML    *pml.PML
	dt     float64
	dx     float64
	srcIdx int
	wf     waveform.Model
	delay  float64
	t      float64
}

// NewAuxGrid builds the line: n interior cells of width dx, backed by
// nPML CPML layers at each end, sourced at its midpoint with wf (hard
// E-field injection, per spec.md §4.8's FormEfield).
func NewAuxGrid(n int, dx, dt float64, nPML int, grading pml.Grading, wf waveform.Model, delay float64) *AuxGrid {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * dx
	}
	xAxis := grid.AxisMesh{Lines: lines, PMLLo: nPML, PMLHi: nPML}
	thin := grid.AxisMesh{Lines: []float64{0, dx}}
	mesh := grid.NewMesh(xAxis, thin, thin)

	g := grid.NewGrid(mesh, grid.Scaled, grid.Dense)
	fs := medium.NewFreeSpace()
	fs.Coefficients(dt)
	outer := grid.SetFieldLimits(mesh.GOBox, [6]bool{true, true, true, true, true, true})
	for c := grid.EX; c <= grid.EZ; c++ {
		grid.PaintMedium(g.Coeffs.(*grid.DenseCoefficients), mesh, grid.Scaled, c, outer, fs)
	}
	for c := grid.HX; c <= grid.HZ; c++ {
		grid.PaintMedium(g.Coeffs.(*grid.DenseCoefficients), mesh, grid.Scaled, c, outer, fs)
	}

	boundary := [6]bool{true, true, false, false, false, false}
	gradings := [6]pml.Grading{grading, grading, {}, {}, {}, {}}
	p := pml.NewPML(mesh, boundary, gradings, dt)

	return &AuxGrid{
		Grid:   g,
		PML:    p,
		dt:     dt,
		dx:     dx,
		srcIdx: mesh.GIBox[grid.XLO] + n/2,
		wf:     wf,
		delay:  delay,
	}
}

// StepE advances the line's E field by one half-leapfrog step and
// injects the hard source, per the same order the main driver uses:
// PML slabs first, then the free-space interior.
func (a *AuxGrid) StepE() {
	a.PML.UpdateE(a.Grid)
	a.Grid.UpdateE(a.Grid.InnerLimits)
	v := 0.0
	if a.t >= a.delay {
		v = a.wf.Value(a.t - a.delay)
	}
	j, k := a.Grid.Mesh.GIBox[grid.YLO], a.Grid.Mesh.GIBox[grid.ZLO]
	a.Grid.E[grid.EY].Set(a.srcIdx, j, k, v)
}

// StepH advances the line's H field by one half-leapfrog step.
func (a *AuxGrid) StepH() {
	a.PML.UpdateH(a.Grid)
	a.Grid.UpdateH(a.Grid.InnerLimits)
	a.t += a.dt
}

// SampleE linearly interpolates the physical (unscaled) Ey value at
// distance d (metres) from the line's origin.
func (a *AuxGrid) SampleE(d float64) float64 {
	return a.sample(a.Grid.E[grid.EY], grid.EY, d)
}

// SampleH is SampleE's Hz analogue.
func (a *AuxGrid) SampleH(d float64) float64 {
	return a.sample(a.Grid.H[grid.HZ-grid.HX], grid.HZ, d)
}

func (a *AuxGrid) sample(f *grid.Field3, c grid.Component, d float64) float64 {
	x := d/a.dx + float64(a.Grid.Mesh.GIBox[grid.XLO])
	i0 := int(x)
	frac := x - float64(i0)
	j, k := a.Grid.Mesh.GIBox[grid.YLO], a.Grid.Mesh.GIBox[grid.ZLO]
	lo, hi := a.Grid.Mesh.GGBox[grid.XLO], a.Grid.Mesh.GGBox[grid.XHI]
	if i0 < lo {
		i0, frac = lo, 0
	}
	i1 := i0 + 1
	if i1 > hi {
		i1, i0 = hi, hi
		frac = 0
	}
	v0 := f.At(i0, j, k) / scaleOrOne(a.Grid, c, i0, j, k)
	v1 := f.At(i1, j, k) / scaleOrOne(a.Grid, c, i1, j, k)
	return v0 + frac*(v1-v0)
}

func scaleOrOne(g *grid.Grid, c grid.Component, i, j, k int) float64 {
	var s float64
	if c.IsElectric() {
		s = grid.ScaleFactorE(g.Mesh, g.Scaling, c, i, j, k)
	} else {
		s = grid.ScaleFactorH(g.Mesh, g.Scaling, c, i, j, k)
	}
	if s == 0 {
		return 1
	}
	return s
}
