// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wire implements thin-wire features: a wire is lowered at init
// to a private medium painted onto the axial E-component cells it
// occupies, exactly as source.Source's resistive voltage form paints a
// private medium for its lumped resistance.
package wire

import (
	"math"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gosl/chk"
)

// EndType names how a wire terminates at one of its two ends.
type EndType int

const (
	EndOpen EndType = iota
	EndShorted
	EndThrough
)

// Wire is one thin-wire run: a single mesh line of collinear edges along
// Axis, with a physical radius and two end treatments.
type Wire struct {
	Name   string
	Axis   grid.Axis
	Box    grid.BBox
	Radius float64
	EndLo  EndType
	EndHi  EndType

	medium *medium.Medium
}

// NewWire builds a wire over box, which must be a single line of cells
// collinear with exactly one axis (every other axis pinned to one
// cell), and derives its local thin-wire medium from the classical
// Holland/Umashankar correction: the excess per-unit-length capacitance
// of a conductor of radius a inside a cell of transverse size Δ is
// C' = 2πε0/ln(Δ/a), so the medium's relative permittivity along the
// wire's axis is boosted by ln(Δ/a)/(2π) above free space's 1. A
// wire with Δ <= 2a (a radius that does not fit inside its cell) is a
// configuration error.
func NewWire(mesh *grid.Mesh, name string, box grid.BBox, radius float64, endLo, endHi EndType, dt float64) (*Wire, error) {
	axis := -1
	for a := 0; a < 3; a++ {
		if box[2*a] != box[2*a+1] {
			if axis >= 0 {
				return nil, chk.Err("wire %q: bbox must be collinear with exactly one axis", name)
			}
			axis = a
		}
	}
	if axis < 0 {
		return nil, chk.Err("wire %q: bbox must span at least one cell", name)
	}
	t1, t2 := (axis+1)%3, (axis+2)%3
	delta := math.Sqrt(mesh.MinEdge(grid.Axis(t1)) * mesh.MinEdge(grid.Axis(t2)))
	if delta <= 2*radius {
		return nil, chk.Err("wire %q: radius %g does not fit inside its transverse cell size %g", name, radius, delta)
	}
	epsR := 1.0 + math.Log(delta/radius)/(2.0*math.Pi)
	m := medium.NewSimple(name, epsR, 0, 1)
	m.Coefficients(dt)
	return &Wire{Name: name, Axis: grid.Axis(axis), Box: box, Radius: radius, EndLo: endLo, EndHi: endHi, medium: m}, nil
}

// Medium returns the wire's private medium, pre-computed with update
// coefficients, ready for grid.PaintMedium.
func (w *Wire) Medium() *medium.Medium { return w.medium }

// PaintMedium paints the wire's medium onto the axial E-component cells
// of its box, and additionally forces a PEC cap on any end marked
// EndShorted (the conductor terminates into the local ground plane).
// EndOpen and EndThrough leave the boundary-adjacent cell at the wire's
// own medium: an open end is approximated by the natural truncation of
// the axial run, and a through end is expected to continue outside the
// painted region entirely.
func (w *Wire) PaintMedium(dc *grid.DenseCoefficients, mesh *grid.Mesh, scaling grid.Scaling) {
	c := grid.EX + grid.Component(w.Axis)
	flim := grid.SetFieldLimits(w.Box, [6]bool{true, true, true, true, true, true})
	grid.PaintMedium(dc, mesh, scaling, c, flim, w.medium)

	if w.EndLo == EndShorted {
		w.paintCap(dc, mesh, scaling, c, w.Box[2*int(w.Axis)])
	}
	if w.EndHi == EndShorted {
		w.paintCap(dc, mesh, scaling, c, w.Box[2*int(w.Axis)+1])
	}
}

func (w *Wire) paintCap(dc *grid.DenseCoefficients, mesh *grid.Mesh, scaling grid.Scaling, c grid.Component, idx int) {
	capBox := w.Box
	capBox[2*int(w.Axis)] = idx
	capBox[2*int(w.Axis)+1] = idx
	flim := grid.SetFieldLimits(capBox, [6]bool{true, true, true, true, true, true})
	pec := medium.NewPEC()
	pec.Coefficients(0)
	grid.PaintMedium(dc, mesh, scaling, c, flim, pec)
}
