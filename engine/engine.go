// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package engine implements the driver: the single Solver owning struct
// threading together the grid and every subsystem, the per-step update
// schedule, and the run loop.
package engine

import (
	"github.com/cpmech/gofdtd/debye"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gofdtd/mur"
	"github.com/cpmech/gofdtd/observer"
	"github.com/cpmech/gofdtd/planewave"
	"github.com/cpmech/gofdtd/pml"
	"github.com/cpmech/gofdtd/sibc"
	"github.com/cpmech/gofdtd/source"
	"github.com/cpmech/gosl/io"
)

// Solver is the single owning struct for a simulation, per spec.md §9's
// "fold into a Solver" design note: the grid and every subsystem are
// threaded through explicitly, with no global or package-level state.
type Solver struct {
	Mesh  *grid.Mesh
	Grid  *grid.Grid
	Table *medium.Table
	Dt    float64

	PML        *pml.PML
	hasPML     bool
	Mur        *mur.Mur
	hasMur     bool
	GhostE     grid.Boundary
	GhostH     grid.Boundary
	DebyeBlocks []*debye.Block
	Surfaces    []*sibc.Surface
	Sources     []*source.Source
	PlaneWaves  []*planewave.Injector
	Observers   []*observer.Observer

	NSteps int
}

// Step advances the solver by one full leapfrog cycle at step n,
// implementing spec.md §2/§4.9's schedule exactly: observers first see
// the fields left over from step n-1 (post-step semantics when called
// with index n), then the electric half-step runs in boundary-to-
// interior order, then the magnetic half-step mirrors it.
func (s *Solver) Step(n int) {
	t := float64(n) * s.Dt
	tE := t
	tH := t + 0.5*s.Dt

	for _, o := range s.Observers {
		o.Update(n, t, s.fieldGetter)
	}

	if s.hasPML {
		s.PML.UpdateE(s.Grid)
	}
	if s.hasMur {
		s.Mur.UpdateE(s.Grid)
	}
	s.Grid.UpdateE(s.Grid.InnerLimits)
	debye.UpdateE(s.Grid, s.Grid.Scaling, s.DebyeBlocks)
	for _, surf := range s.Surfaces {
		surf.UpdateE(s.Grid)
	}
	for _, src := range s.Sources {
		if src.Component.IsElectric() {
			src.Update(s.Grid, tE)
		}
	}
	for _, pw := range s.PlaneWaves {
		pw.UpdateE(s.Grid, tE)
	}
	s.Grid.FillGhostE(s.GhostE)

	if s.hasPML {
		s.PML.UpdateH(s.Grid)
	}
	s.Grid.UpdateH(s.Grid.InnerLimits)
	for _, surf := range s.Surfaces {
		surf.UpdateH(s.Grid)
	}
	for _, src := range s.Sources {
		if !src.Component.IsElectric() {
			src.Update(s.Grid, tH)
		}
	}
	for _, pw := range s.PlaneWaves {
		pw.UpdateH(s.Grid, tH)
	}
	s.Grid.FillGhostH(s.GhostH)

	if s.Grid.LimitCheck {
		s.Grid.CheckUncovered()
	}
}

// fieldGetter adapts the solver's grid into the observer.Getter contract
// (§6's "unscaled physical value" rule): Scaled storage divides out the
// geometric factor before returning.
func (s *Solver) fieldGetter(c grid.Component, i, j, k int) float64 {
	scale := 1.0
	if c.IsElectric() {
		scale = grid.ScaleFactorE(s.Mesh, s.Grid.Scaling, c, i, j, k)
		v := s.Grid.E[c].At(i, j, k)
		if scale == 0 {
			return v
		}
		return v / scale
	}
	scale = grid.ScaleFactorH(s.Mesh, s.Grid.Scaling, c, i, j, k)
	v := s.Grid.H[c-grid.HX].At(i, j, k)
	if scale == 0 {
		return v
	}
	return v / scale
}

// Run steps the solver NSteps times and flushes every observer
// afterwards, per spec.md §4.9's "explicit flush after the loop" rule.
// Observer output failures are reported but never stop the run (§7).
func (s *Solver) Run() {
	for n := 0; n < s.NSteps; n++ {
		s.Step(n)
	}
	for _, o := range s.Observers {
		if err := o.Flush(); err != nil {
			io.Pfred("engine: observer %q flush failed: %v\n", o.Name, err)
		}
	}
}
