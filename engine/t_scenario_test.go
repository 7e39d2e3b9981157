// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"testing"

	"github.com/cpmech/gofdtd/inp"
	"github.com/cpmech/gosl/chk"
)

// pecCubeDeck builds a cubic, all-PEC-bounded deck with a single hard
// Ez point source at the grid centre, the structure of testable
// property #1 / Scenario A, downsized from the literal 40^3/1000-step
// figures to keep the test's run time reasonable while preserving the
// property under test.
func pecCubeDeck(n int, d float64) *inp.Deck {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	axis := inp.AxisData{Lines: lines}
	c := n / 2
	return &inp.Deck{
		Grid: inp.GridData{X: axis, Y: axis, Z: axis},
		Boundaries: []inp.BoundaryData{
			{Face: "xlo", Type: "pec"}, {Face: "xhi", Type: "pec"},
			{Face: "ylo", Type: "pec"}, {Face: "yhi", Type: "pec"},
			{Face: "zlo", Type: "pec"}, {Face: "zhi", Type: "pec"},
		},
		Media: []inp.MediumData{{Name: "free_space", Kind: "freespace"}},
		Waveforms: []inp.WaveformData{
			{Name: "pulse", Kind: "gaussian", Amplitude: 1.0},
		},
		Sources: []inp.SourceData{
			{Name: "feed", Kind: "efield", Hard: true, Component: "ez",
				Box: inp.BoxData{c, c, c, c, c, c}, Waveform: "pulse", Amplitude: 1.0},
		},
		Simulation: inp.SimulationData{NSteps: 200},
	}
}

func Test_scenarioA(tst *testing.T) {

	chk.PrintTitle("scenarioA. PEC-bounded cube: energy stays bounded after the source pulse decays")

	d := pecCubeDeck(16, 1.0e-3)
	s, err := Load(d)
	if err != nil {
		tst.Errorf("unexpected load error: %v", err)
		return
	}

	for n := 0; n < 40; n++ { // let the Gaussian pulse fully excite the grid
		s.Step(n)
	}
	e0 := s.Grid.Energy()

	for n := 40; n < s.NSteps; n++ { // source has decayed to ~0 by here
		s.Step(n)
	}
	e1 := s.Grid.Energy()

	if e1 > 1.05*e0 || e1 < 0.5*e0 {
		tst.Errorf("energy not bounded after source decay: e0=%v e1=%v", e0, e1)
		return
	}
}

func Test_scenarioB(tst *testing.T) {

	chk.PrintTitle("scenarioB. a PML-backed face absorbs an outgoing pulse instead of reflecting it")

	n := 24
	d := 1.0e-3
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	axis := inp.AxisData{Lines: lines, PMLLo: 0, PMLHi: 6}
	axisXY := inp.AxisData{Lines: lines}
	deck := &inp.Deck{
		Grid: inp.GridData{X: axisXY, Y: axisXY, Z: axis},
		Boundaries: []inp.BoundaryData{
			{Face: "xlo", Type: "pec"}, {Face: "xhi", Type: "pec"},
			{Face: "ylo", Type: "pec"}, {Face: "yhi", Type: "pec"},
			{Face: "zlo", Type: "pec"}, {Face: "zhi", Type: "pml", Layers: 6},
		},
		Media: []inp.MediumData{{Name: "free_space", Kind: "freespace"}},
		Waveforms: []inp.WaveformData{
			{Name: "pulse", Kind: "gaussian", Amplitude: 1.0},
		},
		Sources: []inp.SourceData{
			{Name: "feed", Kind: "efield", Hard: true, Component: "ex",
				Box: inp.BoxData{n / 2, n / 2, n / 2, n / 2, 4, 4}, Waveform: "pulse", Amplitude: 1.0},
		},
		Observers: []inp.ObserverData{
			{Name: "nearpml", Box: inp.BoxData{n / 2, n / 2, n / 2, n / 2, n - 2, n - 2},
				Quantity: "efield", Domain: "time", Encoding: "ascii", File: "/dev/null"},
		},
		Simulation: inp.SimulationData{NSteps: 150},
	}

	s, err := Load(deck)
	if err != nil {
		tst.Errorf("unexpected load error: %v", err)
		return
	}
	if !s.hasPML {
		tst.Errorf("expected the pml subsystem to be attached")
		return
	}

	probeI, probeJ, probeK := n/2, n/2, n-2
	maxIncident := 0.0
	for n := 0; n < 40; n++ {
		s.Step(n)
		v := math.Abs(s.Grid.E[0].At(probeI, probeJ, probeK))
		if v > maxIncident {
			maxIncident = v
		}
	}
	for n := 40; n < s.NSteps-1; n++ {
		s.Step(n)
	}
	tailMax := 0.0
	for n := s.NSteps - 1; n < s.NSteps; n++ {
		s.Step(n)
		v := math.Abs(s.Grid.E[0].At(probeI, probeJ, probeK))
		if v > tailMax {
			tailMax = v
		}
	}
	if maxIncident > 0 && tailMax > 1.0e-1*maxIncident {
		tst.Errorf("reflected tail too large relative to incident peak: tail=%v incident=%v", tailMax, maxIncident)
		return
	}
}

func Test_scenarioF(tst *testing.T) {

	chk.PrintTitle("scenarioF. CFLN >= 1 is rejected at validation, CFLN just under the limit runs clean")

	over := pecCubeDeck(8, 1.0e-3)
	over.Simulation.CFLN = 1.01
	if err := over.Validate(); err == nil {
		tst.Errorf("expected cfln=1.01 to be rejected")
		return
	}

	under := pecCubeDeck(8, 1.0e-3)
	under.Simulation.NSteps = 10
	under.Simulation.CFLN = 0.99 * math.Sqrt(3) / 2
	if err := under.Validate(); err != nil {
		tst.Errorf("unexpected error for a below-limit cfln: %v", err)
		return
	}
	s, err := Load(under)
	if err != nil {
		tst.Errorf("unexpected load error: %v", err)
		return
	}
	s.Run()
	for c := 0; c < 3; c++ {
		v := s.Grid.E[c].At(4, 4, 4)
		if math.IsNaN(v) {
			tst.Errorf("field went NaN at component %v", c)
			return
		}
	}
}
