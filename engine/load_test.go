// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/cpmech/gofdtd/inp"
	"github.com/cpmech/gosl/chk"
)

func cubicDeck(n int, d float64) *inp.Deck {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	axis := inp.AxisData{Lines: lines}
	return &inp.Deck{
		Grid: inp.GridData{X: axis, Y: axis, Z: axis},
		Boundaries: []inp.BoundaryData{
			{Face: "xlo", Type: "pec"}, {Face: "xhi", Type: "pec"},
			{Face: "ylo", Type: "pec"}, {Face: "yhi", Type: "pec"},
			{Face: "zlo", Type: "pec"}, {Face: "zhi", Type: "pec"},
		},
		Media: []inp.MediumData{{Name: "free_space", Kind: "freespace"}},
		Waveforms: []inp.WaveformData{
			{Name: "pulse", Kind: "gaussian", Amplitude: 1.0, Width: 1.0e-11},
		},
		Sources: []inp.SourceData{
			{Name: "feed", Kind: "efield", Hard: true, Component: "ez",
				Box: inp.BoxData{4, 4, 4, 4, 4, 4}, Waveform: "pulse", Amplitude: 1.0},
		},
		Simulation: inp.SimulationData{NSteps: 5},
	}
}

func Test_engine01(tst *testing.T) {

	chk.PrintTitle("engine01. a cubic PEC-bounded deck with a hard point source loads and runs")

	d := cubicDeck(8, 1.0e-3)
	if err := d.Validate(); err != nil {
		tst.Errorf("unexpected validation error: %v", err)
		return
	}
	s, err := Load(d)
	if err != nil {
		tst.Errorf("unexpected load error: %v", err)
		return
	}
	if s.Mesh == nil || s.Grid == nil {
		tst.Errorf("expected a built mesh and grid")
		return
	}
	if len(s.Sources) != 1 {
		tst.Errorf("expected one source, got %v", len(s.Sources))
		return
	}
	s.Run()
	v := s.Grid.E[2].At(4, 4, 4) // EZ
	if v == 0 {
		tst.Errorf("expected the hard source to have driven a nonzero field")
		return
	}
}

func Test_engine02(tst *testing.T) {

	chk.PrintTitle("engine02. an unknown medium referenced by a block is rejected")

	d := cubicDeck(8, 1.0e-3)
	d.Blocks = []inp.BlockData{{Box: inp.BoxData{1, 2, 1, 2, 1, 2}, Medium: "nope"}}
	if _, err := Load(d); err == nil {
		tst.Errorf("expected an error for an unknown block medium")
		return
	}
}

func Test_engine03(tst *testing.T) {

	chk.PrintTitle("engine03. a PML-terminated deck loads with the PML subsystem attached")

	d := cubicDeck(8, 1.0e-3)
	d.Boundaries = []inp.BoundaryData{
		{Face: "xlo", Type: "pml", Layers: 4}, {Face: "xhi", Type: "pml", Layers: 4},
		{Face: "ylo", Type: "pec"}, {Face: "yhi", Type: "pec"},
		{Face: "zlo", Type: "pec"}, {Face: "zhi", Type: "pec"},
	}
	s, err := Load(d)
	if err != nil {
		tst.Errorf("unexpected load error: %v", err)
		return
	}
	if !s.hasPML || s.PML == nil {
		tst.Errorf("expected the PML subsystem to be attached")
		return
	}
	s.Run()
}
