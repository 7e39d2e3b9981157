// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func cubicDeck(n int, d float64) *Deck {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	axis := AxisData{Lines: lines}
	return &Deck{
		Grid:       GridData{X: axis, Y: axis, Z: axis},
		Media:      []MediumData{{Name: "free_space", Kind: "freespace"}},
		Simulation: SimulationData{NSteps: 10},
	}
}

func Test_inp01(tst *testing.T) {

	chk.PrintTitle("inp01. a valid deck derives a default CFLN and a Courant-limited dt")

	d := cubicDeck(8, 1.0e-3)
	if err := d.Validate(); err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	if math.Abs(d.Simulation.CFLN-defaultCFLN) > 1e-15 {
		tst.Errorf("expected the default CFLN to be applied, got %v", d.Simulation.CFLN)
		return
	}
	dt := d.Dt()
	courant := dt * 3.0e8 * math.Sqrt(3.0) / 1.0e-3 // dt*c0*sqrt(1/dx^2*3)
	if courant >= 1.0 {
		tst.Errorf("derived dt violates the Courant limit: courant=%v", courant)
		return
	}
}

func Test_inp02(tst *testing.T) {

	chk.PrintTitle("inp02. CFLN >= 1 is rejected")

	d := cubicDeck(8, 1.0e-3)
	d.Simulation.CFLN = 1.0
	if err := d.Validate(); err == nil {
		tst.Errorf("expected an error for cfln >= 1")
		return
	}
}

func Test_inp03(tst *testing.T) {

	chk.PrintTitle("inp03. a block referencing an unknown medium is rejected")

	d := cubicDeck(8, 1.0e-3)
	d.Blocks = []BlockData{{Box: BoxData{1, 2, 1, 2, 1, 2}, Medium: "nope"}}
	if err := d.Validate(); err == nil {
		tst.Errorf("expected an error for an unknown medium reference")
		return
	}
}

func Test_inp04(tst *testing.T) {

	chk.PrintTitle("inp04. a non-normal bbox is rejected")

	d := cubicDeck(8, 1.0e-3)
	d.Blocks = []BlockData{{Box: BoxData{2, 1, 1, 2, 1, 2}, Medium: "free_space"}}
	if err := d.Validate(); err == nil {
		tst.Errorf("expected an error for a non-normal bbox")
		return
	}
}

func Test_inp05(tst *testing.T) {

	chk.PrintTitle("inp05. a source referencing an unknown waveform is rejected")

	d := cubicDeck(8, 1.0e-3)
	d.Sources = []SourceData{{Name: "s1", Box: BoxData{1, 1, 1, 1, 1, 1}, Waveform: "missing"}}
	if err := d.Validate(); err == nil {
		tst.Errorf("expected an error for an unknown waveform reference")
		return
	}
}
