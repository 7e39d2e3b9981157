// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"
	"testing"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func uniformMesh(n int, d float64) *grid.Mesh {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	axis := grid.AxisMesh{Lines: lines}
	return grid.NewMesh(axis, axis, axis)
}

// fixedWaveform implements waveform.Model with a constant value, enough
// to drive Source.value without the full registry.
type fixedWaveform struct{ v float64 }

func (f *fixedWaveform) Init(dt float64, prms fun.Prms) error { return nil }
func (f *fixedWaveform) GetPrms(example bool) fun.Prms        { return fun.Prms{} }
func (f *fixedWaveform) Value(t float64) float64              { return f.v }

func Test_source01(tst *testing.T) {

	chk.PrintTitle("source01. a plain E-field source lowers to FormEfield with scale=amplitude")

	mesh := uniformMesh(4, 1.0e-3)
	box := grid.NewBBox(1, 1, 1, 1, 1, 1)
	s, err := NewSource(KindEfield, grid.EX, box, nil, 0, 2.5, false, mesh, 0)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	if s.Form != FormEfield {
		tst.Errorf("expected FormEfield, got %v", s.Form)
		return
	}
	if math.Abs(s.scale-2.5) > 1e-12 {
		tst.Errorf("expected scale=amplitude=2.5, got %v", s.scale)
		return
	}
}

func Test_source02(tst *testing.T) {

	chk.PrintTitle("source02. a current-moment source divides amplitude by length*area")

	d := 1.0e-3
	mesh := uniformMesh(4, d)
	box := grid.NewBBox(1, 1, 1, 1, 1, 2) // two cells along z (EX's tangential box not used here; use EZ)
	s, err := NewSource(KindCurrentMoment, grid.EZ, box, nil, 0, 1.0, false, mesh, 0)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	length := 2 * d
	area := d * d
	expected := 1.0 / (length * area)
	if math.Abs(s.scale-expected) > 1e-6*expected {
		tst.Errorf("expected scale=%v, got %v", expected, s.scale)
		return
	}
}

func Test_source03(tst *testing.T) {

	chk.PrintTitle("source03. a degenerate current source bbox is rejected")

	mesh := uniformMesh(4, 1.0e-3)
	box := grid.NewBBox(1, 1, 1, 1, 1, 1)
	_, err := NewSource(KindCurrent, grid.EZ, box, nil, 0, 1.0, false, mesh, 0)
	if err == nil {
		tst.Errorf("expected an error for a zero-area current source bbox")
		return
	}
}

func Test_source04(tst *testing.T) {

	chk.PrintTitle("source04. value is zero before the delay and scale*waveform after it")

	mesh := uniformMesh(4, 1.0e-3)
	box := grid.NewBBox(1, 1, 1, 1, 1, 1)
	s, err := NewSource(KindEfield, grid.EX, box, &fixedWaveform{v: 3.0}, 1.0e-9, 1.0, false, mesh, 0)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	if s.value(0) != 0 {
		tst.Errorf("expected zero value before delay, got %v", s.value(0))
		return
	}
	if math.Abs(s.value(2.0e-9)-3.0) > 1e-12 {
		tst.Errorf("expected scale*waveform=3.0 after delay, got %v", s.value(2.0e-9))
		return
	}
}
