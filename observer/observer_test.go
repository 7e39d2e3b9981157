// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gosl/chk"
)

func uniformMesh(n int, d float64) *grid.Mesh {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	axis := grid.AxisMesh{Lines: lines}
	return grid.NewMesh(axis, axis, axis)
}

func Test_observer01(tst *testing.T) {

	chk.PrintTitle("observer01. a time-domain EField observer writes and flushes without error")

	mesh := uniformMesh(4, 1.0e-3)
	fname := os.TempDir() + "/gofdtd_observer01.dat"
	w, err := NewASCIIWriter(fname)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	defer os.Remove(fname)

	box := grid.NewBBox(1, 1, 1, 1, 1, 1)
	o, err := NewTimeObserver("probe", box, QuantityEField, mesh, w)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	get := func(c grid.Component, i, j, k int) float64 { return float64(c) }
	o.Update(0, 0, get)
	o.Update(1, 1.0e-12, get)
	if err := o.Flush(); err != nil {
		tst.Errorf("unexpected error on flush: %v", err)
		return
	}
}

func Test_observer02(tst *testing.T) {

	chk.PrintTitle("observer02. a running DFT recovers the amplitude of a pure tone")

	freq := 1.0e9
	dt := 1.0e-12
	d := newRunningDFT([]float64{freq}, dt)
	n := 20000
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		v := math.Sin(2 * math.Pi * freq * t)
		d.accumulate(t, []float64{v})
	}
	mag := math.Hypot(d.real[0], d.imag[0]) / (float64(n) * dt)
	if math.Abs(mag-0.5) > 0.05 {
		tst.Errorf("expected a running DFT magnitude near 0.5 for a unit sine (after 1/T normalisation), got %v", mag)
		return
	}
}

func Test_observer03(tst *testing.T) {

	chk.PrintTitle("observer03. a single-cell bbox has no extended axis for a voltage observer")

	mesh := uniformMesh(4, 1.0e-3)
	box := grid.NewBBox(1, 1, 1, 1, 1, 1) // a single cell: no axis extends
	_, err := newObserver("bad_voltage", box, QuantityVoltage, mesh)
	if err == nil {
		tst.Errorf("expected an error for a single-cell voltage bbox")
		return
	}
}
