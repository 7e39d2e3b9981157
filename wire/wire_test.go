// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
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

func Test_wire01(tst *testing.T) {

	chk.PrintTitle("wire01. a thin wire boosts the local permittivity above free space")

	mesh := uniformMesh(8, 1.0e-3)
	box := grid.BBox{1, 4, 2, 2, 2, 2} // runs along x
	w, err := NewWire(mesh, "feed", box, 1.0e-5, EndOpen, EndShorted, 1.0e-12)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	if w.Medium().EpsR <= 0 {
		tst.Errorf("expected a positive excess permittivity, got %v", w.Medium().EpsR)
		return
	}
}

func Test_wire02(tst *testing.T) {

	chk.PrintTitle("wire02. a wire bbox spanning two axes is rejected")

	mesh := uniformMesh(8, 1.0e-3)
	box := grid.BBox{1, 4, 1, 4, 2, 2}
	_, err := NewWire(mesh, "bad", box, 1.0e-5, EndOpen, EndOpen, 1.0e-12)
	if err == nil {
		tst.Errorf("expected an error for a non-collinear bbox")
		return
	}
}

func Test_wire03(tst *testing.T) {

	chk.PrintTitle("wire03. a radius too large for its cell is rejected")

	mesh := uniformMesh(8, 1.0e-3)
	box := grid.BBox{1, 4, 2, 2, 2, 2}
	_, err := NewWire(mesh, "fat", box, 1.0, EndOpen, EndOpen, 1.0e-12)
	if err == nil {
		tst.Errorf("expected an error for an oversized wire radius")
		return
	}
}
