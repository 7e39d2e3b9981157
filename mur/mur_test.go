// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mur

import (
	"math"
	"testing"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gosl/chk"
)

func uniformMesh(n int, d float64) grid.AxisMesh {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	return grid.AxisMesh{Lines: lines}
}

func Test_mur01(tst *testing.T) {

	chk.PrintTitle("mur01. zeta stays small at the 3-D Courant limit")

	d := 1.0e-3
	mesh := grid.NewMesh(uniformMesh(10, d), uniformMesh(10, d), uniformMesh(10, d))
	dtCourant := d / 299792458.0 / math.Sqrt(3)

	boundary := [6]bool{true, true, true, true, true, true}
	m := NewMur(mesh, boundary, dtCourant)

	if math.Abs(m.Zeta[grid.XLO]) > 0.3 {
		tst.Errorf("zeta should be small near the 3-D Courant limit, got %v", m.Zeta[grid.XLO])
		return
	}
}

func Test_mur02(tst *testing.T) {

	chk.PrintTitle("mur02. Mur-Mur shared edges are excluded from both faces")

	boundary := [6]bool{true, true, true, true, true, true}
	include := excludeMurMurEdges(boundary, grid.XLO)
	if include[grid.YLO] || include[grid.YHI] || include[grid.ZLO] || include[grid.ZHI] {
		tst.Errorf("adjacent Mur faces must be excluded from XLO's own field limits")
		return
	}
	if !include[grid.XLO] || !include[grid.XHI] {
		tst.Errorf("the face's own normal-axis flags must stay included")
		return
	}
}
