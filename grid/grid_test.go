// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"

	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gosl/chk"
)

func uniformMesh(n int, d float64) AxisMesh {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	return AxisMesh{Lines: lines}
}

func Test_grid01(tst *testing.T) {

	chk.PrintTitle("grid01. uniform free-space cube energy stays bounded")

	d := 1.0e-3
	n := 10
	mesh := NewMesh(uniformMesh(n, d), uniformMesh(n, d), uniformMesh(n, d))
	g := NewGrid(mesh, Scaled, Dense)

	dt := 0.5 * d / 299792458.0 / math.Sqrt(3) // below Courant limit

	dense := g.Coeffs.(*DenseCoefficients)
	fs := medium.NewFreeSpace()
	fs.Coefficients(dt)
	for c := EX; c <= EZ; c++ {
		PaintMedium(dense, mesh, Scaled, c, g.OuterLimits, fs)
	}
	for c := HX; c <= HZ; c++ {
		PaintMedium(dense, mesh, Scaled, c, g.OuterLimits, fs)
	}

	// seed a small Ez pulse at the centre and step a few times; with no
	// loss and no injected energy after t=0 the stored energy must not
	// grow.
	cx, cy, cz := n/2, n/2, n/2
	g.E[2].Set(cx, cy, cz, 1.0)
	e0 := g.Energy()

	boundary := Boundary{BoundaryPEC, BoundaryPEC, BoundaryPEC, BoundaryPEC, BoundaryPEC, BoundaryPEC}
	for step := 0; step < 5; step++ {
		g.FillGhostH(boundary)
		g.UpdateH(g.OuterLimits)
		g.FillGhostE(boundary)
		g.UpdateE(g.OuterLimits)
	}
	e1 := g.Energy()

	if e1 > 1.1*e0 {
		tst.Errorf("energy grew unexpectedly: e0=%v e1=%v", e0, e1)
		return
	}
}

func Test_ghost01(tst *testing.T) {

	chk.PrintTitle("ghost01. PMC ghost fill negates the tangential field")

	mesh := NewMesh(uniformMesh(4, 1.0), uniformMesh(4, 1.0), uniformMesh(4, 1.0))
	g := NewGrid(mesh, Scaled, Dense)

	ob := mesh.GOBox
	g.E[1].Set(ob[XLO], 2, 2, 7.0) // Ey at the low-x boundary plane

	b := Boundary{}
	for f := XLO; f <= ZHI; f++ {
		b[f] = BoundaryPMC
	}
	g.FillGhostE(b)

	gb := mesh.GGBox
	got := g.E[1].At(gb[XLO], 2, 2)
	if got != -7.0 {
		tst.Errorf("PMC ghost fill wrong: got %v want -7", got)
		return
	}
}

func Test_ghost02(tst *testing.T) {

	chk.PrintTitle("ghost02. periodic pairing validation")

	b := Boundary{BoundaryPeriodic, BoundaryPEC, BoundaryPEC, BoundaryPEC, BoundaryPEC, BoundaryPEC}
	if err := CheckPeriodicPairing(b); err == nil {
		tst.Errorf("expected an error for an unpaired periodic face")
		return
	}

	b[XHI] = BoundaryPeriodic
	if err := CheckPeriodicPairing(b); err != nil {
		tst.Errorf("expected no error once both faces are periodic:\n%v", err)
		return
	}
}
