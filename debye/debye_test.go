// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debye

import (
	"math"
	"testing"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gosl/chk"
)

func uniformMesh(n int, d float64) grid.AxisMesh {
	lines := make([]float64, n+1)
	for i := range lines {
		lines[i] = float64(i) * d
	}
	return grid.AxisMesh{Lines: lines}
}

func Test_debye01(tst *testing.T) {

	chk.PrintTitle("debye01. pole stability bound")

	stable, err := medium.NewDebye("tissue", 4.0, 0.02, 1.0, []medium.Pole{
		{Pole: complex(-1.0e9, 0), Residue: complex(1.0e9, 0)},
	})
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	stable.Coefficients(1.0e-12)
	if !StabilityOK(stable) {
		tst.Errorf("expected a stable pole to pass StabilityOK")
		return
	}
}

func Test_debye02(tst *testing.T) {

	chk.PrintTitle("debye02. single-cell Jsum-then-correct update order")

	d := 1.0e-3
	mesh := grid.NewMesh(uniformMesh(4, d), uniformMesh(4, d), uniformMesh(4, d))
	dt := d / medium.C0 / math.Sqrt(3) * 0.9

	m, err := medium.NewDebye("tissue", 4.0, 0.0, 1.0, []medium.Pole{
		{Pole: complex(-1.0e8, 0), Residue: complex(1.0e8, 0)},
	})
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	m.Coefficients(dt)

	// A literal single-cell box for every component: SetFieldLimits's
	// tangential/normal face rules assume a real multi-cell region, so
	// for this isolated single-cell check the limits are built directly.
	var flim [3]grid.FieldLimits
	i, j, k := 2, 2, 2
	for c := grid.EX; c <= grid.EZ; c++ {
		flim[c][c][grid.XLO], flim[c][c][grid.XHI] = i, i
		flim[c][c][grid.YLO], flim[c][c][grid.YHI] = j, j
		flim[c][c][grid.ZLO], flim[c][c][grid.ZHI] = k, k
	}

	b, err := NewBlock(m, flim)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}

	g := grid.NewGrid(mesh, grid.Unscaled, grid.Dense)
	g.E[grid.EX].Set(i, j, k, 1.0)
	b.Last[grid.EX].Set(0, 0, 0, 1.0)
	b.J[grid.EX].Set(0, 0, 0, 0, complex(0.1, 0))

	g.Coeffs.(*grid.DenseCoefficients).Beta[grid.EX].Set(i, j, k, m.Beta)

	UpdateE(g, grid.Unscaled, []*Block{b})

	jOld := complex(0.1, 0)
	jsum := (1 + m.DAlpha[0]) * jOld
	wantE := 1.0 - m.Beta*real(jsum)
	gotE := g.E[grid.EX].At(i, j, k)
	if math.Abs(gotE-wantE) > 1e-9*math.Abs(wantE) {
		tst.Errorf("E mismatch: got %v want %v", gotE, wantE)
		return
	}

	wantJ := m.DAlpha[0]*jOld + m.DBeta[0]*complex(gotE-1.0, 0)
	gotJ := b.J[grid.EX].At(0, 0, 0, 0)
	if cmplxAbs(gotJ-wantJ) > 1e-9*cmplxAbs(wantJ) {
		tst.Errorf("pole current mismatch: got %v want %v", gotJ, wantJ)
		return
	}
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
