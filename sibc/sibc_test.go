// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sibc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sibc01(tst *testing.T) {

	chk.PrintTitle("sibc01. passivity gate rejects a non-passive scattering matrix")

	s := [2][2]float64{{2.0, 0}, {0, 0.5}}
	if IsPassive(s) {
		tst.Errorf("expected a reflection coefficient > 1 to fail the passivity gate")
		return
	}
}

func Test_sibc02(tst *testing.T) {

	chk.PrintTitle("sibc02. matched (S=0) scattering matrix round-trips through Z and stays passive")

	matched := [2][2]float64{{0, 0}, {0, 0}}
	if !IsPassive(matched) {
		tst.Errorf("zero scattering matrix (perfect match) must be passive")
		return
	}
	mat, err := NewFromScattering(matched, matched, 1e-12)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	z := scatteringToImpedance(matched)
	if math.Abs(z[0][0]-eta0) > 1e-6 {
		tst.Errorf("S=0 should map to Z=eta0, got %v", z[0][0])
		return
	}
	// a zero-pole element's Step just returns asymp*x regardless of state.
	st := mat.NewMatrixState()
	y := mat.Apply(st, []float64{1, 0, 0, 0})
	if math.Abs(y[0]-eta0) > 1e-6 {
		tst.Errorf("expected row 0 output eta0 for unit x0 input, got %v", y[0])
		return
	}
}

func Test_sibc03(tst *testing.T) {

	chk.PrintTitle("sibc03. single-pole recursive-convolution coefficients are finite and q0 does not amplify")

	dt := 1.0e-12
	p := Pole{Pole: complex(-1.0e9, 0), Residue: complex(1.0e9, 0)}
	c := newRCCoeff(p, dt)
	if math.IsNaN(real(c.q0)) || math.IsNaN(real(c.q1)) || math.IsNaN(real(c.q2)) {
		tst.Errorf("recursive-convolution coefficients must be finite")
		return
	}
	if math.Abs(real(c.q0)) > 1.0+1e-9 {
		tst.Errorf("a stable pole's q0 should not amplify the filter state, got %v", c.q0)
		return
	}
}
