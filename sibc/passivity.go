// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sibc

import "github.com/cpmech/gosl/chk"

const eta0 = 376.730313668 // free-space wave impedance [ohm]

// IsPassive checks the elementwise I - S^H*S >= 0 condition for a real
// 2x2 scattering matrix (spec.md §4.6's passivity gate).
func IsPassive(s [2][2]float64) bool {
	e00 := 1-(s[0][0]*s[0][0]+s[1][0]*s[1][0]) >= 0.0
	e01 := -(s[0][0]*s[0][1] + s[1][0]*s[1][1]) >= 0.0
	e10 := -(s[0][1]*s[0][0] + s[1][1]*s[1][0]) >= 0.0
	e11 := 1-(s[0][1]*s[0][1]+s[1][1]*s[1][1]) >= 0.0
	return e00 && e01 && e10 && e11
}

// scatteringToImpedance converts a 2-port scattering matrix referenced
// to the free-space impedance into its equivalent impedance matrix.
func scatteringToImpedance(s [2][2]float64) (z [2][2]float64) {
	delta := (1-s[0][0])*(1-s[1][1]) - s[0][1]*s[1][0]
	z[0][0] = ((1+s[0][0])*(1-s[1][1]) + s[0][1]*s[1][0]) / delta * eta0
	z[0][1] = 2.0 * s[0][1] * eta0 / delta
	z[1][0] = 2.0 * s[1][0] * eta0 / delta
	z[1][1] = ((1-s[0][0])*(1+s[1][1]) + s[0][1]*s[1][0]) / delta * eta0
	return
}

// NewFromScattering builds a surface transfer matrix from an isotropic
// 2x2 scattering matrix per polarisation (TM, TE), embedding each as a
// zero-pole (purely resistive) impedance in the block-diagonal 4x4
// form: rows/cols 0-1 carry the TM impedance, 2-3 carry TE.
func NewFromScattering(sTM, sTE [2][2]float64, dt float64) (*Matrix, error) {
	if !IsPassive(sTM) {
		return nil, chk.Err("sibc: TM scattering matrix is not passive")
	}
	if !IsPassive(sTE) {
		return nil, chk.Err("sibc: TE scattering matrix is not passive")
	}
	zTM := scatteringToImpedance(sTM)
	zTE := scatteringToImpedance(sTE)

	asymp := make([][]float64, 4)
	poles := make([][][]Pole, 4)
	for i := range asymp {
		asymp[i] = make([]float64, 4)
		poles[i] = make([][]Pole, 4)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			asymp[i][j] = zTM[i][j]
			asymp[i+2][j+2] = zTE[i][j]
		}
	}
	return NewMatrix(4, 4, asymp, poles, dt)
}
