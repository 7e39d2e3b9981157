// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sibc

import "math"

// The four fixed 4x4 basis matrices combined by cos/sin of the surface's
// in-plane angle and by its +/-1 orientation to build the pre- and
// post-filter rotation matrices (principal <-> mesh axes).
var (
	acp = [4][4]float64{
		{0, 0, 1, 0},
		{0, 0, 0, -1},
		{-1, 0, 0, 0},
		{0, 1, 0, 0},
	}
	acm = [4][4]float64{
		{0, 0, 0, -1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
	}
	asp = [4][4]float64{
		{-1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -1, 0},
		{0, 0, 0, 1},
	}
	asm = [4][4]float64{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, -1, 0},
	}
	bcp = [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	bcm = [4][4]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
	bsp = [4][4]float64{
		{0, 0, -1, 0},
		{0, 0, 0, -1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	}
	bsm = [4][4]float64{
		{0, 0, 0, -1},
		{0, 0, -1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	}
)

// rotationPair returns the A (pre-filter, mesh->principal) and B
// (post-filter, principal->mesh) matrices for a surface of the given
// orientation (+1/-1) and in-plane angle (degrees).
func rotationPair(orientation int, angleDeg float64) (a, b [4][4]float64) {
	rad := math.Pi * angleDeg / 180.0
	cosa, sina := math.Cos(rad), math.Sin(rad)
	switch orientation {
	case 1:
		a = linComb(cosa, acp, sina, asp)
		b = linComb(cosa, bcp, sina, bsp)
	default:
		a = linComb(cosa, acm, sina, asm)
		b = linComb(cosa, bcm, sina, bsm)
	}
	return
}

func linComb(a float64, A [4][4]float64, b float64, B [4][4]float64) (c [4][4]float64) {
	for p := 0; p < 4; p++ {
		for q := 0; q < 4; q++ {
			c[p][q] = a*A[p][q] + b*B[p][q]
		}
	}
	return
}

func matVec(a [4][4]float64, x [4]float64) (y [4]float64) {
	for p := 0; p < 4; p++ {
		for q := 0; q < 4; q++ {
			y[p] += a[p][q] * x[q]
		}
	}
	return
}
