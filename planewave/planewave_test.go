// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planewave

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_planewave01(tst *testing.T) {

	chk.PrintTitle("planewave01. incidence triad is orthonormal")

	inc := newIncidence(math.Pi/3, math.Pi/4, 0.3)
	if math.Abs(inc.K.dot(inc.K)-1) > 1e-9 {
		tst.Errorf("k-hat should be unit length, got %v", inc.K.dot(inc.K))
		return
	}
	if math.Abs(inc.K.dot(inc.E)) > 1e-9 {
		tst.Errorf("k-hat and e-hat should be orthogonal, got dot=%v", inc.K.dot(inc.E))
		return
	}
	if math.Abs(inc.H.dot(inc.H)-1) > 1e-9 {
		tst.Errorf("h-hat should be unit length, got %v", inc.H.dot(inc.H))
		return
	}
}

func Test_planewave02(tst *testing.T) {

	chk.PrintTitle("planewave02. numerical dispersion solve reduces to near c0 for a coarse time step")

	d := 1.0e-3
	dt := 0.99 * d / (math.Sqrt(3) * 299792458.0)
	vph := numericalPhaseVelocity(0, 0, d, d, d, dt, 299792458.0)
	if math.Abs(vph-299792458.0)/299792458.0 > 0.05 {
		tst.Errorf("expected v_ph within 5%% of c0 at a near-Courant-limit step, got %v", vph)
		return
	}
}

func Test_planewave03(tst *testing.T) {

	chk.PrintTitle("planewave03. k-hat points along +x at theta=pi/2, phi=0")

	inc := newIncidence(math.Pi/2, 0, 0) // k-hat = +x
	if math.Abs(inc.K[0]-1) > 1e-9 {
		tst.Errorf("expected k-hat=+x for theta=pi/2,phi=0, got %v", inc.K)
		return
	}
}
