// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_profile01(tst *testing.T) {

	chk.PrintTitle("profile01. sigma/kappa grading vanishes at the inner boundary")

	s := sigmaProfile(0.0, 1.0e-2, 1.0e-3, 3, 1.0, 1.0e-6)
	if s != 0.0 {
		tst.Errorf("sigma profile should vanish at x=0, got %v", s)
		return
	}

	k := kappaProfile(0.0, 3, 4.0)
	if k != 1.0 {
		tst.Errorf("kappa profile should be 1 at x=0, got %v", k)
		return
	}

	kMax := kappaProfile(1.0, 3, 4.0)
	if kMax != 4.0 {
		tst.Errorf("kappa profile should reach kappaMax at x=1, got %v", kMax)
		return
	}
}

func Test_profile02(tst *testing.T) {

	chk.PrintTitle("profile02. identity profile leaves fields unattenuated")

	p := newIdentityProfile(0, 9)
	for i := range p.AD {
		if p.AD[i] != 1.0 || p.BD[i] != 1.0 || p.AH[i] != 1.0 || p.BH[i] != 1.0 {
			tst.Errorf("identity profile must be all-ones, index %d", i)
			return
		}
	}
}
