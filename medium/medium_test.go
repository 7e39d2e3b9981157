// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package medium

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_medium01(tst *testing.T) {

	chk.PrintTitle("medium01. free space and PEC occupy the fixed index-0/index-1 slots")

	t := NewTable()
	if idx, ok := t.Index("free_space"); !ok || idx != IdxFreeSpace {
		tst.Errorf("expected free_space at index %v, got %v ok=%v", IdxFreeSpace, idx, ok)
		return
	}
	if idx, ok := t.Index("pec"); !ok || idx != IdxPEC {
		tst.Errorf("expected pec at index %v, got %v ok=%v", IdxPEC, idx, ok)
		return
	}
}

func Test_medium02(tst *testing.T) {

	chk.PrintTitle("medium02. a duplicate medium name is rejected")

	t := NewTable()
	if _, err := t.Add(NewSimple("glass", 4.0, 0, 1)); err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	if _, err := t.Add(NewSimple("glass", 2.0, 0, 1)); err == nil {
		tst.Errorf("expected an error for a duplicate medium name")
		return
	}
}

func Test_medium03(tst *testing.T) {

	chk.PrintTitle("medium03. a Debye pole with Re(pole) > 0 is rejected as unstable")

	_, err := NewDebye("bad", 2.0, 0, 1, []Pole{{Pole: complex(1.0, 0), Residue: complex(1.0, 0)}})
	if err == nil {
		tst.Errorf("expected an error for an unstable pole")
		return
	}
}

func Test_medium04(tst *testing.T) {

	chk.PrintTitle("medium04. InitCoefficients re-forces the free-space/PEC invariants")

	t := NewTable()
	dt := 1.0e-12
	t.Media[IdxFreeSpace].Sigma = 1.0e9 // simulate accidental corruption
	t.InitCoefficients(dt)

	fs := t.Get(IdxFreeSpace)
	if math.Abs(fs.Alpha-1.0) > 1e-15 {
		tst.Errorf("expected free-space alpha=1, got %v", fs.Alpha)
		return
	}
	pec := t.Get(IdxPEC)
	if pec.Alpha != -1.0 || pec.Beta != 0.0 {
		tst.Errorf("expected pec alpha=-1, beta=0, got alpha=%v beta=%v", pec.Alpha, pec.Beta)
		return
	}
}

func Test_medium05(tst *testing.T) {

	chk.PrintTitle("medium05. a lossy Simple medium's alpha decays below the lossless value")

	lossless := NewSimple("clean", 2.0, 0, 1)
	lossless.Coefficients(1.0e-12)

	lossy := NewSimple("dirty", 2.0, 1.0, 1)
	lossy.Coefficients(1.0e-12)

	if lossy.Alpha >= lossless.Alpha {
		tst.Errorf("expected conductivity to reduce alpha below the lossless case: lossy=%v lossless=%v", lossy.Alpha, lossless.Alpha)
		return
	}
}
