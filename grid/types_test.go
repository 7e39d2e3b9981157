// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bbox01(tst *testing.T) {

	chk.PrintTitle("bbox01. IsNormal and IsWithin")

	b := NewBBox(0, 9, 0, 9, 0, 9)
	if !b.IsNormal() {
		tst.Errorf("expected bbox to be normal")
		return
	}

	bad := NewBBox(0, 9, 0, 9, 5, 3)
	if bad.IsNormal() {
		tst.Errorf("expected bbox with zlo>zhi to be abnormal")
		return
	}

	inner := NewBBox(1, 8, 1, 8, 1, 8)
	if !inner.IsWithin(b) {
		tst.Errorf("expected inner to lie within b")
		return
	}

	outside := NewBBox(1, 20, 1, 8, 1, 8)
	if outside.IsWithin(b) {
		tst.Errorf("expected outside to not lie within b")
		return
	}
}

func Test_fieldlimits01(tst *testing.T) {

	chk.PrintTitle("fieldlimits01. tangential HI-face inclusion rule")

	bbox := NewBBox(2, 8, 2, 8, 2, 8)

	var none [6]bool
	flimExcl := SetFieldLimits(bbox, none)

	var allHi [6]bool
	allHi[XHI], allHi[YHI], allHi[ZHI] = true, true, true
	flimIncl := SetFieldLimits(bbox, allHi)

	// Ey is tangential to the XHI face: excluded -> bbox[XHI]-1, included -> bbox[XHI]
	if flimExcl[EY][XHI] != bbox[XHI]-1 {
		tst.Errorf("Ey excluded XHI limit wrong: got %d want %d", flimExcl[EY][XHI], bbox[XHI]-1)
		return
	}
	if flimIncl[EY][XHI] != bbox[XHI] {
		tst.Errorf("Ey included XHI limit wrong: got %d want %d", flimIncl[EY][XHI], bbox[XHI])
		return
	}

	// Ex is normal to the XHI face: always bbox[XHI]-1 regardless of the flag.
	if flimExcl[EX][XHI] != bbox[XHI]-1 || flimIncl[EX][XHI] != bbox[XHI]-1 {
		tst.Errorf("Ex (normal) XHI limit should be independent of includeBoundary")
		return
	}

	// Hx is tangential to the XHI/XLO faces (opposite of Ex): excluded -> one
	// cell in from the bbox face on both ends, included -> at the face.
	if flimExcl[HX][XLO] != bbox[XLO]+1 {
		tst.Errorf("Hx excluded XLO limit wrong: got %d want %d", flimExcl[HX][XLO], bbox[XLO]+1)
		return
	}
	if flimExcl[HX][XHI] != bbox[XHI]-1 {
		tst.Errorf("Hx excluded XHI limit wrong: got %d want %d", flimExcl[HX][XHI], bbox[XHI]-1)
		return
	}

	// Hx is normal to the YLO/YHI/ZLO/ZHI faces (opposite of Ex):
	// behaves like a normal E component there, independent of the flag.
	if flimExcl[HX][YLO] != bbox[YLO] || flimIncl[HX][YLO] != bbox[YLO] {
		tst.Errorf("Hx (normal-to-Y) YLO limit should be independent of includeBoundary")
		return
	}
	if flimExcl[HX][YHI] != bbox[YHI]-1 || flimIncl[HX][YHI] != bbox[YHI]-1 {
		tst.Errorf("Hx (normal-to-Y) YHI limit should be independent of includeBoundary")
		return
	}
}

func Test_component01(tst *testing.T) {

	chk.PrintTitle("component01. axis and electric/magnetic classification")

	if !EX.IsElectric() || !EY.IsElectric() || !EZ.IsElectric() {
		tst.Errorf("Ex,Ey,Ez must be electric")
		return
	}
	if HX.IsElectric() || HY.IsElectric() || HZ.IsElectric() {
		tst.Errorf("Hx,Hy,Hz must not be electric")
		return
	}
	if HX.Axis() != XDIR || HY.Axis() != YDIR || HZ.Axis() != ZDIR {
		tst.Errorf("H component axis mapping wrong")
		return
	}
}
