// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pml

import "github.com/cpmech/gofdtd/grid"

// region holds one of the six PML slabs: its face and the E/H field
// limits of the box it owns (after the Z-then-Y-then-X onion partition
// that avoids reprocessing corner and edge cells already owned by an
// outer slab). The cascaded PP (raw medium-weighted curl accumulator)
// and P (first graded convolution stage) auxiliary currents live in PML.
//
// Unlike the original's per-region, box-sized auxiliary arrays, the
// auxiliary currents here are allocated at full outer-grid size and
// only ever written within a region's own box; this trades memory for
// the ability to index auxiliary cells with the exact same (i,j,k) used
// by the main field arrays, removing an entire layer of region-local
// index translation that would otherwise need to be rederived without
// being able to compile or run the result.
type region struct {
	Face grid.Face
	Elim grid.FieldLimits
	Hlim grid.FieldLimits
}

// PML owns the six graded regions, the three axes' loss/stretch
// profiles, and the full-grid auxiliary current arrays shared by every
// region.
type PML struct {
	Boundary [6]bool // true where face f is a PML face
	Profile  [3]*AxisProfile

	regions []region

	PP, P [3]*grid.Field3 // Ex,Ey,Ez auxiliary currents
	B     [3]*grid.Field3 // Hx,Hy,Hz auxiliary currents
}
