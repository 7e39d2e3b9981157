// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/chk"

// AxisMesh holds one axis's non-uniform mesh-line coordinates and the
// number of PML layers on each of its two faces.
type AxisMesh struct {
	Lines    []float64 // inner-grid node coordinates, length NInner+1, strictly increasing
	PMLLo    int        // PML layer count on the lo face (0 = no PML there)
	PMLHi    int        // PML layer count on the hi face
}

func (a AxisMesh) NInner() int { return len(a.Lines) - 1 }

// Mesh owns the three AxisMesh records and the derived edge-length
// arrays and box extents for the whole grid, following the gibox/gobox/
// ggbox nesting of spec.md §3. All absolute cell indices in this package
// are in "ghost" coordinates: index 0 is the lowest ghost cell.
type Mesh struct {
	Axes [3]AxisMesh

	// per-axis primary/secondary edge-length arrays and reciprocals,
	// spanning the full ghost-grid extent on that axis.
	De  [3][]float64 // primary (cell-width) edges: dex, dey, dez
	Dh  [3][]float64 // secondary (half-cell) edges: dhx, dhy, dhz
	IDe [3][]float64
	IDh [3][]float64

	GIBox BBox // inner grid
	GOBox BBox // inner + PML
	GGBox BBox // outer + 1-cell ghost layer
}

// NewMesh builds a Mesh from three axis descriptions.
func NewMesh(x, y, z AxisMesh) *Mesh {
	m := &Mesh{Axes: [3]AxisMesh{x, y, z}}
	for axis := 0; axis < 3; axis++ {
		m.buildAxis(Axis(axis))
	}
	return m
}

// buildAxis derives the box extents and edge-length arrays for one axis,
// following vulture's grid.c dex/dhx construction (lines ~590-670 of
// the original source): inner cell widths from the mesh lines, the PML
// region widths held constant at the boundary inner-cell width, and a
// one-cell ghost extension at each end equal to its neighbour.
func (m *Mesh) buildAxis(axis Axis) {
	a := m.Axes[axis]
	n := a.NInner()
	if n < 1 {
		chk.Panic("mesh axis %d must have at least one inner cell", axis)
	}

	giLo := 1 + a.PMLLo
	giHi := giLo + n - 1
	goLo := 1
	goHi := giHi + a.PMLHi
	ggLo := 0
	ggHi := goHi + 1

	m.GIBox[2*int(axis)], m.GIBox[2*int(axis)+1] = giLo, giHi
	m.GOBox[2*int(axis)], m.GOBox[2*int(axis)+1] = goLo, goHi
	m.GGBox[2*int(axis)], m.GGBox[2*int(axis)+1] = ggLo, ggHi

	size := ggHi - ggLo + 1
	de := make([]float64, size)
	for i := giLo; i <= giHi; i++ {
		de[i] = a.Lines[i-giLo+1] - a.Lines[i-giLo]
	}
	for i := goLo; i < giLo; i++ {
		de[i] = de[giLo]
	}
	for i := giHi + 1; i <= goHi; i++ {
		de[i] = de[giHi]
	}
	de[ggLo] = de[goLo]
	if ggHi < size {
		de[ggHi] = de[goHi]
	}

	dh := make([]float64, size)
	for i := ggLo + 1; i <= ggHi; i++ {
		dh[i] = 0.5 * (de[i] + de[i-1])
	}
	dh[ggLo] = dh[ggLo+1]

	ide := make([]float64, size)
	idh := make([]float64, size)
	for i := range de {
		if de[i] != 0 {
			ide[i] = 1.0 / de[i]
		}
		if dh[i] != 0 {
			idh[i] = 1.0 / dh[i]
		}
	}

	m.De[axis], m.Dh[axis] = de, dh
	m.IDe[axis], m.IDh[axis] = ide, idh
}

// MinEdge returns the smallest primary edge length on an axis, restricted
// to the inner grid (used for the Courant-limit dt computation).
func (m *Mesh) MinEdge(axis Axis) float64 {
	lo, hi := m.GIBox[2*int(axis)], m.GIBox[2*int(axis)+1]
	min := m.De[axis][lo]
	for i := lo + 1; i <= hi; i++ {
		if m.De[axis][i] < min {
			min = m.De[axis][i]
		}
	}
	return min
}
