// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the structured Yee lattice: mesh-line
// coordinates and derived edge-length arrays, flat-buffer field and
// auxiliary storage, dense/indexed update-coefficient strategies,
// field-limit-box derivation, the canonical electric/magnetic update,
// and ghost-cell fill (PEC/PMC/periodic).
package grid

// Axis is one of the three coordinate directions.
type Axis int

const (
	XDIR Axis = iota
	YDIR
	ZDIR
)

// Face names a face of a bounding box. Order and values are significant:
// callers index six-element face arrays with these constants, and
// BBox.IsNormal below depends on the XLO/XHI/YLO/YHI/ZLO/ZHI ordering.
type Face int

const (
	XLO Face = iota
	XHI
	YLO
	YHI
	ZLO
	ZHI
)

// Axis returns the coordinate axis a face lies normal to.
func (f Face) Axis() Axis { return Axis(int(f) / 2) }

// IsLo returns true for XLO/YLO/ZLO.
func (f Face) IsLo() bool { return int(f)%2 == 0 }

// Component names a Yee field component. Order and values are
// significant (mirrors the other the pack and matches the bounding-box
// tangential/normal rules below).
type Component int

const (
	EX Component = iota
	EY
	EZ
	HX
	HY
	HZ
)

// IsElectric reports whether c is one of Ex,Ey,Ez.
func (c Component) IsElectric() bool { return c <= EZ }

// Axis returns the coordinate axis a component points along.
func (c Component) Axis() Axis {
	if c.IsElectric() {
		return Axis(int(c))
	}
	return Axis(int(c) - 3)
}

// BBox is an integer cell-index bounding box [lo,hi] inclusive on each axis.
type BBox [6]int

func NewBBox(xlo, xhi, ylo, yhi, zlo, zhi int) BBox {
	return BBox{xlo, xhi, ylo, yhi, zlo, zhi}
}

// IsNormal reports whether lo <= hi on every axis. The intended
// predicate per spec.md §9's open question (the original source checks
// ZLO<=ZLO on the Z axis; that is treated as a transcription slip and
// the intended ZLO<=ZHI form is implemented here).
func (b BBox) IsNormal() bool {
	return b[XLO] <= b[XHI] && b[YLO] <= b[YHI] && b[ZLO] <= b[ZHI]
}

// IsWithin reports whether b lies within outer (both assumed normal).
func (b BBox) IsWithin(outer BBox) bool {
	return b[XLO] >= outer[XLO] && b[XHI] <= outer[XHI] &&
		b[YLO] >= outer[YLO] && b[YHI] <= outer[YHI] &&
		b[ZLO] >= outer[ZLO] && b[ZHI] <= outer[ZHI]
}

// fieldIsTangentialToFace reports whether component c lies within the
// plane of face f (as opposed to being normal/perpendicular to it), per
// bounding_box.c's fieldIsInBoundary: an E component is in-plane on a
// face whose axis differs from its own (Ex is tangential to Ylo/Yhi/
// Zlo/Zhi, normal to Xlo/Xhi), but the Yee half-cell offset between E
// and H flips this for H: an H component is in-plane on the faces
// sharing its axis and normal on the other four (Hx is tangential to
// Xlo/Xhi, normal to Ylo/Yhi/Zlo/Zhi).
func fieldIsTangentialToFace(c Component, f Face) bool {
	if c.IsElectric() {
		return c.Axis() != f.Axis()
	}
	return c.Axis() == f.Axis()
}

// FieldLimits is a per-component, per-face index limit table, as derived
// by SetFieldLimits.
type FieldLimits [6][6]int // [Component][Face]

// SetFieldLimits derives, for a cell bbox and six per-face
// include-boundary flags, the index range over which each field
// component is actually sampled (spec.md §4.1). The HI-face tangential
// branch follows the original vulture grid.c setFieldLimits exactly:
// included -> bbox face, excluded -> bbox face - 1 (the distilled
// spec's prose duplicates the "excluded" case for both branches, which
// does not match the source and is not implemented literally; see
// DESIGN.md).
func SetFieldLimits(bbox BBox, includeBoundary [6]bool) (flim FieldLimits) {
	for c := EX; c <= HZ; c++ {
		for f := XLO; f <= ZHI; f++ {
			tangential := fieldIsTangentialToFace(c, f)
			if f.IsLo() {
				switch {
				case tangential && includeBoundary[f]:
					flim[c][f] = bbox[f]
				case tangential && !includeBoundary[f]:
					flim[c][f] = bbox[f] + 1
				default: // normal component
					flim[c][f] = bbox[f]
				}
			} else {
				switch {
				case tangential && includeBoundary[f]:
					flim[c][f] = bbox[f]
				case tangential && !includeBoundary[f]:
					flim[c][f] = bbox[f] - 1
				default: // normal component
					flim[c][f] = bbox[f] - 1
				}
			}
		}
	}
	return
}

// Lo returns the per-axis lower limit of component c's field-limit box.
func (flim FieldLimits) Lo(c Component) (i, j, k int) {
	return flim[c][XLO], flim[c][YLO], flim[c][ZLO]
}

// Hi returns the per-axis upper (inclusive) limit of component c's box.
func (flim FieldLimits) Hi(c Component) (i, j, k int) {
	return flim[c][XHI], flim[c][YHI], flim[c][ZHI]
}
