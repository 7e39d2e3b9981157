// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source implements field injection into the grid: every
// variant listed in spec.md §4.8 is lowered at init to one of two
// canonical forms, an E-field injection with a scale factor or a
// current-density injection applied through the ordinary alpha/beta
// update.
package source

import (
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gofdtd/waveform"
	"github.com/cpmech/gosl/chk"
)

// Kind is the tagged-union selector for a source record, per spec.md
// §4.8 and §6's source variant list.
type Kind int

const (
	KindEfield Kind = iota
	KindSurfaceCurrent
	KindCurrent
	KindCurrentMoment
	KindVoltage
)

// Form is the canonical representation a Kind is lowered to at init.
type Form int

const (
	FormEfield Form = iota // E <- scale*waveform(t)  (soft: added; hard: replaces)
	FormCurrent             // E <- alpha*E - beta*J,  J = scale*waveform(t)
)

// Source is one injection record, lowered to its canonical form and
// bbox-precomputed geometric scale factor at init.
type Source struct {
	Kind      Kind
	Form      Form
	Component grid.Component
	Box       grid.BBox
	Waveform  waveform.Model
	Delay     float64
	Amplitude float64
	Hard      bool
	Resistance float64 // KindVoltage only; 0 maps to PEC (documented, not an error)

	scale float64 // precomputed geometric factor (length/area/1), sign folded in
}

// NewSource builds a source, precomputing its geometric scale factor
// from the mesh's edge-length arrays at init (spec.md §4.8): current,
// current-moment and voltage sources take a length or area factor; a
// plain E-field source and a surface-current source use their amplitude
// with no geometric factor.
func NewSource(kind Kind, c grid.Component, box grid.BBox, wf waveform.Model, delay, amplitude float64, hard bool, mesh *grid.Mesh, resistance float64) (*Source, error) {
	s := &Source{Kind: kind, Component: c, Box: box, Waveform: wf, Delay: delay, Amplitude: amplitude, Hard: hard, Resistance: resistance}
	switch kind {
	case KindEfield:
		s.Form = FormEfield
		s.scale = amplitude
	case KindSurfaceCurrent:
		s.Form = FormCurrent
		s.scale = amplitude // no geometric factor is applied
	case KindCurrent:
		s.Form = FormCurrent
		area, err := transverseArea(mesh, c, box)
		if err != nil {
			return nil, err
		}
		if area == 0 {
			return nil, chk.Err("source: degenerate bbox gives zero cross-sectional area")
		}
		s.scale = amplitude / area
	case KindCurrentMoment:
		s.Form = FormCurrent
		length := edgeLength(mesh, c, box)
		area, err := transverseArea(mesh, c, box)
		if err != nil {
			return nil, err
		}
		if length == 0 || area == 0 {
			return nil, chk.Err("source: degenerate bbox gives zero length or area")
		}
		s.scale = amplitude / (length * area)
	case KindVoltage:
		s.Form = FormEfield
		length := edgeLength(mesh, c, box)
		if length == 0 {
			return nil, chk.Err("source: voltage source bbox has zero extent along %d", c)
		}
		s.scale = amplitude / length
	default:
		return nil, chk.Err("source: unknown kind %d", kind)
	}
	return s, nil
}

// edgeLength sums the primary edge lengths of component c's own axis
// across box, giving the physical length of the injected edge run.
func edgeLength(mesh *grid.Mesh, c grid.Component, box grid.BBox) float64 {
	axis := c.Axis()
	lo, hi := box[2*int(axis)], box[2*int(axis)+1]
	total := 0.0
	for i := lo; i <= hi; i++ {
		total += mesh.De[axis][i]
	}
	return total
}

// transverseArea returns the cross-sectional area normal to component
// c's axis, the product of the other two axes' edge-length sums over
// box.
func transverseArea(mesh *grid.Mesh, c grid.Component, box grid.BBox) (float64, error) {
	axis := int(c.Axis())
	area := 1.0
	for a := 0; a < 3; a++ {
		if a == axis {
			continue
		}
		lo, hi := box[2*a], box[2*a+1]
		sum := 0.0
		for i := lo; i <= hi; i++ {
			sum += mesh.De[grid.Axis(a)][i]
		}
		area *= sum
	}
	return area, nil
}

// PaintVoltageMedium allocates and paints a private simple-conductivity
// medium for a resistive voltage source, per spec.md §4.8. A zero
// resistance maps to the PEC medium instead (documented, not an error).
func (s *Source) PaintVoltageMedium(mesh *grid.Mesh, dc *grid.DenseCoefficients, scaling grid.Scaling, dt float64) error {
	if s.Kind != KindVoltage {
		return nil
	}
	flim := grid.SetFieldLimits(s.Box, [6]bool{true, true, true, true, true, true})
	if s.Resistance == 0 {
		grid.PaintMedium(dc, mesh, scaling, s.Component, flim, medium.NewPEC())
		return nil
	}
	length := edgeLength(mesh, s.Component, s.Box)
	area, err := transverseArea(mesh, s.Component, s.Box)
	if err != nil {
		return err
	}
	if area == 0 {
		return chk.Err("source: voltage source bbox has zero transverse area")
	}
	sigma := length / (s.Resistance * area)
	m := medium.NewSimple("voltage_source_medium", 1.0, sigma, 1.0)
	m.Coefficients(dt)
	grid.PaintMedium(dc, mesh, scaling, s.Component, flim, m)
	return nil
}

// value returns the source's scaled waveform value at time t, 0 before
// the delay.
func (s *Source) value(t float64) float64 {
	if t < s.Delay {
		return 0
	}
	return s.scale * s.Waveform.Value(t-s.Delay)
}

// Update injects the source's contribution at time t, per spec.md
// §4.8: soft sources add (sigma=1), hard sources replace (sigma=0). It
// handles both electric and magnetic field components uniformly; the
// caller (package engine) is responsible for invoking it only during
// the matching sub-phase (updateSourcesE at t_E for electric-component
// sources, updateSourcesH at t_H for magnetic-component ones), since
// the two families of Kind never mix components.
func (s *Source) Update(g *grid.Grid, t float64) {
	flim := grid.SetFieldLimits(s.Box, [6]bool{true, true, true, true, true, true})
	ilo, jlo, klo := flim.Lo(s.Component)
	ihi, jhi, khi := flim.Hi(s.Component)
	v := s.value(t)
	electric := s.Component.IsElectric()

	var f *grid.Field3
	if electric {
		f = g.E[s.Component]
	} else {
		f = g.H[s.Component-grid.HX]
	}

	sigma := 1.0
	if s.Hard {
		sigma = 0.0
	}

	for i := ilo; i <= ihi; i++ {
		for j := jlo; j <= jhi; j++ {
			for k := klo; k <= khi; k++ {
				switch s.Form {
				case FormEfield:
					f.Set(i, j, k, sigma*f.At(i, j, k)+v)
				case FormCurrent:
					old := sigma * f.At(i, j, k)
					if electric {
						alpha := g.Coeffs.AlphaE(s.Component, i, j, k)
						beta := g.Coeffs.BetaE(s.Component, i, j, k)
						if !s.Hard {
							old = alpha * f.At(i, j, k)
						}
						f.Set(i, j, k, old-beta*v)
					} else {
						gamma := g.Coeffs.GammaH(s.Component, i, j, k)
						f.Set(i, j, k, old-gamma*v)
					}
				}
			}
		}
	}
}
