// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package waveform implements the time-domain waveform models used to
// drive sources and plane waves: gaussian, differentiated gaussian,
// ricker, modulated gaussian, compact, modulated-compact, ramped
// sinusoid and external-file (natural cubic spline) variants.
package waveform

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface implemented by every waveform variant.
type Model interface {
	Init(dt float64, prms fun.Prms) error // initialises with the grid's nominal time step and named parameters
	GetPrms(example bool) fun.Prms        // gets (an example of) parameters
	Value(t float64) float64              // evaluates the waveform at time t (already delay-shifted by the caller)
}

// New allocates a new waveform model by name.
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("waveform model %q is not available in waveform database", name)
	}
	return allocator(), nil
}

// allocators holds all available waveform models.
var allocators = map[string]func() Model{
	"gaussian":          func() Model { return new(Gaussian) },
	"diffgaussian":      func() Model { return new(DiffGaussian) },
	"ricker":            func() Model { return new(Ricker) },
	"modgaussian":       func() Model { return new(ModGaussian) },
	"compact":           func() Model { return new(Compact) },
	"diffcompact":       func() Model { return new(DiffCompact) },
	"modcompact":        func() Model { return new(ModCompact) },
	"rampedsinusoid":    func() Model { return new(RampedSinusoid) },
	"external":          func() Model { return new(External) },
}

// common holds fields shared by every non-external waveform.
type common struct {
	Size      float64 // amplitude [-]
	Width     float64 // width [s]
	Frequency float64 // frequency for sinusoidal variants [Hz]
}

func (o *common) defaults(example bool, width, freq float64) {
	if o.Size <= 0 || example {
		o.Size = 1.0
	}
	if o.Width <= 0 || example {
		o.Width = width
	}
	if o.Frequency <= 0 || example {
		o.Frequency = freq
	}
}

// Gaussian implements the classical Gaussian pulse: exp(-0.5*(t/w)^2).
type Gaussian struct{ common }

func (o *Gaussian) Init(dt float64, prms fun.Prms) (err error) {
	o.common.defaults(false, 5.0*math.Sqrt2*dt, 0)
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "width":
			o.Width = p.V
		}
	}
	return
}

func (o *Gaussian) GetPrms(example bool) fun.Prms {
	o.common.defaults(example, 5.0*math.Sqrt2, 0)
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}, &fun.Prm{N: "width", V: o.Width}}
}

func (o *Gaussian) Value(t float64) float64 {
	x := t / o.Width
	return o.Size * math.Exp(-0.5*x*x)
}

// DiffGaussian implements the first time-derivative of the Gaussian pulse.
type DiffGaussian struct{ common }

func (o *DiffGaussian) Init(dt float64, prms fun.Prms) (err error) {
	o.common.defaults(false, 5.0*math.Sqrt2*dt, 0)
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "width":
			o.Width = p.V
		}
	}
	return
}

func (o *DiffGaussian) GetPrms(example bool) fun.Prms {
	o.common.defaults(example, 5.0*math.Sqrt2, 0)
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}, &fun.Prm{N: "width", V: o.Width}}
}

func (o *DiffGaussian) Value(t float64) float64 {
	x := t / o.Width
	return o.Size * (-x) * math.Exp(-0.5*x*x)
}

// Ricker implements the Ricker wavelet: the second time-derivative of the
// Gaussian pulse, also known as the "Mexican hat" wavelet.
type Ricker struct{ common }

func (o *Ricker) Init(dt float64, prms fun.Prms) (err error) {
	o.common.defaults(false, 5.0*math.Sqrt2*dt, 0)
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "width":
			o.Width = p.V
		}
	}
	return
}

func (o *Ricker) GetPrms(example bool) fun.Prms {
	o.common.defaults(example, 5.0*math.Sqrt2, 0)
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}, &fun.Prm{N: "width", V: o.Width}}
}

func (o *Ricker) Value(t float64) float64 {
	x := t / o.Width
	return o.Size * (1.0 - x*x) * math.Exp(-0.5*x*x)
}

// ModGaussian implements a Gaussian-enveloped sinusoid.
type ModGaussian struct{ common }

func (o *ModGaussian) Init(dt float64, prms fun.Prms) (err error) {
	o.common.defaults(false, 20.0*math.Sqrt2*dt, 0.05/dt)
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "width":
			o.Width = p.V
		case "frequency":
			o.Frequency = p.V
		}
	}
	return
}

func (o *ModGaussian) GetPrms(example bool) fun.Prms {
	o.common.defaults(example, 20.0*math.Sqrt2, 0.05)
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}, &fun.Prm{N: "width", V: o.Width}, &fun.Prm{N: "frequency", V: o.Frequency}}
}

func (o *ModGaussian) Value(t float64) float64 {
	x := t / o.Width
	return o.Size * math.Exp(-0.5*x*x) * math.Sin(2.0*math.Pi*o.Frequency*t)
}

// compactEnvelope is the raised-cosine compact-support pulse shared by
// Compact and ModCompact (DiffCompact uses compactEnvelopeDeriv and
// RampedSinusoid's rising edge uses rampEnvelope).
func compactEnvelope(t, width float64) float64 {
	if t <= 0.0 {
		return 0.0
	}
	if t < 2.0*width {
		a := math.Pi / width * t
		return (10.0 - 15.0*math.Cos(a) + 6.0*math.Cos(2.0*a) - math.Cos(3.0*a)) / 32.0
	}
	return 0.0
}

func compactEnvelopeDeriv(t, width float64) float64 {
	if t <= 0.0 {
		return 0.0
	}
	if t < 2.0*width {
		a := math.Pi / width * t
		return (15.0*math.Sin(a) - 12.0*math.Sin(2.0*a) + 3.0*math.Sin(3.0*a)) / 32.0
	}
	return 0.0
}

func rampEnvelope(t, width float64) float64 {
	if t <= 0.0 {
		return 0.0
	}
	if t < width {
		a := math.Pi / width * t
		return (10.0 - 15.0*math.Cos(a) + 6.0*math.Cos(2.0*a) - math.Cos(3.0*a)) / 32.0
	}
	return 1.0
}

// Compact implements a raised-cosine pulse of compact temporal support.
type Compact struct{ common }

func (o *Compact) Init(dt float64, prms fun.Prms) (err error) {
	o.common.defaults(false, 20.0*dt, 0)
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "width":
			o.Width = p.V
		}
	}
	return
}

func (o *Compact) GetPrms(example bool) fun.Prms {
	o.common.defaults(example, 20.0, 0)
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}, &fun.Prm{N: "width", V: o.Width}}
}

func (o *Compact) Value(t float64) float64 { return o.Size * compactEnvelope(t, o.Width) }

// DiffCompact implements the time-derivative of Compact.
type DiffCompact struct{ common }

func (o *DiffCompact) Init(dt float64, prms fun.Prms) (err error) {
	o.common.defaults(false, 20.0*dt, 0)
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "width":
			o.Width = p.V
		}
	}
	return
}

func (o *DiffCompact) GetPrms(example bool) fun.Prms {
	o.common.defaults(example, 20.0, 0)
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}, &fun.Prm{N: "width", V: o.Width}}
}

func (o *DiffCompact) Value(t float64) float64 { return o.Size * compactEnvelopeDeriv(t, o.Width) }

// ModCompact implements a compact-support envelope modulated by a sinusoid.
type ModCompact struct{ common }

func (o *ModCompact) Init(dt float64, prms fun.Prms) (err error) {
	o.common.defaults(false, 80.0*dt, 0.05/dt)
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "width":
			o.Width = p.V
		case "frequency":
			o.Frequency = p.V
		}
	}
	return
}

func (o *ModCompact) GetPrms(example bool) fun.Prms {
	o.common.defaults(example, 80.0, 0.05)
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}, &fun.Prm{N: "width", V: o.Width}, &fun.Prm{N: "frequency", V: o.Frequency}}
}

func (o *ModCompact) Value(t float64) float64 {
	return o.Size * compactEnvelope(t, o.Width) * math.Sin(2.0*math.Pi*o.Frequency*t)
}

// RampedSinusoid implements a sinusoid whose leading edge is ramped by a
// compact-support raised-cosine shape to avoid a step-function excitation.
type RampedSinusoid struct{ common }

func (o *RampedSinusoid) Init(dt float64, prms fun.Prms) (err error) {
	o.common.defaults(false, 20.0*dt, 0.05/dt)
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "width":
			o.Width = p.V
		case "frequency":
			o.Frequency = p.V
		}
	}
	return
}

func (o *RampedSinusoid) GetPrms(example bool) fun.Prms {
	o.common.defaults(example, 20.0, 0.05)
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}, &fun.Prm{N: "width", V: o.Width}, &fun.Prm{N: "frequency", V: o.Frequency}}
}

func (o *RampedSinusoid) Value(t float64) float64 {
	return o.Size * rampEnvelope(t, o.Width) * math.Sin(2.0*math.Pi*o.Frequency*t)
}
