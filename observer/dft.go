// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import "math"

// runningDFT accumulates a discrete Fourier transform incrementally,
// one time-step contribution at a time, instead of storing the full
// time history and transforming it at the end: each step folds
// value*exp(-i*omega*t)*dt into the running sum for every configured
// frequency. Only the first sampled value per step is transformed; an
// observer producing several values per step (EHField, Poynting) in
// the frequency domain would need one DFT per value, which spec.md
// never exercises (frequency-domain observers are always used on
// single scalar quantities: voltage, current, or one field component).
type runningDFT struct {
	freqs      []float64
	omega      []float64
	real, imag []float64
	dt         float64
}

func newRunningDFT(freqs []float64, dt float64) *runningDFT {
	d := &runningDFT{
		freqs: append([]float64(nil), freqs...),
		omega: make([]float64, len(freqs)),
		real:  make([]float64, len(freqs)),
		imag:  make([]float64, len(freqs)),
		dt:    dt,
	}
	for i, f := range freqs {
		d.omega[i] = 2.0 * math.Pi * f
	}
	return d
}

func (d *runningDFT) accumulate(t float64, values []float64) {
	if len(values) == 0 {
		return
	}
	v := values[0]
	for i, w := range d.omega {
		phase := w * t
		d.real[i] += v * math.Cos(phase) * d.dt
		d.imag[i] -= v * math.Sin(phase) * d.dt
	}
}
