// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package waveform

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// External implements a waveform interpolated from an ASCII (t, value)
// table using a natural cubic spline, per spec.md §6's external waveform
// file contract.
type External struct {
	Size     float64
	FileName string

	t, v, d2 []float64 // table times, values, second derivatives
	lastIdx  int        // cache of the last interval used, for fast sequential lookup
}

func (o *External) Init(dt float64, prms fun.Prms) (err error) {
	if o.Size <= 0 {
		o.Size = 1.0
	}
	for _, p := range prms {
		switch p.N {
		case "size":
			o.Size = p.V
		case "file":
			// file names cannot be carried as floats; resolved via FileName field by the caller
		}
	}
	if o.FileName == "" {
		return chk.Err("external waveform requires a file name")
	}
	o.t, o.v, err = readTable(o.FileName)
	if err != nil {
		return err
	}
	if len(o.t) < 2 {
		return chk.Err("external waveform file %q must contain at least two samples", o.FileName)
	}
	maxSpacing := 0.0
	for i := 1; i < len(o.t); i++ {
		if o.t[i] <= o.t[i-1] {
			return chk.Err("external waveform file %q: time values must be strictly increasing", o.FileName)
		}
		if sp := o.t[i] - o.t[i-1]; sp > maxSpacing {
			maxSpacing = sp
		}
	}
	if maxSpacing > 3.0*dt {
		io.Pfred("waveform: external file %q sample spacing %g exceeds 3*dt=%g (poor interpolation)\n", o.FileName, maxSpacing, 3.0*dt)
	} else if maxSpacing > 1.5*dt {
		io.Pfred("waveform: external file %q sample spacing %g exceeds the ideal 1.5*dt=%g\n", o.FileName, maxSpacing, 1.5*dt)
	}
	o.d2 = naturalCubicSpline(o.t, o.v)
	return nil
}

func (o *External) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "size", V: o.Size}}
}

// Value evaluates the spline at t, returning 0 outside the table range.
func (o *External) Value(t float64) float64 {
	n := len(o.t)
	if n == 0 || t < o.t[0] || t > o.t[n-1] {
		return 0.0
	}
	return o.Size * o.evalSpline(t)
}

// readTable parses an ASCII file of whitespace-separated "t value" pairs.
func readTable(fileName string) (t, v []float64, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, chk.Err("cannot open external waveform file %q: %v", fileName, err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ti, e1 := strconv.ParseFloat(fields[0], 64)
		vi, e2 := strconv.ParseFloat(fields[1], 64)
		if e1 != nil || e2 != nil {
			return nil, nil, chk.Err("cannot parse waveform sample %q in %q", line, fileName)
		}
		t = append(t, ti)
		v = append(v, vi)
	}
	if err = sc.Err(); err != nil {
		return nil, nil, chk.Err("error scanning %q: %v", fileName, err)
	}
	return t, v, nil
}

// naturalCubicSpline solves the standard tridiagonal system for natural
// (zero second-derivative end conditions) cubic spline coefficients.
func naturalCubicSpline(x, y []float64) []float64 {
	n := len(x)
	d2 := make([]float64, n)
	if n < 3 {
		return d2
	}
	u := make([]float64, n)
	for i := 1; i < n-1; i++ {
		sig := (x[i] - x[i-1]) / (x[i+1] - x[i-1])
		p := sig*d2[i-1] + 2.0
		d2[i] = (sig - 1.0) / p
		u[i] = (y[i+1]-y[i])/(x[i+1]-x[i]) - (y[i]-y[i-1])/(x[i]-x[i-1])
		u[i] = (6.0*u[i]/(x[i+1]-x[i-1]) - sig*u[i-1]) / p
	}
	for k := n - 2; k >= 0; k-- {
		d2[k] = d2[k]*d2[k+1] + u[k]
	}
	d2[0] = 0.0
	d2[n-1] = 0.0
	return d2
}

// evalSpline evaluates the cubic spline built from o.t/o.v/o.d2 at t,
// using a cached interval index for fast sequential (time-stepping)
// lookup, as the original implementation's evalSpline/lastIdx do.
func (o *External) evalSpline(t float64) float64 {
	n := len(o.t)
	lo, hi := 0, n-1
	if o.lastIdx >= 0 && o.lastIdx < n-1 && o.t[o.lastIdx] <= t && t <= o.t[o.lastIdx+1] {
		lo, hi = o.lastIdx, o.lastIdx+1
	} else {
		lo, hi = 0, n-1
		for hi-lo > 1 {
			mid := (hi + lo) / 2
			if o.t[mid] > t {
				hi = mid
			} else {
				lo = mid
			}
		}
		o.lastIdx = lo
	}
	h := o.t[hi] - o.t[lo]
	if h == 0 {
		return o.v[lo]
	}
	a := (o.t[hi] - t) / h
	b := (t - o.t[lo]) / h
	return a*o.v[lo] + b*o.v[hi] +
		((a*a*a-a)*o.d2[lo]+(b*b*b-b)*o.d2[hi])*(h*h)/6.0
}
