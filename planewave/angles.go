// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planewave

import "math"

// eta0 is the free-space wave impedance, kept numerically identical to
// sibc's own copy rather than imported across packages for a single
// constant.
const eta0 = 376.730313668

// vec3 is a plain Cartesian 3-vector; package planewave never needs a
// general-purpose linear-algebra type for anything bigger than this.
type vec3 [3]float64

func (v vec3) scale(s float64) vec3 { return vec3{v[0] * s, v[1] * s, v[2] * s} }
func (v vec3) add(w vec3) vec3      { return vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }
func (v vec3) dot(w vec3) float64   { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }
func (v vec3) cross(w vec3) vec3 {
	return vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// incidence holds the propagation direction and the E/H polarisation
// unit vectors derived from it, per spec.md §4.4's spherical
// (theta,phi,eta) parameterisation.
type incidence struct {
	K vec3 // unit propagation direction k-hat
	E vec3 // unit electric polarisation e-hat
	H vec3 // unit magnetic polarisation h-hat = k-hat x e-hat
}

// newIncidence builds the direction/polarisation triad. theta is the
// polar angle from +z, phi the azimuth from +x, eta the polarisation
// angle measured from theta-hat toward phi-hat.
func newIncidence(thetaRad, phiRad, etaRad float64) incidence {
	st, ct := math.Sin(thetaRad), math.Cos(thetaRad)
	sp, cp := math.Sin(phiRad), math.Cos(phiRad)

	k := vec3{st * cp, st * sp, ct}
	thetaHat := vec3{ct * cp, ct * sp, -st}
	phiHat := vec3{-sp, cp, 0}

	se, ce := math.Sin(etaRad), math.Cos(etaRad)
	e := thetaHat.scale(ce).add(phiHat.scale(se))
	h := k.cross(e)

	return incidence{K: k, E: e, H: h}
}
