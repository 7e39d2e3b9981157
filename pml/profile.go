// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pml implements convolutional perfectly-matched-layer (CPML)
// absorbing boundaries: polynomial loss/stretch grading per axis and
// the cascaded PP/P auxiliary-current update chain carrying a medium
// into the layer from its adjoining inner boundary.
package pml

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Grading holds one face's CPML profile order, effective refractive
// index, target reflection coefficient (0 disables the closed-form
// theoretical profile in favour of the "optimum" empirical one) and
// maximum kappa stretch.
type Grading struct {
	Order     int
	NEff      float64
	RefCoeff  float64
	KappaMax  float64
	NLayers   int
}

// DefaultGrading matches vulture's usual ten-cell grading: cubic loss
// profile, unity effective index, theoretical reflection coefficient of
// 1e-6 and no coordinate stretch.
func DefaultGrading(nLayers int) Grading {
	return Grading{Order: 3, NEff: 1.0, RefCoeff: 1.0e-6, KappaMax: 1.0, NLayers: nLayers}
}

// sigmaProfile is the loss grading of Taflove eqn. (7.55a)/(7.57)/(7.61):
// x=0 at the PML-to-inner-space boundary, x=1 at the PML-to-PEC backing.
func sigmaProfile(x, totalDepth, meshSize float64, order int, nEff, refCoeff float64) float64 {
	const eta0 = 376.730313668
	var sigmaMax float64
	if refCoeff > 0 {
		sigmaMax = -(float64(order) + 1.0) / (2.0 * eta0 * nEff * totalDepth) * math.Log(refCoeff)
	} else {
		sigmaMax = 4.0 * (float64(order) + 1.0) / (5.0 * eta0 * nEff * meshSize)
	}
	return sigmaMax * math.Pow(x, float64(order))
}

// kappaProfile is the coordinate-stretch grading of Taflove eqn. (7.55b).
func kappaProfile(x float64, order int, kappaMax float64) float64 {
	return 1.0 + (kappaMax-1.0)*math.Pow(x, float64(order))
}

// AxisProfile holds the graded recursive-convolution coefficients for
// one axis, indexed over the full ghost-grid extent. "D" arrays grade
// the primary (electric, cell-centre-to-cell-centre) edges; "H" arrays
// grade the secondary (magnetic, half-cell) edges.
type AxisProfile struct {
	AD, BD, IBD []float64
	AH, BH, IBH []float64
}

// newIdentityProfile allocates a profile spanning [lo,hi] set to the
// no-PML identity (kappa=1, sigma=0 => a=1, b=1, ib=1), matching
// setPmlParameters' pre-fill loop before any graded face is applied.
func newIdentityProfile(lo, hi int) *AxisProfile {
	n := hi - lo + 1
	p := &AxisProfile{
		AD: make([]float64, n), BD: make([]float64, n), IBD: make([]float64, n),
		AH: make([]float64, n), BH: make([]float64, n), IBH: make([]float64, n),
	}
	for i := range p.AD {
		p.AD[i], p.BD[i], p.IBD[i] = 1.0, 1.0, 1.0
		p.AH[i], p.BH[i], p.IBH[i] = 1.0, 1.0, 1.0
	}
	return p
}

func (p *AxisProfile) at(idx, lo int) int { return idx - lo }

// gradeLoFace grades indices [low,high] of a low-side PML region (the
// region boundary at "low" is the PEC backing, "high" is the innermost
// PML cell, one before the inner grid starts), following vulture's
// setProfile with dir=-1.
func (p *AxisProfile) gradeLoFace(de, dh []float64, lo, low, high int, dt float64, eps0 float64, g Grading) {
	totalDepth := 0.0
	for i := low; i <= high; i++ {
		totalDepth += de[i]
	}
	depthE := 0.0
	for i := high; i >= low; i-- {
		x := depthE / totalDepth
		s := 0.5 * dt / eps0 * sigmaProfile(x, totalDepth, de[low], g.Order, g.NEff, g.RefCoeff)
		k := kappaProfile(x, g.Order, g.KappaMax)
		p.setD(p.at(i, lo), s, k)
		depthE += de[i]
	}
	// the D profile needs one extra point below "low" for the PEC-backed
	// ghost cell; vulture grades it at full depth (x=1).
	if lo <= low-1 {
		s := 0.5 * dt / eps0 * sigmaProfile(1.0, totalDepth, de[low], g.Order, g.NEff, g.RefCoeff)
		k := kappaProfile(1.0, g.Order, g.KappaMax)
		p.setD(p.at(low-1, lo), s, k)
	}
	depthH := 0.5 * de[high]
	for i := high; i >= low; i-- {
		x := depthH / totalDepth
		s := 0.5 * dt / eps0 * sigmaProfile(x, totalDepth, de[low], g.Order, g.NEff, g.RefCoeff)
		k := kappaProfile(x, g.Order, g.KappaMax)
		p.setH(p.at(i, lo), s, k)
		if i > low {
			depthH += 0.5 * (dh[i] + dh[i-1])
		}
	}
}

// gradeHiFace is the mirror image for a high-side PML region, dir=+1.
func (p *AxisProfile) gradeHiFace(de, dh []float64, lo, low, high int, dt float64, eps0 float64, g Grading) {
	totalDepth := 0.0
	for i := low; i <= high; i++ {
		totalDepth += de[i]
	}
	depthE := 0.0
	for i := low; i <= high; i++ {
		x := depthE / totalDepth
		s := 0.5 * dt / eps0 * sigmaProfile(x, totalDepth, de[low], g.Order, g.NEff, g.RefCoeff)
		k := kappaProfile(x, g.Order, g.KappaMax)
		p.setD(p.at(i, lo), s, k)
		depthE += de[i]
	}
	if p.at(high+1, lo) < len(p.AD) {
		s := 0.5 * dt / eps0 * sigmaProfile(1.0, totalDepth, de[low], g.Order, g.NEff, g.RefCoeff)
		k := kappaProfile(1.0, g.Order, g.KappaMax)
		p.setD(p.at(high+1, lo), s, k)
	}
	depthH := 0.5 * de[low]
	for i := low; i <= high; i++ {
		x := depthH / totalDepth
		s := 0.5 * dt / eps0 * sigmaProfile(x, totalDepth, de[low], g.Order, g.NEff, g.RefCoeff)
		k := kappaProfile(x, g.Order, g.KappaMax)
		p.setH(p.at(i, lo), s, k)
		if i < high {
			depthH += 0.5 * (dh[i] + dh[i+1])
		}
	}
}

func (p *AxisProfile) setD(idx int, s, k float64) {
	if idx < 0 || idx >= len(p.AD) {
		chk.Panic("pml: D-profile index %d out of range [0,%d)", idx, len(p.AD))
	}
	p.BD[idx] = 1.0 / (k + s)
	p.IBD[idx] = k + s
	p.AD[idx] = (k - s) / (k + s)
}

func (p *AxisProfile) setH(idx int, s, k float64) {
	if idx < 0 || idx >= len(p.AH) {
		chk.Panic("pml: H-profile index %d out of range [0,%d)", idx, len(p.AH))
	}
	p.BH[idx] = 1.0 / (k + s)
	p.IBH[idx] = k + s
	p.AH[idx] = (k - s) / (k + s)
}
