// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sibc implements surface-impedance boundary conditions on an
// internal planar surface: a 2x2 (isotropic) or 4x4 (anisotropic)
// pole-residue transfer function realised by per-cell recursive
// convolution, rotated into and out of the surface's principal frame.
package sibc

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// Pole is one pole-residue term of a rational transfer function.
type Pole struct {
	Pole    complex128
	Residue complex128
}

// rcCoeff is the per-pole recursive-convolution coefficient triple
// derived once at setup from the pole/residue and the time step.
type rcCoeff struct {
	q0, q1, q2 complex128
}

func newRCCoeff(p Pole, dt float64) rcCoeff {
	alpha := p.Residue / p.Pole
	beta := p.Pole * complex(dt, 0)
	ebeta := cmplx.Exp(beta)
	var c rcCoeff
	c.q0 = ebeta
	c.q1 = (alpha / beta) * (1 + (beta-1)*ebeta)
	c.q2 = (alpha / beta) * (ebeta - beta - 1)
	return c
}

// Element is one entry of the transfer-function matrix: an asymptotic
// (instantaneous) term plus zero or more recursive-convolution poles,
// with independent state per grid cell the element is evaluated at.
type Element struct {
	Asymp float64
	coeff []rcCoeff
}

// NewElement derives an element's recursive-convolution coefficients
// from its poles and the grid time step.
func NewElement(asymp float64, poles []Pole, dt float64) *Element {
	e := &Element{Asymp: asymp}
	for _, p := range poles {
		e.coeff = append(e.coeff, newRCCoeff(p, dt))
	}
	return e
}

// State is one cell's instance of an element's recursive-convolution
// memory (the zeta accumulators and the cached previous input).
type State struct {
	zeta   []complex128
	xPrev  float64
}

// NewState allocates state matching element's pole count.
func (e *Element) NewState() *State {
	return &State{zeta: make([]complex128, len(e.coeff))}
}

// Step advances s by one time step driven by input x, following
// zeta_new = q0*zeta_old + q1*x_prev + q2*x, y = asymp*x + sum(zeta_new).
func (e *Element) Step(s *State, x float64) float64 {
	y := e.Asymp * x
	cx := complex(x, 0)
	cxPrev := complex(s.xPrev, 0)
	for k, c := range e.coeff {
		s.zeta[k] = c.q0*s.zeta[k] + c.q1*cxPrev + c.q2*cx
		y += real(s.zeta[k])
	}
	s.xPrev = x
	return y
}

// Matrix is an MxN array of independent transfer-function elements
// (4x4 anisotropic, or the 2x2 isotropic TE/TM case embedded into the
// 4x4 block-diagonal form used throughout this package).
type Matrix struct {
	M, N int
	Elem [][]*Element
}

// NewMatrix builds a matrix of elements from per-cell (asymp, poles)
// records, deriving recursive-convolution coefficients with dt.
func NewMatrix(m, n int, asymp [][]float64, poles [][][]Pole, dt float64) (*Matrix, error) {
	if len(asymp) != m || len(poles) != m {
		return nil, chk.Err("sibc.NewMatrix: row count mismatch, want %d", m)
	}
	mat := &Matrix{M: m, N: n, Elem: make([][]*Element, m)}
	for i := 0; i < m; i++ {
		if len(asymp[i]) != n || len(poles[i]) != n {
			return nil, chk.Err("sibc.NewMatrix: column count mismatch at row %d, want %d", i, n)
		}
		mat.Elem[i] = make([]*Element, n)
		for j := 0; j < n; j++ {
			mat.Elem[i][j] = NewElement(asymp[i][j], poles[i][j], dt)
		}
	}
	return mat, nil
}

// MatrixState is one cell's full state for every element of a Matrix.
type MatrixState struct {
	S [][]*State
}

func (mat *Matrix) NewMatrixState() *MatrixState {
	ms := &MatrixState{S: make([][]*State, mat.M)}
	for i := range ms.S {
		ms.S[i] = make([]*State, mat.N)
		for j := range ms.S[i] {
			ms.S[i][j] = mat.Elem[i][j].NewState()
		}
	}
	return ms
}

// Apply evaluates y = M(s)*x for one cell's state, row by row.
func (mat *Matrix) Apply(ms *MatrixState, x []float64) []float64 {
	y := make([]float64, mat.M)
	for i := 0; i < mat.M; i++ {
		for j := 0; j < mat.N; j++ {
			y[i] += mat.Elem[i][j].Step(ms.S[i][j], x[j])
		}
	}
	return y
}
