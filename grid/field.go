// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/chk"

// Field3 is a 3-D real array backed by a single contiguous slice, per
// spec.md §9's design note replacing the original's pointer-to-pointer
// chains. Index order is (i,j,k) with k fastest-varying.
type Field3 struct {
	Nx, Ny, Nz int
	Data       []float64
}

// NewField3 allocates a zeroed Nx*Ny*Nz array.
func NewField3(nx, ny, nz int) *Field3 {
	return &Field3{Nx: nx, Ny: ny, Nz: nz, Data: make([]float64, nx*ny*nz)}
}

// Idx returns the flat offset of cell (i,j,k).
func (f *Field3) Idx(i, j, k int) int { return (i*f.Ny+j)*f.Nz + k }

// At returns the value at (i,j,k).
func (f *Field3) At(i, j, k int) float64 { return f.Data[f.Idx(i, j, k)] }

// Set stores v at (i,j,k).
func (f *Field3) Set(i, j, k int, v float64) { f.Data[f.Idx(i, j, k)] = v }

// Fill sets every element to v.
func (f *Field3) Fill(v float64) {
	for i := range f.Data {
		f.Data[i] = v
	}
}

// Field3C is the complex128 analogue of Field3, used for Debye
// polarisation currents and SIBC recursive-convolution state, which must
// stay complex regardless of the field-precision build (spec.md §9).
type Field3C struct {
	Nx, Ny, Nz int
	Data       []complex128
}

func NewField3C(nx, ny, nz int) *Field3C {
	return &Field3C{Nx: nx, Ny: ny, Nz: nz, Data: make([]complex128, nx*ny*nz)}
}

func (f *Field3C) Idx(i, j, k int) int { return (i*f.Ny+j)*f.Nz + k }

func (f *Field3C) At(i, j, k int) complex128 { return f.Data[f.Idx(i, j, k)] }

func (f *Field3C) Set(i, j, k int, v complex128) { f.Data[f.Idx(i, j, k)] = v }

// Field4C is a 4-D complex array (i,j,k,pole), used for Debye blocks'
// per-pole auxiliary currents.
type Field4C struct {
	Nx, Ny, Nz, Np int
	Data           []complex128
}

func NewField4C(nx, ny, nz, np int) *Field4C {
	if np <= 0 {
		chk.Panic("Field4C requires at least one pole, got %d", np)
	}
	return &Field4C{Nx: nx, Ny: ny, Nz: nz, Np: np, Data: make([]complex128, nx*ny*nz*np)}
}

func (f *Field4C) Idx(i, j, k, p int) int { return ((i*f.Ny+j)*f.Nz+k)*f.Np + p }

func (f *Field4C) At(i, j, k, p int) complex128 { return f.Data[f.Idx(i, j, k, p)] }

func (f *Field4C) Set(i, j, k, p int, v complex128) { f.Data[f.Idx(i, j, k, p)] = v }
