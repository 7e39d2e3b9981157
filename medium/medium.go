// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package medium implements the closed set of medium variants a grid
// cell/edge/face can be painted with: free-space, PEC, simple
// (eps_r, sigma, mu_r) and Debye-dispersive media with N poles.
package medium

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// physical constants (SI units), matching vulture's physical.h.
const (
	Eps0 = 8.854187817e-12 // vacuum permittivity [F/m]
	Mu0  = 4.0e-7 * 3.14159265358979323846
	C0   = 299792458.0 // speed of light in vacuum [m/s]
)

// Kind is the tag of the closed medium sum type.
type Kind int

const (
	FreeSpace Kind = iota
	PEC
	Simple
	Debye
)

// indices fixed by the data-model invariant (spec.md §3).
const (
	IdxFreeSpace = 0
	IdxPEC       = 1
)

// Pole is one term of a Debye-dispersive permittivity expansion:
// chi(s) = residue / (s - pole), with Re(pole) <= 0 required for stability.
type Pole struct {
	Pole    complex128
	Residue complex128
}

// Medium holds one named medium record and its derived update
// coefficients. Dispatch on Kind only; never on embedding.
type Medium struct {
	Name  string
	Kind  Kind
	EpsR  float64 // relative permittivity (Simple, Debye "instantaneous" eps_inf)
	Sigma float64 // conductivity [S/m]
	MuR   float64 // relative permeability [-]
	Poles []Pole  // Debye poles/residues (Kind == Debye)

	// derived update coefficients, computed by Coefficients()
	Alpha float64
	Beta  float64
	Gamma float64

	// derived per-pole coefficients (Kind == Debye)
	DAlpha []complex128
	DBeta  []complex128
}

// NewFreeSpace allocates a free-space medium (index 0 invariant).
func NewFreeSpace() *Medium { return &Medium{Name: "free_space", Kind: FreeSpace, EpsR: 1, MuR: 1} }

// NewPEC allocates a perfect-electric-conductor medium (index 1 invariant).
func NewPEC() *Medium { return &Medium{Name: "pec", Kind: PEC, MuR: 1} }

// NewSimple allocates a lossy dielectric/magnetic medium.
func NewSimple(name string, epsR, sigma, muR float64) *Medium {
	return &Medium{Name: name, Kind: Simple, EpsR: epsR, Sigma: sigma, MuR: muR}
}

// NewDebye allocates a Debye-dispersive medium. Every pole must satisfy
// Re(pole) <= 0; violating this is a fatal configuration error (§4.5).
func NewDebye(name string, epsInf, sigma, muR float64, poles []Pole) (*Medium, error) {
	for i, p := range poles {
		if real(p.Pole) > 0 {
			return nil, chk.Err("medium %q: Debye pole #%d has Re(pole)=%g > 0 (unstable)", name, i, real(p.Pole))
		}
	}
	return &Medium{Name: name, Kind: Debye, EpsR: epsInf, Sigma: sigma, MuR: muR, Poles: poles}, nil
}

// Coefficients computes alpha, beta, gamma (and, for Debye media, the
// per-pole dAlpha/dBeta) from dt, following calcCoeffFromParam in the
// original vulture medium.c, generalised to a zero-pole (Simple) medium.
func (o *Medium) Coefficients(dt float64) {
	switch o.Kind {
	case FreeSpace:
		o.Alpha, o.Beta, o.Gamma = 1.0, dt/Eps0, dt/Mu0
		return
	case PEC:
		o.Alpha, o.Beta, o.Gamma = -1.0, 0.0, dt/Mu0
		return
	}

	sum := 0.0
	if n := len(o.Poles); n > 0 {
		o.DAlpha = make([]complex128, n)
		o.DBeta = make([]complex128, n)
		for p, pole := range o.Poles {
			halfDtPole := complex(0.5*dt, 0) * pole.Pole
			o.DAlpha[p] = (1 + halfDtPole) / (1 - halfDtPole)
			o.DBeta[p] = complex(Eps0, 0) * pole.Residue / (1 - halfDtPole)
			sum += real(o.DBeta[p])
		}
	}
	o.Alpha = (2.0*o.EpsR*Eps0 + 2.0*sum*dt - dt*o.Sigma) / (2.0*o.EpsR*Eps0 + 2.0*sum*dt + dt*o.Sigma)
	o.Beta = (2.0 * dt) / (2.0*o.EpsR*Eps0 + 2.0*sum*dt + dt*o.Sigma)
	o.Gamma = dt / (o.MuR * Mu0)
}

// GetPrms returns an example parameter set, matching the gosl/fun
// Prms/Connect idiom used for model parameter binding elsewhere in the
// pack.
func GetPrms(example bool) fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "eps_r", V: 1.0},
		&fun.Prm{N: "sigma", V: 0.0},
		&fun.Prm{N: "mu_r", V: 1.0},
	}
}

// Table is an ordered, named collection of media with the two fixed
// entries (index 0 = free space, index 1 = PEC) always present, matching
// the vulture "mediumArray" convention but as an owned slice + name map
// instead of a global singleton (spec.md §9).
type Table struct {
	Media   []*Medium
	byName  map[string]int
}

// NewTable returns a table pre-seeded with the two fixed media.
func NewTable() *Table {
	t := &Table{byName: make(map[string]int)}
	t.Media = append(t.Media, NewFreeSpace(), NewPEC())
	t.byName["free_space"] = IdxFreeSpace
	t.byName["pec"] = IdxPEC
	return t
}

// Add appends a medium and returns its index. Names must be unique.
func (t *Table) Add(m *Medium) (int, error) {
	if _, ok := t.byName[m.Name]; ok {
		return 0, chk.Err("medium %q already defined", m.Name)
	}
	idx := len(t.Media)
	t.Media = append(t.Media, m)
	t.byName[m.Name] = idx
	return idx, nil
}

// Index looks up a medium by name.
func (t *Table) Index(name string) (int, bool) {
	idx, ok := t.byName[name]
	return idx, ok
}

// Get returns the medium at idx.
func (t *Table) Get(idx int) *Medium { return t.Media[idx] }

// InitCoefficients computes update coefficients for every medium in the
// table from the grid time step, forcing the free-space/PEC invariants
// last so a user-supplied override can never corrupt them (medium.c's
// "force medium zero/one" ordering).
func (t *Table) InitCoefficients(dt float64) {
	for _, m := range t.Media {
		m.Coefficients(dt)
	}
	t.Media[IdxFreeSpace].Alpha, t.Media[IdxFreeSpace].Beta, t.Media[IdxFreeSpace].Gamma = 1.0, dt/Eps0, dt/Mu0
	t.Media[IdxPEC].Alpha, t.Media[IdxPEC].Beta, t.Media[IdxPEC].Gamma = -1.0, 0.0, dt/Mu0
}
