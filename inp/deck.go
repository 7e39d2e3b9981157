// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.fdtd) JSON file:
// grid/boundary/medium/block/surface/wire/waveform/source/planewave/
// observer records plus the simulation-control record, following
// gofem/inp's Simulation/Stage JSON-tag layout.
package inp

// AxisData describes one axis's mesh lines and PML layer counts.
type AxisData struct {
	Lines []float64 `json:"lines"` // inner-grid node coordinates, strictly increasing
	PMLLo int        `json:"pmllo"`
	PMLHi int        `json:"pmlhi"`
}

// GridData holds the three axes of the structured mesh.
type GridData struct {
	X AxisData `json:"x"`
	Y AxisData `json:"y"`
	Z AxisData `json:"z"`
}

// BoxData is a mesh bounding box in the grid's absolute cell indices
// (ghost cell at 0, as grid.BBox), the JSON surface form of grid.BBox.
type BoxData [6]int

// BoundaryData describes one outer-face termination.
type BoundaryData struct {
	Face string `json:"face"` // "xlo","xhi","ylo","yhi","zlo","zhi"
	Type string `json:"type"` // "pml", "mur", "pec", "pmc", "periodic", "sibc"

	// pml
	Layers   int     `json:"layers"`
	Order    int     `json:"order"`
	KappaMax float64 `json:"kappamax"`
	RefCoeff float64 `json:"refcoeff"`

	// sibc: either a pole-residue file, or a pair of isotropic real
	// scattering matrices (TM, TE polarisation) checked for passivity
	// and lowered to a zero-pole impedance (sibc.NewFromScattering).
	PoleResidueFile string      `json:"poleresiduefile"`
	ScatteringTM    *[2][2]float64 `json:"scatteringtm"`
	ScatteringTE    *[2][2]float64 `json:"scatteringte"`
}

// PoleData is one Debye pole/residue pair, re/im split for JSON.
type PoleData struct {
	PoleRe    float64 `json:"polere"`
	PoleIm    float64 `json:"poleim"`
	ResidueRe float64 `json:"residuere"`
	ResidueIm float64 `json:"residueim"`
}

// MediumData names one medium record.
type MediumData struct {
	Name  string     `json:"name"`
	Kind  string     `json:"kind"` // "freespace", "pec", "simple", "debye"
	EpsR  float64    `json:"epsr"`
	Sigma float64    `json:"sigma"`
	MuR   float64    `json:"mur"`
	Poles []PoleData `json:"poles"` // kind == "debye"
}

// BlockData paints a medium over a mesh bbox, optionally restricted to
// a subset of field components. Faces holds component names ("ex".."hz");
// other names, face names included, are ignored, and every face of the
// bbox is always included in the painted range.
type BlockData struct {
	Box    BoxData  `json:"box"`
	Medium string   `json:"medium"`
	Faces  []string `json:"faces"` // component names; empty means all six
}

// SurfaceData describes one internal SIBC surface.
type SurfaceData struct {
	Box             BoxData `json:"box"`
	Boundary        string  `json:"boundary"` // face of a BoundaryData with Type=="sibc"
	Orientation     int     `json:"orientation"`
	AngleDeg        float64 `json:"angledeg"`
}

// WireData describes a thin-wire/line feature.
type WireData struct {
	Name   string  `json:"name"`
	Box    BoxData `json:"box"`
	Radius float64 `json:"radius"`
	EndLo  string  `json:"endlo"` // "open", "shorted", "through"
	EndHi  string  `json:"endhi"`
}

// WaveformData names one waveform record.
type WaveformData struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"` // "gaussian","diffgaussian","ricker","modgaussian","compact","diffcompact","modcompact","rampedsinusoid","external"
	Amplitude float64 `json:"amplitude"`
	Delay     float64 `json:"delay"`
	Width     float64 `json:"width"`
	Freq      float64 `json:"freq"`
	File      string  `json:"file"` // kind == "external"
}

// SourceData names one injection source.
type SourceData struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"` // "efield","surfacecurrent","current","currentmoment","voltage"
	Hard       bool    `json:"hard"`
	Component  string  `json:"component"` // "ex".."hz"
	Box        BoxData `json:"box"`
	Waveform   string  `json:"waveform"`
	Delay      float64 `json:"delay"`
	Amplitude  float64 `json:"amplitude"`
	Resistance float64 `json:"resistance"`
}

// PlaneWaveData names one plane-wave TF/SF injector.
type PlaneWaveData struct {
	Name        string   `json:"name"`
	Box         BoxData  `json:"box"`
	ActiveFaces []string `json:"activefaces"` // empty means "all"
	ThetaDeg    float64  `json:"thetadeg"`
	PhiDeg      float64  `json:"phideg"`
	EtaDeg      float64  `json:"etadeg"`
	Amplitude   float64  `json:"amplitude"`
	Waveform    string   `json:"waveform"`
	Delay       float64  `json:"delay"`
	AuxPMLLayers int     `json:"auxpmllayers"`
}

// ObserverData names one output tap.
type ObserverData struct {
	Name      string  `json:"name"`
	Box       BoxData `json:"box"`
	Quantity  string  `json:"quantity"` // "efield","hfield","ehfield","poynting","voltage","current"
	Domain    string  `json:"domain"`   // "time","freq"
	Encoding  string  `json:"encoding"` // "ascii","binary"
	File      string  `json:"file"`
	Freqs     []float64 `json:"freqs"` // domain == "freq"
}

// SimulationData holds simulation-control parameters.
type SimulationData struct {
	NSteps int     `json:"nsteps"`
	CFLN   float64 `json:"cfln"` // Courant number in (0,1); 0 selects the default
}

// Deck is the root input document.
type Deck struct {
	Grid        GridData        `json:"grid"`
	Boundaries  []BoundaryData  `json:"boundaries"`
	Media       []MediumData    `json:"media"`
	Blocks      []BlockData     `json:"blocks"`
	Surfaces    []SurfaceData   `json:"surfaces"`
	Wires       []WireData      `json:"wires"`
	Waveforms   []WaveformData  `json:"waveforms"`
	Sources     []SourceData    `json:"sources"`
	PlaneWaves  []PlaneWaveData `json:"planewaves"`
	Observers   []ObserverData  `json:"observers"`
	Simulation  SimulationData  `json:"simulation"`
}

// defaultCFLN is used whenever Simulation.CFLN is left at its zero value.
const defaultCFLN = 0.8660254037844386 // sqrt(3)/2
