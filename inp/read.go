// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadDeck reads and validates a JSON input deck, mirroring
// gofem/inp.ReadSim's read-decode-validate sequence. The time step is
// not stored; Deck.Dt derives it from CFLN and the mesh spacing on
// demand.
func ReadDeck(fileName string) (*Deck, error) {
	b, err := io.ReadFile(fileName)
	if err != nil {
		return nil, chk.Err("inp: cannot read deck file %q: %v", fileName, err)
	}
	var d Deck
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, chk.Err("inp: cannot unmarshal deck file %q: %v", fileName, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the deck's referential integrity (names resolve,
// bboxes are well-formed) and applies and range-checks CFLN, per spec.md §6/§7's
// configuration-error taxonomy. It never panics: every failure is a
// single chk.Err diagnostic, matching gofem/inp.ReadMat's style.
func (d *Deck) Validate() error {
	if err := d.Grid.validate(); err != nil {
		return err
	}

	names := make(map[string]bool, len(d.Media))
	for _, m := range d.Media {
		if names[m.Name] {
			return chk.Err("inp: duplicate medium name %q", m.Name)
		}
		names[m.Name] = true
		switch m.Kind {
		case "freespace", "pec", "simple", "debye":
		default:
			return chk.Err("inp: medium %q has unknown kind %q", m.Name, m.Kind)
		}
	}

	wfNames := make(map[string]bool, len(d.Waveforms))
	for _, w := range d.Waveforms {
		wfNames[w.Name] = true
	}

	bNames := make(map[string]bool, len(d.Boundaries))
	for _, b := range d.Boundaries {
		switch b.Face {
		case "xlo", "xhi", "ylo", "yhi", "zlo", "zhi":
		default:
			return chk.Err("inp: boundary has unknown face %q", b.Face)
		}
		bNames[b.Face] = true
	}

	for _, blk := range d.Blocks {
		if !blk.Box.isNormal() {
			return chk.Err("inp: block bbox %v is not normal", blk.Box)
		}
		if !names[blk.Medium] {
			return chk.Err("inp: block references unknown medium %q", blk.Medium)
		}
	}

	for _, s := range d.Surfaces {
		if !s.Box.isNormal() {
			return chk.Err("inp: surface bbox %v is not normal", s.Box)
		}
		if !bNames[s.Boundary] {
			return chk.Err("inp: surface references unknown boundary %q", s.Boundary)
		}
	}

	for _, src := range d.Sources {
		if !src.Box.isNormal() {
			return chk.Err("inp: source %q bbox is not normal", src.Name)
		}
		if !wfNames[src.Waveform] {
			return chk.Err("inp: source %q references unknown waveform %q", src.Name, src.Waveform)
		}
	}

	for _, pw := range d.PlaneWaves {
		if !pw.Box.isNormal() {
			return chk.Err("inp: plane wave %q bbox is not normal", pw.Name)
		}
		if !wfNames[pw.Waveform] {
			return chk.Err("inp: plane wave %q references unknown waveform %q", pw.Name, pw.Waveform)
		}
	}

	for _, obs := range d.Observers {
		if !obs.Box.isNormal() {
			return chk.Err("inp: observer %q bbox is not normal", obs.Name)
		}
		if obs.Domain == "freq" && len(obs.Freqs) == 0 {
			return chk.Err("inp: observer %q is frequency-domain but names no frequencies", obs.Name)
		}
	}

	if d.Simulation.NSteps <= 0 {
		return chk.Err("inp: simulation.nsteps must be positive, got %d", d.Simulation.NSteps)
	}
	if d.Simulation.CFLN == 0 {
		d.Simulation.CFLN = defaultCFLN
	}
	if d.Simulation.CFLN >= 1 {
		return chk.Err("inp: simulation.cfln must be below 1, got %v", d.Simulation.CFLN)
	}
	if d.Simulation.CFLN <= 0 {
		return chk.Err("inp: simulation.cfln must be positive, got %v", d.Simulation.CFLN)
	}
	return nil
}

// Dt derives the time step from the CFLN/mesh-spacing relation,
// dt = CFLN / (c0 * sqrt(1/dxmin^2 + 1/dymin^2 + 1/dzmin^2)).
func (d *Deck) Dt() float64 {
	dxMin := d.Grid.X.minSpacing()
	dyMin := d.Grid.Y.minSpacing()
	dzMin := d.Grid.Z.minSpacing()
	inv := 1.0/(dxMin*dxMin) + 1.0/(dyMin*dyMin) + 1.0/(dzMin*dzMin)
	return d.Simulation.CFLN / (medium.C0 * math.Sqrt(inv))
}

func (a AxisData) validate() error {
	if len(a.Lines) < 2 {
		return chk.Err("inp: grid axis must have at least two mesh lines")
	}
	for i := 1; i < len(a.Lines); i++ {
		if a.Lines[i] <= a.Lines[i-1] {
			return chk.Err("inp: grid axis mesh lines must be strictly increasing")
		}
	}
	if a.PMLLo < 0 || a.PMLHi < 0 {
		return chk.Err("inp: grid axis PML layer counts must be non-negative")
	}
	return nil
}

func (a AxisData) minSpacing() float64 {
	min := math.MaxFloat64
	for i := 1; i < len(a.Lines); i++ {
		d := a.Lines[i] - a.Lines[i-1]
		if d < min {
			min = d
		}
	}
	return min
}

func (g GridData) validate() error {
	if err := g.X.validate(); err != nil {
		return err
	}
	if err := g.Y.validate(); err != nil {
		return err
	}
	return g.Z.validate()
}

// isNormal mirrors grid.BBox.IsNormal's lo<=hi-on-every-axis predicate
// (spec.md §9's resolved "bboxIsNormal uses the intended ZLO<=ZHI"
// open question) without importing the grid package, since inp must
// remain decodable before a grid.Mesh exists.
func (b BoxData) isNormal() bool {
	return b[0] <= b[1] && b[2] <= b[3] && b[4] <= b[5]
}
