// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"

	"github.com/cpmech/gofdtd/debye"
	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gofdtd/inp"
	"github.com/cpmech/gofdtd/medium"
	"github.com/cpmech/gofdtd/mur"
	"github.com/cpmech/gofdtd/observer"
	"github.com/cpmech/gofdtd/planewave"
	"github.com/cpmech/gofdtd/pml"
	"github.com/cpmech/gofdtd/sibc"
	"github.com/cpmech/gofdtd/source"
	"github.com/cpmech/gofdtd/waveform"
	"github.com/cpmech/gofdtd/wire"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Load builds a Solver from a validated deck, following gofem/fem.NewFEM's
// read-then-allocate sequence: the deck is assumed already validated
// (inp.ReadDeck calls Validate). Load still returns an error for names
// it cannot resolve (unknown media, kinds, faces, waveforms or
// components) and for faults that need the built mesh/media to detect
// (unstable Debye poles, non-passive SIBC matrices, degenerate source
// geometry).
func Load(d *inp.Deck) (*Solver, error) {
	mesh := grid.NewMesh(axisMesh(d.Grid.X), axisMesh(d.Grid.Y), axisMesh(d.Grid.Z))
	dt := d.Dt()

	table, err := buildMediumTable(d, dt)
	if err != nil {
		return nil, err
	}

	g := grid.NewGrid(mesh, grid.Scaled, grid.Dense)
	dc := g.Coeffs.(*grid.DenseCoefficients)
	full := grid.SetFieldLimits(mesh.GOBox, [6]bool{true, true, true, true, true, true})
	for c := grid.EX; c <= grid.HZ; c++ {
		grid.PaintMedium(dc, mesh, g.Scaling, c, full, table.Get(medium.IdxFreeSpace))
	}

	if err := paintBlocks(d, mesh, dc, g.Scaling, table); err != nil {
		return nil, err
	}

	waveforms, err := buildWaveforms(d, dt)
	if err != nil {
		return nil, err
	}

	s := &Solver{Mesh: mesh, Grid: g, Table: table, Dt: dt, NSteps: d.Simulation.NSteps}

	if err := attachBoundaries(d, s, dt); err != nil {
		return nil, err
	}
	if err := attachWires(d, s, dc); err != nil {
		return nil, err
	}
	if err := attachDebyeBlocks(d, s, table); err != nil {
		return nil, err
	}
	if err := attachSources(d, s, waveforms); err != nil {
		return nil, err
	}
	if err := attachPlaneWaves(d, s, waveforms, dt); err != nil {
		return nil, err
	}
	if err := attachObservers(d, s, dt); err != nil {
		return nil, err
	}
	return s, nil
}

func axisMesh(a inp.AxisData) grid.AxisMesh {
	return grid.AxisMesh{Lines: a.Lines, PMLLo: a.PMLLo, PMLHi: a.PMLHi}
}

func buildMediumTable(d *inp.Deck, dt float64) (*medium.Table, error) {
	t := medium.NewTable()
	for _, md := range d.Media {
		if md.Name == "free_space" || md.Name == "pec" {
			continue // fixed entries, never redefined
		}
		var m *medium.Medium
		switch md.Kind {
		case "freespace":
			m = medium.NewFreeSpace()
			m.Name = md.Name
		case "pec":
			m = medium.NewPEC()
			m.Name = md.Name
		case "simple":
			m = medium.NewSimple(md.Name, md.EpsR, md.Sigma, md.MuR)
		case "debye":
			poles := make([]medium.Pole, len(md.Poles))
			for i, p := range md.Poles {
				poles[i] = medium.Pole{
					Pole:    complex(p.PoleRe, p.PoleIm),
					Residue: complex(p.ResidueRe, p.ResidueIm),
				}
			}
			var err error
			m, err = medium.NewDebye(md.Name, md.EpsR, md.Sigma, md.MuR, poles)
			if err != nil {
				return nil, err
			}
		default:
			return nil, chk.Err("engine: medium %q has unknown kind %q", md.Name, md.Kind)
		}
		if _, err := t.Add(m); err != nil {
			return nil, err
		}
	}
	t.InitCoefficients(dt)
	for _, m := range t.Media {
		if m.Kind == medium.Debye && !debye.StabilityOK(m) {
			return nil, chk.Err("engine: medium %q fails the Debye recursive-convolution stability bound", m.Name)
		}
	}
	return t, nil
}

func paintBlocks(d *inp.Deck, mesh *grid.Mesh, dc *grid.DenseCoefficients, scaling grid.Scaling, table *medium.Table) error {
	for _, blk := range d.Blocks {
		idx, ok := table.Index(blk.Medium)
		if !ok {
			return chk.Err("engine: block references unknown medium %q", blk.Medium)
		}
		m := table.Get(idx)
		if m.Kind == medium.Debye {
			continue // Debye blocks are applied as a post-update correction, not painted coefficients
		}
		box := toBBox(blk.Box)
		comps := componentsForFaces(blk.Faces)
		for _, c := range comps {
			flim := grid.SetFieldLimits(box, [6]bool{true, true, true, true, true, true})
			grid.PaintMedium(dc, mesh, scaling, c, flim, m)
		}
	}
	return nil
}

func componentsForFaces(faces []string) []grid.Component {
	if len(faces) == 0 {
		return []grid.Component{grid.EX, grid.EY, grid.EZ, grid.HX, grid.HY, grid.HZ}
	}
	var out []grid.Component
	for _, f := range faces {
		if c, ok := componentByName[f]; ok {
			out = append(out, c)
		}
	}
	return out
}

var componentByName = map[string]grid.Component{
	"ex": grid.EX, "ey": grid.EY, "ez": grid.EZ,
	"hx": grid.HX, "hy": grid.HY, "hz": grid.HZ,
}

var faceByName = map[string]grid.Face{
	"xlo": grid.XLO, "xhi": grid.XHI,
	"ylo": grid.YLO, "yhi": grid.YHI,
	"zlo": grid.ZLO, "zhi": grid.ZHI,
}

func toBBox(b inp.BoxData) grid.BBox { return grid.BBox(b) }

func attachBoundaries(d *inp.Deck, s *Solver, dt float64) error {
	var pmlBoundary [6]bool
	var pmlGrading [6]pml.Grading
	var murBoundary [6]bool
	var ghostE, ghostH grid.Boundary

	for _, b := range d.Boundaries {
		face, ok := faceByName[b.Face]
		if !ok {
			return chk.Err("engine: boundary has unknown face %q", b.Face)
		}
		switch b.Type {
		case "pml":
			pmlBoundary[face] = true
			g := pml.DefaultGrading(b.Layers)
			if b.Order > 0 {
				g.Order = b.Order
			}
			if b.KappaMax > 0 {
				g.KappaMax = b.KappaMax
			}
			if b.RefCoeff > 0 {
				g.RefCoeff = b.RefCoeff
			}
			pmlGrading[face] = g
			ghostE[face] = grid.BoundaryOther
			ghostH[face] = grid.BoundaryOther
		case "mur":
			murBoundary[face] = true
			ghostE[face] = grid.BoundaryOther
			ghostH[face] = grid.BoundaryOther
		case "sibc":
			ghostE[face] = grid.BoundaryOther
			ghostH[face] = grid.BoundaryOther
		case "pec":
			ghostE[face] = grid.BoundaryPEC
			ghostH[face] = grid.BoundaryPEC
		case "pmc":
			ghostE[face] = grid.BoundaryPMC
			ghostH[face] = grid.BoundaryPMC
		case "periodic":
			ghostE[face] = grid.BoundaryPeriodic
			ghostH[face] = grid.BoundaryPeriodic
		default:
			return chk.Err("engine: boundary %q has unknown type %q", b.Face, b.Type)
		}
	}
	if err := grid.CheckPeriodicPairing(ghostE); err != nil {
		return err
	}

	if pmlBoundary != ([6]bool{}) {
		s.PML = pml.NewPML(s.Mesh, pmlBoundary, pmlGrading, dt)
		s.hasPML = true
	}
	if murBoundary != ([6]bool{}) {
		s.Mur = mur.NewMur(s.Mesh, murBoundary, dt)
		s.hasMur = true
	}
	s.GhostE, s.GhostH = ghostE, ghostH

	for _, sd := range d.Surfaces {
		bnd := findBoundary(d, sd.Boundary)
		if bnd == nil {
			return chk.Err("engine: surface references unknown boundary %q", sd.Boundary)
		}
		mat, err := buildSIBCMatrix(*bnd, dt)
		if err != nil {
			return err
		}
		face, _ := faceByName[bnd.Face]
		surf := sibc.NewSurface(face.Axis(), toBBox(sd.Box), sd.Orientation, sd.AngleDeg, mat)
		s.Surfaces = append(s.Surfaces, surf)
	}
	return nil
}

func findBoundary(d *inp.Deck, face string) *inp.BoundaryData {
	for i := range d.Boundaries {
		if d.Boundaries[i].Face == face {
			return &d.Boundaries[i]
		}
	}
	return nil
}

func buildSIBCMatrix(b inp.BoundaryData, dt float64) (*sibc.Matrix, error) {
	if b.PoleResidueFile != "" {
		return sibc.ReadPoleResidueFile(b.PoleResidueFile, dt)
	}
	if b.ScatteringTM != nil && b.ScatteringTE != nil {
		return sibc.NewFromScattering(*b.ScatteringTM, *b.ScatteringTE, dt)
	}
	return nil, chk.Err("engine: sibc boundary %q names neither a pole-residue file nor a scattering matrix pair", b.Face)
}

func attachWires(d *inp.Deck, s *Solver, dc *grid.DenseCoefficients) error {
	for _, wd := range d.Wires {
		w, err := wire.NewWire(s.Mesh, wd.Name, toBBox(wd.Box), wd.Radius, endType(wd.EndLo), endType(wd.EndHi), s.Dt)
		if err != nil {
			return err
		}
		w.PaintMedium(dc, s.Mesh, s.Grid.Scaling)
	}
	return nil
}

func endType(name string) wire.EndType {
	switch name {
	case "shorted":
		return wire.EndShorted
	case "through":
		return wire.EndThrough
	default:
		return wire.EndOpen
	}
}

func attachDebyeBlocks(d *inp.Deck, s *Solver, table *medium.Table) error {
	for _, blk := range d.Blocks {
		idx, ok := table.Index(blk.Medium)
		if !ok {
			continue
		}
		m := table.Get(idx)
		if m.Kind != medium.Debye {
			continue
		}
		box := toBBox(blk.Box)
		var flim [3]grid.FieldLimits
		for c := grid.EX; c <= grid.EZ; c++ {
			flim[c] = grid.SetFieldLimits(box, [6]bool{true, true, true, true, true, true})
		}
		b, err := debye.NewBlock(m, flim)
		if err != nil {
			return err
		}
		s.DebyeBlocks = append(s.DebyeBlocks, b)
	}
	return nil
}

func buildWaveforms(d *inp.Deck, dt float64) (map[string]waveform.Model, error) {
	out := make(map[string]waveform.Model, len(d.Waveforms))
	for _, wd := range d.Waveforms {
		m, err := waveform.New(wd.Kind)
		if err != nil {
			return nil, err
		}
		if ext, ok := m.(*waveform.External); ok {
			ext.FileName = wd.File
		}
		var prms fun.Prms
		if wd.Amplitude != 0 {
			prms = append(prms, &fun.Prm{N: "size", V: wd.Amplitude})
		}
		if wd.Width != 0 {
			prms = append(prms, &fun.Prm{N: "width", V: wd.Width})
		}
		if wd.Freq != 0 {
			prms = append(prms, &fun.Prm{N: "frequency", V: wd.Freq})
		}
		if err := m.Init(dt, prms); err != nil {
			return nil, chk.Err("engine: waveform %q: %v", wd.Name, err)
		}
		out[wd.Name] = m
	}
	return out, nil
}

func attachSources(d *inp.Deck, s *Solver, waveforms map[string]waveform.Model) error {
	for _, sd := range d.Sources {
		wf, ok := waveforms[sd.Waveform]
		if !ok {
			return chk.Err("engine: source %q references unknown waveform %q", sd.Name, sd.Waveform)
		}
		c, ok := componentByName[sd.Component]
		if !ok {
			return chk.Err("engine: source %q has unknown component %q", sd.Name, sd.Component)
		}
		kind, ok := sourceKindByName[sd.Kind]
		if !ok {
			return chk.Err("engine: source %q has unknown kind %q", sd.Name, sd.Kind)
		}
		src, err := source.NewSource(kind, c, toBBox(sd.Box), wf, sd.Delay, sd.Amplitude, sd.Hard, s.Mesh, sd.Resistance)
		if err != nil {
			return err
		}
		if kind == source.KindVoltage {
			dc := s.Grid.Coeffs.(*grid.DenseCoefficients)
			if err := src.PaintVoltageMedium(s.Mesh, dc, s.Grid.Scaling, s.Dt); err != nil {
				return err
			}
		}
		s.Sources = append(s.Sources, src)
	}
	return nil
}

var sourceKindByName = map[string]source.Kind{
	"efield":         source.KindEfield,
	"surfacecurrent": source.KindSurfaceCurrent,
	"current":        source.KindCurrent,
	"currentmoment":  source.KindCurrentMoment,
	"voltage":        source.KindVoltage,
}

func attachPlaneWaves(d *inp.Deck, s *Solver, waveforms map[string]waveform.Model, dt float64) error {
	for _, pw := range d.PlaneWaves {
		wf, ok := waveforms[pw.Waveform]
		if !ok {
			return chk.Err("engine: plane wave %q references unknown waveform %q", pw.Name, pw.Waveform)
		}
		var active [6]bool
		if len(pw.ActiveFaces) == 0 {
			active = [6]bool{true, true, true, true, true, true}
		} else {
			for _, f := range pw.ActiveFaces {
				if face, ok := faceByName[f]; ok {
					active[face] = true
				}
			}
		}
		nPML := pw.AuxPMLLayers
		if nPML <= 0 {
			nPML = 10
		}
		injector := planewave.NewInjector(s.Mesh, toBBox(pw.Box), active,
			pw.ThetaDeg*math.Pi/180, pw.PhiDeg*math.Pi/180, pw.EtaDeg*math.Pi/180,
			pw.Amplitude, wf, pw.Delay, dt, nPML, wf)
		s.PlaneWaves = append(s.PlaneWaves, injector)
	}
	return nil
}

// attachObservers builds every observer directly at its NewTimeObserver/
// NewFreqObserver call site: the ascii/binary writer types are
// unexported in package observer, so a value of either can only be
// threaded through without ever being named outside that package.
func attachObservers(d *inp.Deck, s *Solver, dt float64) error {
	for _, od := range d.Observers {
		quantity, ok := quantityByName[od.Quantity]
		if !ok {
			return chk.Err("engine: observer %q has unknown quantity %q", od.Name, od.Quantity)
		}
		var o *observer.Observer
		var err error
		switch {
		case od.Domain == "freq" && od.Encoding == "binary":
			w, werr := observer.NewBinaryWriter(od.File)
			if werr != nil {
				return werr
			}
			o, err = observer.NewFreqObserver(od.Name, toBBox(od.Box), quantity, s.Mesh, od.Freqs, dt, w)
		case od.Domain == "freq":
			w, werr := observer.NewASCIIWriter(od.File)
			if werr != nil {
				return werr
			}
			o, err = observer.NewFreqObserver(od.Name, toBBox(od.Box), quantity, s.Mesh, od.Freqs, dt, w)
		case od.Encoding == "binary":
			w, werr := observer.NewBinaryWriter(od.File)
			if werr != nil {
				return werr
			}
			o, err = observer.NewTimeObserver(od.Name, toBBox(od.Box), quantity, s.Mesh, w)
		default:
			w, werr := observer.NewASCIIWriter(od.File)
			if werr != nil {
				return werr
			}
			o, err = observer.NewTimeObserver(od.Name, toBBox(od.Box), quantity, s.Mesh, w)
		}
		if err != nil {
			return err
		}
		s.Observers = append(s.Observers, o)
	}
	return nil
}

var quantityByName = map[string]observer.Quantity{
	"efield":   observer.QuantityEField,
	"hfield":   observer.QuantityHField,
	"ehfield":  observer.QuantityEHField,
	"poynting": observer.QuantityPoynting,
	"voltage":  observer.QuantityVoltage,
	"current":  observer.QuantityCurrent,
}
