// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
)

// writer is the output-format strategy an Observer writes through,
// mirroring the ASCII/BINARY split of spec.md §6's observer record.
type writer interface {
	writeTime(step int, t float64, values []float64) error
	writeSpectrum(freqs, re, im []float64) error
	close() error
}

// asciiWriter writes one line per step: the step index and t followed
// by every sampled value, space separated.
type asciiWriter struct {
	f *os.File
	w *bufio.Writer
}

// NewASCIIWriter opens fileName for writing, truncating any existing
// content.
func NewASCIIWriter(fileName string) (*asciiWriter, error) {
	f, err := os.Create(fileName)
	if err != nil {
		return nil, chk.Err("observer: cannot create %q: %v", fileName, err)
	}
	return &asciiWriter{f: f, w: bufio.NewWriter(f)}, nil
}

func (a *asciiWriter) writeTime(step int, t float64, values []float64) error {
	if _, err := fmt.Fprintf(a.w, "%d %.15e", step, t); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(a.w, " %.15e", v); err != nil {
			return err
		}
	}
	_, err := a.w.WriteString("\n")
	return err
}

func (a *asciiWriter) writeSpectrum(freqs, re, im []float64) error {
	for i, f := range freqs {
		mag := math.Hypot(re[i], im[i])
		phase := math.Atan2(im[i], re[i])
		if _, err := fmt.Fprintf(a.w, "%.15e %.15e %.15e %.15e %.15e\n", f, re[i], im[i], mag, phase); err != nil {
			return err
		}
	}
	return nil
}

func (a *asciiWriter) close() error {
	if err := a.w.Flush(); err != nil {
		return err
	}
	return a.f.Close()
}

// binaryWriter writes fixed-width little-endian float64 records: one
// per step for time domain (t, then every value), one per frequency
// for the spectrum dump (f, re, im).
type binaryWriter struct {
	f *os.File
}

// NewBinaryWriter opens fileName for writing, truncating any existing
// content.
func NewBinaryWriter(fileName string) (*binaryWriter, error) {
	f, err := os.Create(fileName)
	if err != nil {
		return nil, chk.Err("observer: cannot create %q: %v", fileName, err)
	}
	return &binaryWriter{f: f}, nil
}

func (b *binaryWriter) writeTime(step int, t float64, values []float64) error {
	row := make([]float64, 0, 1+len(values))
	row = append(row, t)
	row = append(row, values...)
	return binary.Write(b.f, binary.LittleEndian, row)
}

func (b *binaryWriter) writeSpectrum(freqs, re, im []float64) error {
	for i, f := range freqs {
		row := [3]float64{f, re[i], im[i]}
		if err := binary.Write(b.f, binary.LittleEndian, row[:]); err != nil {
			return err
		}
	}
	return nil
}

func (b *binaryWriter) close() error { return b.f.Close() }
