// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sibc

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ReadPoleResidueFile parses a pole-residue matrix file, per spec.md
// §6's format: a header line "m n", then for each matrix element in
// row-major order a line "numPoles asymptote" followed by numPoles
// lines of "Re(pole) Im(pole) Re(residue) Im(residue)". Returns the
// matrix built with recursive-convolution coefficients for dt.
func ReadPoleResidueFile(fileName string, dt float64) (*Matrix, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, chk.Err("cannot open pole-residue file %q: %v", fileName, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	next := func() ([]string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return strings.Fields(line), true
		}
		return nil, false
	}

	header, ok := next()
	if !ok || len(header) < 2 {
		return nil, chk.Err("pole-residue file %q: missing header line", fileName)
	}
	m, e1 := strconv.Atoi(header[0])
	n, e2 := strconv.Atoi(header[1])
	if e1 != nil || e2 != nil {
		return nil, chk.Err("pole-residue file %q: malformed header %q", fileName, header)
	}
	if (m != 2 && m != 4) || m != n {
		return nil, chk.Err("pole-residue file %q: matrix must be 2x2 or 4x4, got %dx%d", fileName, m, n)
	}

	asymp := make([][]float64, m)
	poles := make([][][]Pole, m)
	for i := 0; i < m; i++ {
		asymp[i] = make([]float64, n)
		poles[i] = make([][]Pole, n)
		for j := 0; j < n; j++ {
			head, ok := next()
			if !ok || len(head) < 2 {
				return nil, chk.Err("pole-residue file %q: missing element (%d,%d) header", fileName, i, j)
			}
			np, e1 := strconv.Atoi(head[0])
			as, e2 := strconv.ParseFloat(head[1], 64)
			if e1 != nil || e2 != nil || np < 0 {
				return nil, chk.Err("pole-residue file %q: malformed element (%d,%d) header %q", fileName, i, j, head)
			}
			asymp[i][j] = as
			elemPoles := make([]Pole, np)
			for p := 0; p < np; p++ {
				row, ok := next()
				if !ok || len(row) < 4 {
					return nil, chk.Err("pole-residue file %q: missing pole %d of element (%d,%d)", fileName, p, i, j)
				}
				vals := make([]float64, 4)
				for idx, tok := range row[:4] {
					v, err := strconv.ParseFloat(tok, 64)
					if err != nil {
						return nil, chk.Err("pole-residue file %q: malformed pole line %q", fileName, row)
					}
					vals[idx] = v
				}
				elemPoles[p] = Pole{
					Pole:    complex(vals[0], vals[1]),
					Residue: complex(vals[2], vals[3]),
				}
			}
			poles[i][j] = elemPoles
		}
	}
	if err := sc.Err(); err != nil {
		return nil, chk.Err("error scanning %q: %v", fileName, err)
	}

	if m == 2 {
		return expandIsotropic(asymp, poles, dt)
	}
	return NewMatrix(4, 4, asymp, poles, dt)
}

// expandIsotropic embeds a 2x2 isotropic (TM==TE) pole-residue record
// into the block-diagonal 4x4 anisotropic form (spec.md §4.6).
func expandIsotropic(asymp2 [][]float64, poles2 [][][]Pole, dt float64) (*Matrix, error) {
	asymp := make([][]float64, 4)
	poles := make([][][]Pole, 4)
	for i := range asymp {
		asymp[i] = make([]float64, 4)
		poles[i] = make([][]Pole, 4)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			asymp[i][j] = asymp2[i][j]
			poles[i][j] = poles2[i][j]
			asymp[i+2][j+2] = asymp2[i][j]
			poles[i+2][j+2] = poles2[i][j]
		}
	}
	return NewMatrix(4, 4, asymp, poles, dt)
}
