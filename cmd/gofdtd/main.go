// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gofdtd/engine"
	"github.com/cpmech/gofdtd/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\ngofdtd -- a finite-difference time-domain field solver\n\n")

	// deck filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a deck filename. Ex.: cavity.fdtd\n")
	}
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".fdtd"
	}

	// read and validate the deck
	deck, err := inp.ReadDeck(fnamepath)
	if err != nil {
		chk.Panic("%v\n", err)
	}

	// build the solver
	solver, err := engine.Load(deck)
	if err != nil {
		chk.Panic("%v\n", err)
	}

	// run
	io.Pf("running %d steps, dt=%v s\n", deck.Simulation.NSteps, solver.Dt)
	solver.Run()
	io.Pf("done\n")
}
