// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// difc solves steady-state anisotropic diffusion-convection equations over
// 2D triangular meshes using the linear finite element method
package main

import (
	"github.com/cpmech/difc/fem"
	"github.com/cpmech/difc/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// input arguments
	simfilepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	writesol := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\ndifc -- 2D diffusion-convection FE solver\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation filename path", "simfilepath", simfilepath,
			"show messages", "verbose", verbose,
			"write solution file", "writesol", writesol,
		))
	}

	// analysis data
	analysis, err := fem.NewMain(simfilepath, verbose)
	if err != nil {
		chk.Panic("cannot initialise analysis:\n%v", err)
	}

	// solve
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// write solution
	if writesol {
		inp.WriteSolution(analysis.MshDir(), analysis.Msh)
		if verbose {
			io.Pf("> solution written to %s\n", analysis.MshDir())
		}
	}
	if verbose {
		io.PfGreen("> Success\n")
	}
}
