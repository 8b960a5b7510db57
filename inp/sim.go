// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global analysis data
type Data struct {
	Desc    string `json:"desc"`    // description of the analysis
	MshDir  string `json:"mshdir"`  // directory with the mesh file set
	MatFile string `json:"matfile"` // materials database (.mat) filename
}

// SolveData holds data defining one solve
type SolveData struct {
	Prop string  `json:"prop"` // material property key; e.g. "PERMEABILITY"
	Vx   float64 `json:"vx"`   // uniform convection velocity in x (default zero: pure diffusion)
	Vy   float64 `json:"vy"`   // uniform convection velocity in y
}

// LinSolData holds data for the linear solver
type LinSolData struct {
	Name      string `json:"name"`      // "umfpack", "mumps" or "dense"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Timing    bool   `json:"timing"`    // show timing statistics
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// Simulation holds all input data for one analysis
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // global analysis data
	Solve  SolveData  `json:"solve"`  // solve data
	LinSol LinSolData `json:"linsol"` // linear solver data

	// derived
	DirIn string `json:"-"` // directory of the .sim file; relative paths resolve against it
}

// ReadSim reads a simulation file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	o = new(Simulation)
	o.LinSol.SetDefault()
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	o.DirIn = filepath.Dir(simfilepath)
	if o.Data.MshDir == "" {
		return nil, chk.Err("'mshdir' must be given in %q", simfilepath)
	}
	if o.Data.MatFile == "" {
		return nil, chk.Err("'matfile' must be given in %q", simfilepath)
	}
	if o.Solve.Prop == "" {
		return nil, chk.Err("'prop' (material property key) must be given in %q", simfilepath)
	}
	return
}
