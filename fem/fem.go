// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"path/filepath"

	"github.com/cpmech/difc/inp"
	"github.com/cpmech/difc/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for one analysis
type Main struct {
	Sim     *inp.Simulation // simulation input data
	Mdb     *inp.MatDb      // materials database
	Msh     *msh.Mesh       // the mesh
	Solver  LinSolver       // linear solver adapter
	Verbose bool            // show messages
}

// NewMain reads all input data and prepares an analysis
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	o = new(Main)
	o.Verbose = verbose
	o.Sim, err = inp.ReadSim(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file:\n%v", err)
	}
	o.Mdb, err = inp.ReadMat(o.Sim.DirIn, o.Sim.Data.MatFile)
	if err != nil {
		return nil, chk.Err("cannot read materials database:\n%v", err)
	}
	o.Msh, err = inp.ReadMsh(o.MshDir())
	if err != nil {
		return nil, chk.Err("cannot read mesh:\n%v", err)
	}
	o.Solver = NewSolver(&o.Sim.LinSol)
	if o.Verbose {
		io.Pf("> %d nodes, %d regions, %d elements\n",
			len(o.Msh.Nodes), len(o.Msh.Regions), len(o.Msh.Elements))
	}
	return
}

// MshDir returns the directory holding the mesh file set
func (o *Main) MshDir() string {
	return filepath.Join(o.Sim.DirIn, o.Sim.Data.MshDir)
}

// Run assembles and solves the system, writing the solution back into the
// nodal values
func (o *Main) Run() (err error) {
	return Solve(o.Msh, o.Mdb, o.Sim.Solve.Prop, o.Sim.Solve.Vx, o.Sim.Solve.Vy, o.Solver, o.Verbose)
}

// Solve runs the pipeline on a mesh: assemble the global system, call the
// linear solver and write the solution back into the nodes. The prescribed
// values of Dirichlet nodes are left untouched.
func Solve(m *msh.Mesh, mdb *inp.MatDb, prop string, vx, vy float64, solver LinSolver, verbose bool) (err error) {
	if verbose {
		io.Pf("> assembling global system\n")
	}
	sys, err := Assemble(m, mdb, prop, vx, vy)
	if err != nil {
		return chk.Err("assembly failed:\n%v", err)
	}
	if verbose {
		io.Pf("> solving linear system\n")
	}
	x, err := solver.Solve(sys)
	if err != nil {
		return chk.Err("linear solve failed:\n%v", err)
	}
	return m.SetSolution(x)
}
