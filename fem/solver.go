// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/difc/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LinSolver adapts an external linear solver: it consumes the assembled
// system and returns the dense solution vector x with Kb·x ≈ Fb. Singular
// or ill-conditioned systems (e.g. a connected component with no boundary
// node) must surface as an error, never as a silently wrong answer.
type LinSolver interface {
	Solve(sys *System) (x []float64, err error)
}

// NewSolver allocates a linear solver adapter from the input data: gosl's
// direct sparse solvers ("umfpack", "mumps") or the dense fallback ("dense")
func NewSolver(data *inp.LinSolData) LinSolver {
	if data.Name == "dense" {
		return new(Dense)
	}
	return &Sparse{Name: data.Name, Symmetric: data.Symmetric, Verbose: data.Verbose, Timing: data.Timing}
}

// Sparse implements LinSolver using gosl's direct sparse solvers
type Sparse struct {
	Name      string // "umfpack" or "mumps"
	Symmetric bool   // use symmetric solver
	Verbose   bool   // verbose?
	Timing    bool   // show timing statistics
}

// Solve initialises the solver with the triplet, factorises and solves
func (o *Sparse) Solve(sys *System) (x []float64, err error) {
	ls := la.GetSolver(o.Name)
	defer ls.Free()
	err = ls.InitR(sys.Kb, o.Symmetric, o.Verbose, o.Timing)
	if err != nil {
		return nil, chk.Err("cannot initialise linear solver:\n%v", err)
	}
	err = ls.Fact()
	if err != nil {
		return nil, chk.Err("factorisation failed; the system may be singular:\n%v", err)
	}
	x = make([]float64, len(sys.Fb))
	err = ls.SolveR(x, sys.Fb, false)
	if err != nil {
		return nil, chk.Err("solve failed:\n%v", err)
	}
	return
}
