// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"gonum.org/v1/gonum/mat"
)

// Dense implements LinSolver with gonum's LU decomposition on a dense copy
// of the coefficient matrix. It needs no external sparse libraries and
// reports singular and ill-conditioned systems; intended for small systems
// and tests.
type Dense struct{}

// Solve converts the triplet to dense form and solves with LU
func (o *Dense) Solve(sys *System) (x []float64, err error) {
	K := sys.Kb.ToMatrix(nil).ToDense()
	n := len(sys.Fb)
	A := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, K[i][j])
		}
	}
	var lu mat.LU
	lu.Factorize(A)
	var sol mat.VecDense
	err = lu.SolveVecTo(&sol, false, mat.NewVecDense(n, sys.Fb))
	if err != nil {
		return nil, chk.Err("dense solve failed: system is singular or ill-conditioned:\n%v", err)
	}
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = sol.AtVec(i)
	}
	return
}
