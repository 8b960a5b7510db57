// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the assembly and solve pipeline for steady-state
// anisotropic diffusion-convection problems on 2D triangular meshes
package fem

import (
	"github.com/cpmech/difc/inp"
	"github.com/cpmech/difc/mdl"
	"github.com/cpmech/difc/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// System holds the assembled global system: the sparse coefficient matrix
// in triplet (accumulation) form and the dense right-hand side vector. The
// conversion to the solver's compressed form is a separate phase performed
// by the solver adapters.
type System struct {
	Kb *la.Triplet // coefficient matrix; row/column indices are node ids
	Fb []float64   // right-hand side vector
}

// Assemble builds the global system for the given diffusion property key
// and uniform convection velocity. Per element, per local node pair:
//
//   - the source share contributes negatively to the right-hand side;
//   - Dirichlet rows are pinned: nothing is accumulated into them and the
//     row becomes the identity with the prescribed value on the rhs;
//   - interior-row entries against a Dirichlet column move the known
//     contribution to the rhs instead of the matrix;
//   - interior-row entries against interior columns accumulate.
//
// Pinning is idempotent: the unit diagonal is emitted once per Dirichlet
// node after the element loop, so elements sharing a boundary node cannot
// accumulate into its row.
func Assemble(m *msh.Mesh, mdb *inp.MatDb, prop string, vx, vy float64) (sys *System, err error) {

	// resolve one model per region; unknown materials or properties fail here
	reg2mdl := make(map[*msh.Region]mdl.Model)
	for _, reg := range m.Regions {
		reg2mdl[reg], err = mdb.Get(reg.MatName, prop)
		if err != nil {
			return nil, chk.Err("region %d: %v", reg.Id, err)
		}
	}

	// allocate system
	nn := len(m.Nodes)
	sys = &System{Kb: new(la.Triplet), Fb: make([]float64, nn)}
	sys.Kb.Init(nn, nn, 9*len(m.Elements)+nn)

	// element loop
	for _, e := range m.Elements {
		Ke := e.CalcDiffMat(reg2mdl[e.Reg])
		Ce := e.CalcConvMat(vx, vy)
		Se := e.SourceVec()
		for i, ni := range e.Node {
			sys.Fb[ni.Id] -= Se[i]
			if ni.Boundary {
				continue // pinned row
			}
			for j, nj := range e.Node {
				kij := Ke[i][j] + Ce[i][j]
				if nj.Boundary {
					sys.Fb[ni.Id] -= kij * nj.Val // known value: move to rhs
				} else {
					sys.Kb.Put(ni.Id, nj.Id, kij)
				}
			}
		}
	}

	// pin Dirichlet rows
	for _, n := range m.Nodes {
		if n.Boundary {
			sys.Kb.Put(n.Id, n.Id, 1)
			sys.Fb[n.Id] = n.Val
		}
	}
	return
}
