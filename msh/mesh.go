// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import "github.com/cpmech/gosl/chk"

// Mesh owns the nodes, regions and elements of one discretised 2D domain.
// No entity is shared across meshes.
type Mesh struct {
	Nodes    []*Node
	Regions  []*Region
	Elements []*Element
}

// NewMesh ties nodes, regions and elements together and verifies the
// construction invariants: node ids must equal their positions, Dirichlet
// nodes must carry a prescribed value and, at construction, only Dirichlet
// nodes may carry one.
func NewMesh(nodes []*Node, regions []*Region, elements []*Element) (o *Mesh, err error) {
	o = &Mesh{Nodes: nodes, Regions: regions, Elements: elements}
	for i, n := range o.Nodes {
		if n.Id != i {
			return nil, chk.Err("node at position %d has id=%d; ids must equal positions", i, n.Id)
		}
		if n.Boundary && !n.HasVal {
			return nil, chk.Err("boundary node %d has no prescribed value", n.Id)
		}
		if !n.Boundary && n.HasVal {
			return nil, chk.Err("node %d carries a prescribed value but is not marked as boundary", n.Id)
		}
	}
	return
}

// SetSolution writes the solution vector back into the nodal values.
// Dirichlet nodes keep their prescribed values; the pinned rows of the
// assembly guarantee the solver returns exactly those values there.
func (o *Mesh) SetSolution(x []float64) (err error) {
	if len(x) != len(o.Nodes) {
		return chk.Err("solution vector has %d entries; mesh has %d nodes", len(x), len(o.Nodes))
	}
	for i, n := range o.Nodes {
		if !n.Boundary {
			n.SetVal(x[i])
		}
	}
	return
}

// Grads returns the per-element gradient magnitudes of the current nodal
// values, for diagnostic or visualization consumption
func (o *Mesh) Grads() (g []float64) {
	g = make([]float64, len(o.Elements))
	for i, e := range o.Elements {
		g[i] = e.Grad()
	}
	return
}
