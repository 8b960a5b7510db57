// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the data model of 2D triangular meshes for
// diffusion-convection problems: nodes, regions, elements and the mesh
// that owns them
package msh

// Node holds the data of one mesh vertex. The Id doubles as the global
// degree-of-freedom index: Mesh.Nodes[i].Id == i must hold; the assembly
// and the solution write-back rely on this.
type Node struct {
	Id       int     // identity; equals the position in Mesh.Nodes
	X, Y     float64 // coordinates
	Boundary bool    // Dirichlet-fixed node; Val is prescribed and is never overwritten by a solve
	Val      float64 // prescribed value (boundary) or solution value
	HasVal   bool    // Val has been set; unset values are never fed to state-dependent models
}

// NewNode returns a node with no value set
func NewNode(id int, x, y float64) *Node {
	return &Node{Id: id, X: x, Y: y}
}

// SetBoundary marks this node as Dirichlet-fixed with the given prescribed value
func (o *Node) SetBoundary(value float64) {
	o.Boundary = true
	o.Val = value
	o.HasVal = true
}

// SetVal sets the nodal value
func (o *Node) SetVal(value float64) {
	o.Val = value
	o.HasVal = true
}
