// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/difc/mdl"
	"github.com/cpmech/difc/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Element is a 3-node linear triangle referencing mesh-owned nodes and one
// region. The node ordering determines the sign of the area; the signed
// area (not its absolute value) is the divisor in both the diffusion and
// the gradient computations.
type Element struct {

	// input
	Id   int      // identity
	Node [3]*Node // connectivity; non-owning references to mesh nodes
	Reg  *Region  // non-owning reference to the mesh region

	// derived (immutable after construction)
	Area float64    // signed area
	B    [3]float64 // shape function gradient coefficients in x (times 2A)
	C    [3]float64 // shape function gradient coefficients in y (times 2A)

	// scratchpad
	ke   [][]float64 // local diffusion matrix
	ce   [][]float64 // local convection matrix
	kten [][]float64 // rotated material tensor
}

// NewElement computes the cached geometric constants of one element.
// Degenerate triangles are fatal: mesh construction must be aborted.
func NewElement(id int, nodes [3]*Node, reg *Region) (o *Element, err error) {
	geo, err := shp.NewTri3(
		[3]float64{nodes[0].X, nodes[1].X, nodes[2].X},
		[3]float64{nodes[0].Y, nodes[1].Y, nodes[2].Y},
	)
	if err != nil {
		return nil, chk.Err("element %d: %v", id, err)
	}
	o = &Element{Id: id, Node: nodes, Reg: reg, Area: geo.Area, B: geo.B, C: geo.C}
	o.ke = la.MatAlloc(3, 3)
	o.ce = la.MatAlloc(3, 3)
	o.kten = la.MatAlloc(2, 2)
	return
}

// state returns the element-averaged nodal value for state-dependent
// property evaluation, or nil while any nodal value is unset
func (o *Element) state() *float64 {
	for _, n := range o.Node {
		if !n.HasVal {
			return nil
		}
	}
	u := (o.Node[0].Val + o.Node[1].Val + o.Node[2].Val) / 3.0
	return &u
}

// CalcDiffMat computes the local diffusion matrix
//
//   Ke[j][i] = -(b[i],c[i])·K·(b[j],c[j])ᵀ / (4A)
//
// with the material tensor K evaluated at the element-averaged state: a
// single-pass linearisation, not an iterative nonlinear solve
func (o *Element) CalcDiffMat(model mdl.Model) [][]float64 {
	o.Reg.CalcTensor(o.kten, model, o.state())
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			o.ke[j][i] = -(o.B[i]*(o.kten[0][0]*o.B[j]+o.kten[0][1]*o.C[j]) +
				o.C[i]*(o.kten[1][0]*o.B[j]+o.kten[1][1]*o.C[j])) / (4.0 * o.Area)
		}
	}
	return o.ke
}

// CalcConvMat computes the local convection matrix
//
//   Ce[j][i] = -(b[i],c[i])·(vx,vy)ᵀ / 6
//
// returning the zero matrix when both velocity components vanish
func (o *Element) CalcConvMat(vx, vy float64) [][]float64 {
	la.MatFill(o.ce, 0)
	if vx == 0 && vy == 0 {
		return o.ce
	}
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			o.ce[j][i] = -(o.B[i]*vx + o.C[i]*vy) / 6.0
		}
	}
	return o.ce
}

// SourceVec returns the per-node share of the region's uniform source term
func (o *Element) SourceVec() [3]float64 {
	s := o.Reg.Source * o.Area / 3.0
	return [3]float64{s, s, s}
}

// Grad returns the magnitude of the nodal-value gradient over this element,
// a diagnostic derived quantity not used in assembly
func (o *Element) Grad() float64 {
	var gx, gy float64
	for i, n := range o.Node {
		gx += n.Val * o.B[i]
		gy += n.Val * o.C[i]
	}
	return math.Sqrt(gx*gx+gy*gy) / (2.0 * o.Area)
}
