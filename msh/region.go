// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/difc/mdl"
	"github.com/cpmech/gosl/la"
)

// Region holds one material assignment: a material name (key into the
// material database), the orientation of the material's principal
// directions and a uniform source term. Regions are owned by the mesh and
// referenced by the elements that belong to them.
type Region struct {

	// input
	Id          int     // identity
	MatName     string  // material name
	Orientation float64 // orientation angle [rad]
	Source      float64 // uniform source term

	// derived
	T [][]float64 // 2x2 rotation matrix; computed once, reused for every tensor evaluation

	// scratchpad
	kd [][]float64 // unrotated (diagonal) tensor
	kr [][]float64 // kd * Tᵀ
}

// NewRegion returns a region with the rotation matrix precomputed
func NewRegion(id int, matName string, orientation, source float64) (o *Region) {
	o = &Region{Id: id, MatName: matName, Orientation: orientation, Source: source}
	co, si := math.Cos(orientation), math.Sin(orientation)
	o.T = [][]float64{
		{co, -si},
		{si, co},
	}
	o.kd = la.MatAlloc(2, 2)
	o.kr = la.MatAlloc(2, 2)
	return
}

// CalcTensor computes the rotated material tensor
//
//   kten = T * kd * Tᵀ
//
// where kd is the model's diagonal tensor evaluated at the given state
// (nil state = reference behavior). The result is symmetric by construction.
func (o *Region) CalcTensor(kten [][]float64, model mdl.Model, state *float64) {
	model.Kten(o.kd, state)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			o.kr[i][j] = o.kd[i][0]*o.T[j][0] + o.kd[i][1]*o.T[j][1]
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			kten[i][j] = o.T[i][0]*o.kr[0][j] + o.T[i][1]*o.kr[1][j]
		}
	}
}
