// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements scalar material property models for
// diffusion-convection problems
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Model defines a scalar material property which may depend on the solution
// state; e.g. a field-dependent permeability. Kval must accept a nil state,
// in which case the reference (linear) value is returned. Kten fills the
// unrotated 2x2 tensor
//
//   kten = Kval(state) * diag(kx, ky)
//
// where the diagonal comes from the 'kx' and 'ky' parameters, or from the
// isotropic 'k' parameter.
type Model interface {
	Init(prms fun.Prms) error
	Kval(state *float64) float64
	Kten(kten [][]float64, state *float64)
}

// New allocates a model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdl' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// calcKcte builds the diagonal direction tensor from either both 'kx' and
// 'ky' or the isotropic 'k' parameter
func calcKcte(prms fun.Prms) (kcte [][]float64, err error) {
	kcte = la.MatAlloc(2, 2)
	values, found := prms.GetValues([]string{"kx", "ky"})
	if !utl.BoolAllTrue(found) {
		p := prms.Find("k")
		if p == nil {
			return nil, chk.Err("either 'k' (isotropic) or both 'kx' and 'ky' must be given in material parameters")
		}
		kcte[0][0], kcte[1][1] = p.V, p.V
		return
	}
	kcte[0][0], kcte[1][1] = values[0], values[1]
	return
}
