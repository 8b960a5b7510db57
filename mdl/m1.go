// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// M1 implements a state-dependent property with a cubic polynomial response
//
//   kten = kval(u) * diag(kx, ky)
//
//   kval = a0  +  a1 u  +  a2 u²  +  a3 u³
//
// A nil state evaluates the reference behavior kval = a0.
type M1 struct {
	a0, a1, a2, a3 float64
	Kcte           [][]float64
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises this structure
func (o *M1) Init(prms fun.Prms) (err error) {
	prms.Connect(&o.a0, "a0", "a0 M1 model")
	prms.Connect(&o.a1, "a1", "a1 M1 model")
	prms.Connect(&o.a2, "a2", "a2 M1 model")
	prms.Connect(&o.a3, "a3", "a3 M1 model")
	o.Kcte, err = calcKcte(prms)
	return
}

// Kval computes k(u); a nil state returns the reference value a0
func (o *M1) Kval(state *float64) float64 {
	if state == nil {
		return o.a0
	}
	u := *state
	return o.a0 + o.a1*u + o.a2*u*u + o.a3*u*u*u
}

// Kten computes kten = kval(u) * Kcte
func (o *M1) Kten(kten [][]float64, state *float64) {
	la.MatCopy(kten, o.Kval(state), o.Kcte)
}
