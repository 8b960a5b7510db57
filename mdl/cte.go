// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Cte implements a state-independent (linear) property:
//
//   kten = diag(kx, ky)
//
type Cte struct {
	Kcte [][]float64
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
}

// Init initialises this structure
func (o *Cte) Init(prms fun.Prms) (err error) {
	o.Kcte, err = calcKcte(prms)
	return
}

// Kval returns the property magnitude; the state is ignored
func (o *Cte) Kval(state *float64) float64 {
	return 1.0
}

// Kten computes kten = Kcte
func (o *Cte) Kten(kten [][]float64, state *float64) {
	la.MatCopy(kten, 1, o.Kcte)
}
