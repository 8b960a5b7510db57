// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the geometry kernel for 3-node linear triangles
package shp

import "github.com/cpmech/gosl/chk"

// Tri3 holds the geometric constants of a 3-node linear triangle: the signed
// area and the shape function gradient coefficients b and c. The coefficients
// are the cyclic coordinate differences of the linear basis; the 2A scaling
// is applied by consumers, not here.
//
//   area = (x0*(y1-y2) + x1*(y2-y0) + x2*(y0-y1)) / 2
//   b[i] = y[i+1] - y[i+2]   (cyclic)
//   c[i] = x[i+2] - x[i+1]   (cyclic)
//
type Tri3 struct {
	Area float64    // signed area; the sign follows the vertex ordering
	B    [3]float64 // x-gradient coefficients of the linear basis (times 2A)
	C    [3]float64 // y-gradient coefficients of the linear basis (times 2A)
}

// NewTri3 computes the geometric constants of one triangle given its vertex
// coordinates. Degenerate (collinear) vertices yield a zero area and are an
// error; this must be caught before the area is used as a divisor anywhere.
func NewTri3(x, y [3]float64) (o *Tri3, err error) {
	o = new(Tri3)
	o.Area = (x[0]*(y[1]-y[2]) + x[1]*(y[2]-y[0]) + x[2]*(y[0]-y[1])) / 2.0
	if o.Area == 0 {
		return nil, chk.Err("invalid geometry: triangle with x=%v y=%v is degenerate", x, y)
	}
	o.B = [3]float64{y[1] - y[2], y[2] - y[0], y[0] - y[1]}
	o.C = [3]float64{x[2] - x[1], x[0] - x[2], x[1] - x[0]}
	return
}
