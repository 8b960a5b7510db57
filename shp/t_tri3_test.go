// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_tri301(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tri301. unit right triangle")

	o, err := NewTri3([3]float64{0, 1, 0}, [3]float64{0, 0, 1})
	if err != nil {
		tst.Errorf("NewTri3 failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "area", 1e-15, o.Area, 0.5)
	chk.Vector(tst, "b", 1e-15, o.B[:], []float64{-1, 1, 0})
	chk.Vector(tst, "c", 1e-15, o.C[:], []float64{-1, 0, 1})
}

func Test_tri302(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tri302. signed area and shoelace reference")

	x := [3]float64{0.2, 1.7, 0.9}
	y := [3]float64{0.1, 0.4, 1.3}
	o, err := NewTri3(x, y)
	if err != nil {
		tst.Errorf("NewTri3 failed:\n%v", err)
		return
	}

	// shoelace reference
	ref := ((x[1]-x[0])*(y[2]-y[0]) - (x[2]-x[0])*(y[1]-y[0])) / 2.0
	chk.Scalar(tst, "area (shoelace)", 1e-15, o.Area, ref)

	// swapping two vertices flips the sign, not the magnitude
	r, err := NewTri3([3]float64{x[0], x[2], x[1]}, [3]float64{y[0], y[2], y[1]})
	if err != nil {
		tst.Errorf("NewTri3 failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "swapped area", 1e-15, r.Area, -o.Area)
	chk.Scalar(tst, "swapped magnitude", 1e-15, math.Abs(r.Area), math.Abs(o.Area))
}

func Test_tri303(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tri303. degenerate triangles")

	if _, err := NewTri3([3]float64{0, 1, 2}, [3]float64{0, 1, 2}); err == nil {
		tst.Errorf("collinear vertices must fail")
		return
	}
	if _, err := NewTri3([3]float64{0.5, 0.5, 0.5}, [3]float64{2, 2, 2}); err == nil {
		tst.Errorf("coincident vertices must fail")
	}
}
