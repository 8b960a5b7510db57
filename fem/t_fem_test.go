// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/difc/inp"
	"github.com/cpmech/difc/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// matdbIso builds a database with one isotropic unit-conductivity material
func matdbIso(tst *testing.T) *inp.MatDb {
	mdb, err := inp.NewMatDb(inp.MatsData{
		&inp.Material{
			Name: "iso",
			Props: []*inp.Property{
				{Key: "CONDUCTIVITY", Model: "cte", Prms: fun.Prms{&fun.P{N: "k", V: 1}}},
			},
		},
	})
	if err != nil {
		tst.Fatalf("NewMatDb failed:\n%v", err)
	}
	return mdb
}

// grid9 builds a 3x3 grid of nodes over the unit square, with each of the
// four cells split into two counter-clockwise triangles. With withBC, the
// left edge is prescribed to zero and the right edge to one.
func grid9(tst *testing.T, withBC bool) *msh.Mesh {
	nodes := make([]*msh.Node, 9)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			id := j*3 + i
			nodes[id] = msh.NewNode(id, float64(i)*0.5, float64(j)*0.5)
		}
	}
	if withBC {
		for j := 0; j < 3; j++ {
			nodes[j*3].SetBoundary(0)
			nodes[j*3+2].SetBoundary(1)
		}
	}
	reg := msh.NewRegion(0, "iso", 0, 0)
	var elements []*msh.Element
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			v0 := j*3 + i
			v1, v2, v3 := v0+1, v0+4, v0+3
			for _, conn := range [][3]*msh.Node{
				{nodes[v0], nodes[v1], nodes[v2]},
				{nodes[v0], nodes[v2], nodes[v3]},
			} {
				e, err := msh.NewElement(len(elements), conn, reg)
				if err != nil {
					tst.Fatalf("NewElement failed:\n%v", err)
				}
				elements = append(elements, e)
			}
		}
	}
	m, err := msh.NewMesh(nodes, []*msh.Region{reg}, elements)
	if err != nil {
		tst.Fatalf("NewMesh failed:\n%v", err)
	}
	return m
}

func Test_assemble01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble01. fully prescribed system")

	// all three nodes Dirichlet: the system is the identity and the
	// solution reproduces the prescribed values exactly
	nodes := []*msh.Node{
		msh.NewNode(0, 0, 0),
		msh.NewNode(1, 1, 0),
		msh.NewNode(2, 0, 1),
	}
	nodes[0].SetBoundary(1)
	nodes[1].SetBoundary(2)
	nodes[2].SetBoundary(3)
	reg := msh.NewRegion(0, "iso", 0, 0)
	e, err := msh.NewElement(0, [3]*msh.Node{nodes[0], nodes[1], nodes[2]}, reg)
	if err != nil {
		tst.Fatalf("NewElement failed:\n%v", err)
	}
	m, err := msh.NewMesh(nodes, []*msh.Region{reg}, []*msh.Element{e})
	if err != nil {
		tst.Fatalf("NewMesh failed:\n%v", err)
	}

	sys, err := Assemble(m, matdbIso(tst), "CONDUCTIVITY", 0, 0)
	if err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}
	x, err := new(Dense).Solve(sys)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Vector(tst, "x", 1e-15, x, []float64{1, 2, 3})
}

func Test_assemble02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble02. unknown material and property")

	m := grid9(tst, true)
	mdb, err := inp.NewMatDb(inp.MatsData{
		&inp.Material{
			Name: "other",
			Props: []*inp.Property{
				{Key: "CONDUCTIVITY", Model: "cte", Prms: fun.Prms{&fun.P{N: "k", V: 1}}},
			},
		},
	})
	if err != nil {
		tst.Fatalf("NewMatDb failed:\n%v", err)
	}
	if _, err = Assemble(m, mdb, "CONDUCTIVITY", 0, 0); err == nil {
		tst.Errorf("Assemble with unknown material must fail")
		return
	}
	if _, err = Assemble(m, matdbIso(tst), "PERMEABILITY", 0, 0); err == nil {
		tst.Errorf("Assemble with unknown property must fail")
	}
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. linear profile across the unit square")

	m := grid9(tst, true)
	err := Solve(m, matdbIso(tst), "CONDUCTIVITY", 0, 0, new(Dense), false)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// the exact solution of the Laplace equation with u(0,y)=0 and
	// u(1,y)=1 is u = x; linear elements reproduce it exactly
	for _, n := range m.Nodes {
		chk.AnaNum(tst, "u = x", 1e-14, n.Val, n.X, false)
	}
	for _, g := range m.Grads() {
		chk.AnaNum(tst, "|grad u| = 1", 1e-14, g, 1.0, false)
	}
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. uniform boundary data")

	// constant prescribed value everywhere on the boundary and no source:
	// the field is constant and all gradients vanish
	m := grid9(tst, false)
	for _, n := range m.Nodes {
		if n.X == 0 || n.X == 1 || n.Y == 0 || n.Y == 1 {
			n.SetBoundary(0.7)
		}
	}
	err := Solve(m, matdbIso(tst), "CONDUCTIVITY", 0, 0, new(Dense), false)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	for _, n := range m.Nodes {
		chk.AnaNum(tst, "u = 0.7", 1e-14, n.Val, 0.7, false)
	}
	for _, g := range m.Grads() {
		chk.AnaNum(tst, "|grad u| = 0", 1e-13, g, 0.0, false)
	}
}

func Test_solve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve03. singular system without boundary data")

	// no Dirichlet node anywhere: the pure Neumann operator is singular
	// and the solver must report it
	m := grid9(tst, false)
	sys, err := Assemble(m, matdbIso(tst), "CONDUCTIVITY", 0, 0)
	if err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}
	if _, err = new(Dense).Solve(sys); err == nil {
		tst.Errorf("solving a system without boundary data must fail")
	}
}

func Test_solve04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve04. convection shifts the profile")

	// with convection along +x the profile bends but stays monotonic and
	// bounded by the prescribed extremes
	m := grid9(tst, true)
	err := Solve(m, matdbIso(tst), "CONDUCTIVITY", 2, 0, new(Dense), false)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	for _, n := range m.Nodes {
		if n.Val < -1e-14 || n.Val > 1+1e-14 {
			tst.Errorf("node %d: value %g outside prescribed range [0,1]", n.Id, n.Val)
			return
		}
	}
	mid := m.Nodes[4].Val
	if mid <= 0 || mid >= 1 {
		tst.Errorf("centre value %g must lie strictly between the extremes", mid)
	}
}

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. full analysis from input files")

	analysis, err := NewMain("data/test.sim", false)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	for _, n := range analysis.Msh.Nodes {
		chk.AnaNum(tst, "u = x", 1e-14, n.Val, n.X, false)
	}
}
