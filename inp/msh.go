// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/difc/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadMsh reads a mesh from the plain-text file set in dirname:
//
//   nodes.txt          x y              one node per line; ids follow line order
//   ucons.txt          n . v            Dirichlet node n with value-set entry v
//   uconsvals.txt      . . value        prescribed values, in entry order
//   orientations.txt   angle [rad]      one region per line
//   materials.txt      name             material of each region
//   sources.txt        value            source term of each region
//   elems.txt          n1 n2 n3 r       connectivity and region of each element
//
// All indices are 1-based in the files and are normalised to 0-based here.
// Inconsistent boundary data and degenerate elements abort the construction.
func ReadMsh(dirname string) (m *msh.Mesh, err error) {

	// nodes
	rows, err := readTable(dirname, "nodes.txt")
	if err != nil {
		return
	}
	nodes := make([]*msh.Node, 0, len(rows))
	for id, f := range rows {
		if len(f) < 2 {
			return nil, chk.Err("nodes.txt: line %d must have 2 columns (x y)", id+1)
		}
		nodes = append(nodes, msh.NewNode(id, io.Atof(f[0]), io.Atof(f[1])))
	}

	// prescribed boundary values
	rows, err = readTable(dirname, "uconsvals.txt")
	if err != nil {
		return
	}
	vals := make([]float64, 0, len(rows))
	for i, f := range rows {
		if len(f) < 3 {
			return nil, chk.Err("uconsvals.txt: line %d must have 3 columns", i+1)
		}
		vals = append(vals, io.Atof(f[2]))
	}

	// Dirichlet nodes
	rows, err = readTable(dirname, "ucons.txt")
	if err != nil {
		return
	}
	for i, f := range rows {
		if len(f) < 3 {
			return nil, chk.Err("ucons.txt: line %d must have 3 columns", i+1)
		}
		in := io.Atoi(f[0]) - 1
		iv := io.Atoi(f[2]) - 1
		if in < 0 || in >= len(nodes) {
			return nil, chk.Err("ucons.txt: line %d refers to inexistent node %d", i+1, in+1)
		}
		if iv < 0 || iv >= len(vals) {
			return nil, chk.Err("ucons.txt: line %d: boundary node %d has no prescribed value entry %d", i+1, in+1, iv+1)
		}
		nodes[in].SetBoundary(vals[iv])
	}

	// regions
	orients, err := readTable(dirname, "orientations.txt")
	if err != nil {
		return
	}
	matnames, err := readTable(dirname, "materials.txt")
	if err != nil {
		return
	}
	sources, err := readTable(dirname, "sources.txt")
	if err != nil {
		return
	}
	if len(matnames) != len(orients) || len(sources) != len(orients) {
		return nil, chk.Err("region files disagree: %d orientations, %d materials, %d sources",
			len(orients), len(matnames), len(sources))
	}
	regions := make([]*msh.Region, 0, len(orients))
	for id := range orients {
		regions = append(regions, msh.NewRegion(id, matnames[id][0],
			io.Atof(orients[id][0]), io.Atof(sources[id][0])))
	}

	// elements
	rows, err = readTable(dirname, "elems.txt")
	if err != nil {
		return
	}
	elements := make([]*msh.Element, 0, len(rows))
	for id, f := range rows {
		if len(f) < 4 {
			return nil, chk.Err("elems.txt: line %d must have 4 columns (n1 n2 n3 region)", id+1)
		}
		var conn [3]*msh.Node
		for k := 0; k < 3; k++ {
			in := io.Atoi(f[k]) - 1
			if in < 0 || in >= len(nodes) {
				return nil, chk.Err("elems.txt: line %d refers to inexistent node %d", id+1, in+1)
			}
			conn[k] = nodes[in]
		}
		ir := io.Atoi(f[3]) - 1
		if ir < 0 || ir >= len(regions) {
			return nil, chk.Err("elems.txt: line %d refers to inexistent region %d", id+1, ir+1)
		}
		e, err := msh.NewElement(id, conn, regions[ir])
		if err != nil {
			return nil, chk.Err("mesh construction failed:\n%v", err)
		}
		elements = append(elements, e)
	}

	return msh.NewMesh(nodes, regions, elements)
}

// WriteSolution writes the nodal values to solu2.txt in dirname, one value
// per line in node order
func WriteSolution(dirname string, m *msh.Mesh) {
	var sb strings.Builder
	for _, n := range m.Nodes {
		sb.WriteString(io.Sf("%23.15e\n", n.Val))
	}
	io.WriteFileSD(dirname, "solu2.txt", sb.String())
}

// ReadSolution reads nodal values from solu2.txt in dirname
func ReadSolution(dirname string, m *msh.Mesh) (err error) {
	rows, err := readTable(dirname, "solu2.txt")
	if err != nil {
		return
	}
	if len(rows) != len(m.Nodes) {
		return chk.Err("solu2.txt has %d values; mesh has %d nodes", len(rows), len(m.Nodes))
	}
	for i, f := range rows {
		m.Nodes[i].SetVal(io.Atof(f[0]))
	}
	return
}

// readTable reads a whitespace-separated table file, one row per line,
// skipping empty lines
func readTable(dirname, fname string) (rows [][]string, err error) {
	b, err := io.ReadFile(filepath.Join(dirname, fname))
	if err != nil {
		return nil, chk.Err("cannot read %q in %q:\n%v", fname, dirname, err)
	}
	for _, line := range strings.Split(string(b), "\n") {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		rows = append(rows, f)
	}
	return
}
