// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reading of input data files: the materials
// database, the mesh file set and the simulation file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/difc/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Property holds one named material property; e.g. "PERMEABILITY"
type Property struct {

	// input
	Key   string   `json:"key"`   // property key
	Model string   `json:"model"` // model name; e.g. "cte", "m1"
	Prms  fun.Prms `json:"prms"`  // model parameters

	// derived
	Mdl mdl.Model `json:"-"` // allocated model
}

// Material holds material data: a set of properties indexed by key
type Material struct {

	// input
	Name  string      `json:"name"`  // name of material
	Props []*Property `json:"props"` // all properties of this material

	// derived
	Key2prop map[string]*Property `json:"-"` // property key => property
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Name2mat map[string]*Material `json:"-"` // material name => material
}

// ReadMat reads a materials database from a .mat JSON file and allocates
// the property models
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	mdb = new(MatDb)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot parse materials file %q:\n%v", fn, err)
	}
	err = mdb.init()
	if err != nil {
		return nil, err
	}
	return
}

// NewMatDb builds a materials database directly from data; e.g. in tests
func NewMatDb(mats MatsData) (mdb *MatDb, err error) {
	mdb = &MatDb{Materials: mats}
	err = mdb.init()
	if err != nil {
		return nil, err
	}
	return
}

// Get returns the model of a material property. Both the material and the
// property must exist in the database.
func (o *MatDb) Get(matName, propKey string) (model mdl.Model, err error) {
	m, ok := o.Name2mat[matName]
	if !ok {
		return nil, chk.Err("material %q is not available in the database", matName)
	}
	p, ok := m.Key2prop[propKey]
	if !ok {
		return nil, chk.Err("material %q has no property %q", matName, propKey)
	}
	return p.Mdl, nil
}

// init allocates the property models and builds the lookup maps
func (o *MatDb) init() (err error) {
	o.Name2mat = make(map[string]*Material)
	for _, m := range o.Materials {
		m.Key2prop = make(map[string]*Property)
		for _, p := range m.Props {
			p.Mdl, err = mdl.New(p.Model)
			if err != nil {
				return chk.Err("material %q: %v", m.Name, err)
			}
			err = p.Mdl.Init(p.Prms)
			if err != nil {
				return chk.Err("material %q: cannot initialise model of property %q:\n%v", m.Name, p.Key, err)
			}
			m.Key2prop[p.Key] = p
		}
		o.Name2mat[m.Name] = m
	}
	return
}
