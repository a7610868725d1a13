// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package configvars

import (
	"sort"
)

// A Value is the ordered list of tokens assigned to a variable, e.g. a list
// of compiler flags.  A nil Value is undefined.
type Value []string

func (v Value) copy() Value {
	if v == nil {
		return nil
	}
	return append(Value{}, v...)
}

// Globals is the ambient variable namespace of a build-configuration pass.
// It holds the build-wide value of each variable outside of any directory
// record, and it is where SetUpConfigVars publishes the values resolved for
// the directory being processed.
type Globals struct {
	vars map[string]Value
}

// NewGlobals returns an empty namespace.
func NewGlobals() *Globals {
	return &Globals{
		vars: make(map[string]Value),
	}
}

// Get returns the value of name and whether it is defined.
func (g *Globals) Get(name string) (Value, bool) {
	v, ok := g.vars[name]
	return v.copy(), ok
}

// Value returns the value of name, or nil if it is undefined.
func (g *Globals) Value(name string) Value {
	return g.vars[name].copy()
}

// Set defines name.  Setting a nil Value keeps name defined but empty.
func (g *Globals) Set(name string, value Value) {
	if value == nil {
		value = Value{}
	}
	g.vars[name] = value.copy()
}

// Unset removes name from the namespace.
func (g *Globals) Unset(name string) {
	delete(g.vars, name)
}

// Names returns the defined variable names in sorted order.
func (g *Globals) Names() []string {
	names := make([]string, 0, len(g.vars))
	for name := range g.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the namespace.
func (g *Globals) Clone() *Globals {
	ret := NewGlobals()
	for name, v := range g.vars {
		ret.vars[name] = v.copy()
	}
	return ret
}
