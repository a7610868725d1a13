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

type entry struct {
	value Value
	scope Scope
}

// A Record holds the variables set on one directory.  There is exactly one
// Record per DirectoryPath in a Session, created the first time it is
// requested.
type Record struct {
	path DirectoryPath
	vars map[string]entry
}

func newRecord(path DirectoryPath) *Record {
	return &Record{
		path: NewDirectoryPath(path...),
		vars: make(map[string]entry),
	}
}

// Path returns the directory the record belongs to.
func (r *Record) Path() DirectoryPath {
	return NewDirectoryPath(r.path...)
}

// Lookup returns the value and scope that name is set to on this directory
// alone, without looking at any ancestor.
func (r *Record) Lookup(name string) (Value, Scope, bool) {
	e, ok := r.vars[name]
	return e.value.copy(), e.scope, ok
}

// Names returns the names of the variables set on this directory in sorted
// order.
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.vars))
	for name := range r.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Record) set(name string, value Value, scope Scope) {
	r.vars[name] = entry{value.copy(), scope}
}

// Record returns the Record for path, creating it if this is the first
// request for path.  Repeated calls with equal paths return the same Record.
func (s *Session) Record(path DirectoryPath) *Record {
	key := path.key()
	if r, ok := s.records[key]; ok {
		return r
	}

	r := newRecord(path)
	s.records[key] = r
	s.logger.Debug("created config record", "dir", path.String())
	return r
}

// LookupRecord returns the Record for path if one has been created.
func (s *Session) LookupRecord(path DirectoryPath) (*Record, bool) {
	r, ok := s.records[path.key()]
	return r, ok
}

// Records returns every Record of the session ordered by path.
func (s *Session) Records() []*Record {
	ret := make([]*Record, 0, len(s.records))
	for _, r := range s.records {
		ret = append(ret, r)
	}
	sort.Slice(ret, func(i, j int) bool {
		return lessPath(ret[i].path, ret[j].path)
	})
	return ret
}

func lessPath(a, b DirectoryPath) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
