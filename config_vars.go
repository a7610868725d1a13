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

// SetConfigVar sets name to value on the record for path.  A Global setting
// is inherited by the descendants of path that do not set name themselves, a
// Local one is only seen by queries for path itself.  ScopeUnset means
// Global.  Any previous setting of name on path is replaced.
func (s *Session) SetConfigVar(name string, path DirectoryPath, value Value, scope Scope) {
	if scope == ScopeUnset {
		scope = Global
	}

	s.Record(path).set(name, value, scope)
	s.logger.Debug("set config variable", "dir", path.String(), "name", name,
		"value", []string(value), "scope", scope.String())
}

// AppendToConfigVar appends value to the value name currently resolves to for
// path and sets the result on path with the given scope.  Tokens are not
// deduplicated, so appending the same flag twice lists it twice.
func (s *Session) AppendToConfigVar(name string, path DirectoryPath, value Value, scope Scope) {
	current := s.ConfigVar(name, path)
	s.SetConfigVar(name, path, append(current, value...), scope)
}

// ConfigVar returns the value of name for path: the nearest setting on path
// or one of its ancestors, ignoring Local settings of ancestors, or the
// ambient global value if there is none.  An undefined variable resolves to
// nil.
func (s *Session) ConfigVar(name string, path DirectoryPath) Value {
	return s.ConfigVarInScope(name, path, ScopeUnset)
}

// ConfigVarInScope is like ConfigVar, but a setting on path itself is only
// used if its scope equals required, unless required is ScopeUnset.  Settings
// on ancestors are only used if they are Global.
func (s *Session) ConfigVarInScope(name string, path DirectoryPath, required Scope) Value {
	for ; !path.IsRoot(); path, required = path.Parent(), Global {
		r, ok := s.records[path.key()]
		if !ok {
			continue
		}
		if e, ok := r.vars[name]; ok && (required == ScopeUnset || e.scope == required) {
			return e.value.copy()
		}
	}

	return s.globals.Value(name)
}

// SetUpConfigVars publishes the configuration of path into the ambient
// namespace.  For each of the auto set-up variables, the ambient value is
// first reset to what it was before the first SetUpConfigVars call of the
// session, and then replaced by ConfigVar(name, path).  Call it for a
// directory before running any other logic for that directory.
func (s *Session) SetUpConfigVars(path DirectoryPath) {
	if !s.backedUp {
		s.backedUp = true
		s.backup = make(map[string]savedValue, len(s.autoSetUp))
		s.logger.Debug("backing up ambient config variables", "count", len(s.autoSetUp))
	}

	for _, name := range s.autoSetUp {
		// Variables added to the list after the backup was taken are still
		// untouched, so their current value is the original one.
		if _, ok := s.backup[name]; !ok {
			v, defined := s.globals.Get(name)
			s.backup[name] = savedValue{v, defined}
		}
		s.restore(name)

		if v := s.ConfigVar(name, path); v != nil {
			s.globals.Set(name, v)
		} else {
			s.globals.Unset(name)
		}
	}

	s.logger.Debug("set up config variables", "dir", path.String())
}

// RestoreGlobals resets the auto set-up variables to the values they had
// before the first SetUpConfigVars call.  It does nothing if SetUpConfigVars
// has not been called.
func (s *Session) RestoreGlobals() {
	for _, name := range s.autoSetUp {
		if _, ok := s.backup[name]; ok {
			s.restore(name)
		}
	}
}

func (s *Session) restore(name string) {
	saved := s.backup[name]
	if saved.defined {
		s.globals.Set(name, saved.value)
	} else {
		s.globals.Unset(name)
	}
}
