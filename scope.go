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
	"fmt"
	"strings"
)

// A Scope controls whether a directory's setting of a variable is visible to
// the directories below it.
type Scope int

const (
	// ScopeUnset is the zero Scope.  Passed to SetConfigVar it means Global;
	// passed to ConfigVarInScope it accepts a setting of either scope.
	ScopeUnset Scope = iota

	// Global settings are inherited by descendant directories that do not
	// set the variable themselves.
	Global

	// Local settings apply to their own directory only.
	Local
)

func (s Scope) String() string {
	switch s {
	case ScopeUnset:
		return "unset"
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		panic(fmt.Errorf("unknown scope %d", int(s)))
	}
}

// ParseScope converts "global", "local" or "" into a Scope.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(s) {
	case "":
		return ScopeUnset, nil
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	default:
		return ScopeUnset, fmt.Errorf("invalid scope %q, must be \"global\" or \"local\"", s)
	}
}
