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
	"strings"
)

// A DirectoryPath identifies a directory of the source tree as a list of
// tokens, starting with the name of the tree's top-level anchor, e.g.
// {"TOP", "src", "apps"}.  The empty DirectoryPath is above the anchor and
// is where resolution falls back to the ambient globals.
type DirectoryPath []string

// NewDirectoryPath returns a DirectoryPath made of the given tokens.
func NewDirectoryPath(tokens ...string) DirectoryPath {
	return append(DirectoryPath(nil), tokens...)
}

// IsRoot returns true for the empty path.
func (p DirectoryPath) IsRoot() bool {
	return len(p) == 0
}

// Parent returns p without its innermost token.  The parent of the empty
// path is the empty path.
func (p DirectoryPath) Parent() DirectoryPath {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Join returns a new path with tokens appended to p.
func (p DirectoryPath) Join(tokens ...string) DirectoryPath {
	ret := make(DirectoryPath, 0, len(p)+len(tokens))
	ret = append(ret, p...)
	return append(ret, tokens...)
}

// HasPrefix returns true if prefix is p or one of its ancestors.
func (p DirectoryPath) HasPrefix(prefix DirectoryPath) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

func (p DirectoryPath) String() string {
	return strings.Join(p, "/")
}

// key returns a string that is unique per token list.  Tokens are opaque, so
// they are separated by a byte that does not occur in directory names.
func (p DirectoryPath) key() string {
	return strings.Join(p, "\x00")
}
