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

package pathtools

import (
	"fmt"
	"path"
	"strings"
)

// SplitPath splits a slash-separated path relative to a source tree root
// into its components.  The path is cleaned first, so "." and empty
// components disappear and "a/../b" becomes "b".  The root itself splits
// into an empty list.  Paths that escape the root, or absolute paths, are
// an error.
func SplitPath(p string) ([]string, error) {
	if p == "" {
		return nil, nil
	}
	if strings.HasPrefix(p, "/") {
		return nil, fmt.Errorf("path %q must be relative", p)
	}

	p = path.Clean(p)
	if p == "." {
		return nil, nil
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return nil, fmt.Errorf("path %q is outside of the source tree", p)
	}

	return strings.Split(p, "/"), nil
}
