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

package printer

import "strings"

func shellSafeChar(r rune) bool {
	switch {
	case 'A' <= r && r <= 'Z',
		'a' <= r && r <= 'z',
		'0' <= r && r <= '9':
		return true
	}
	return strings.ContainsRune("_+-=.,/:@%", r)
}

// shellQuote quotes s for a POSIX shell.  Strings made only of safe
// characters are returned as is; anything else, including the empty string,
// is wrapped in single quotes with embedded single quotes written as '\''.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool { return !shellSafeChar(r) }) == -1 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// shellName turns a variable name into a valid shell variable name.  "++"
// becomes "XX", so C++FLAGS is written as CXXFLAGS, and any other invalid
// character becomes an underscore.
func shellName(name string) string {
	name = strings.ReplaceAll(name, "++", "XX")

	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_',
			'A' <= r && r <= 'Z',
			'a' <= r && r <= 'z',
			i > 0 && '0' <= r && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
