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

// Package loader reads the central configuration of a build from HCL files
// and applies it to a configvars.Session.
//
// A configuration file holds three kinds of blocks, applied in the order they
// appear in the file, and an optional list of extra auto set-up variables:
//
//	auto_set_up = ["EXTRA_FLAGS"]
//
//	global "WARNINGS" {
//	  value = ["-Wdefault"]
//	}
//
//	set "WARNINGS" {
//	  dir   = "src/apps"
//	  value = split(" ", "-Wall -Wextra")
//	  scope = "local"
//	}
//
//	append "DEFINES" {
//	  dir   = "src/kits"
//	  value = "X=1"
//	}
//
// A global block sets the ambient value of a variable, a set block calls
// SetConfigVar and an append block calls AppendToConfigVar.  dir is relative
// to the anchor of the source tree and defaults to the anchor itself; scope
// is "global" (the default) or "local".  A value is a string or a list of
// strings, and may use the concat, distinct, join, lower, split and upper
// functions.
package loader
