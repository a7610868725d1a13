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

// Package configvars assigns build variables such as compiler flags, defines
// and warning settings to directories of a source tree, so that a central
// configuration can tune the build of individual subtrees.
//
// A Session records variable settings per directory.  Each setting has a
// Scope: a Global setting is inherited by every directory below it that does
// not set the variable itself, while a Local setting only applies to the
// directory it was made on.  Directories are identified by a DirectoryPath,
// a list of tokens starting with the name of the tree's anchor:
//
//	s := configvars.NewSession()
//	s.Globals().Set("WARNINGS", configvars.Value{"-Wdefault"})
//	s.SetConfigVar("WARNINGS", configvars.NewDirectoryPath("TOP", "src"),
//		configvars.Value{"-Wall"}, configvars.Local)
//	s.SetConfigVar("DEFINES", configvars.NewDirectoryPath("TOP", "src"),
//		configvars.Value{"X=1"}, configvars.Global)
//
//	s.ConfigVar("WARNINGS", configvars.NewDirectoryPath("TOP", "src"))         // -Wall
//	s.ConfigVar("WARNINGS", configvars.NewDirectoryPath("TOP", "src", "apps")) // -Wdefault
//	s.ConfigVar("DEFINES", configvars.NewDirectoryPath("TOP", "src", "apps"))  // X=1
//
// The build description sees the configuration through the ambient Globals.
// A traversal driver calls SetUpConfigVars for each directory before
// anything else is done for that directory, which resets every auto set-up
// variable to its original ambient value and then overwrites it with the
// value resolved for the directory.  Session.Walk is such a driver for a
// source tree on a pathtools.FileSystem.
//
// A Session is meant for a single-threaded, depth-first configuration pass
// and must not be shared between goroutines.
package configvars
