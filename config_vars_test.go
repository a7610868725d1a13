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
	"reflect"
	"testing"
)

func dir(tokens ...string) DirectoryPath {
	return NewDirectoryPath(tokens...)
}

func TestConfigVar(t *testing.T) {
	s := NewSession()
	s.Globals().Set("WARNINGS", Value{"-Wdefault"})
	s.Globals().Set("OPTIM", Value{"-O2"})

	s.SetConfigVar("WARNINGS", dir("TOP", "a"), Value{"-Wa"}, Local)
	s.SetConfigVar("DEFINES", dir("TOP", "a"), Value{"X=1"}, Global)
	s.SetConfigVar("OPTIM", dir("TOP"), Value{"-O0"}, ScopeUnset)
	s.SetConfigVar("OPTIM", dir("TOP", "a", "b"), Value{"-O3"}, Local)
	s.SetConfigVar("DEBUG", dir("TOP", "x"), Value{"1"}, Global)

	testCases := []struct {
		name  string
		path  DirectoryPath
		value Value
	}{
		// Local at a is not inherited, so a/b falls back to the ambient value.
		{"WARNINGS", dir("TOP", "a", "b"), Value{"-Wdefault"}},
		{"WARNINGS", dir("TOP", "a"), Value{"-Wa"}},
		{"WARNINGS", dir("TOP"), Value{"-Wdefault"}},

		// Global at a is inherited through two levels.
		{"DEFINES", dir("TOP", "a", "b", "c"), Value{"X=1"}},
		{"DEFINES", dir("TOP", "a"), Value{"X=1"}},
		{"DEFINES", dir("TOP"), nil},
		{"DEFINES", dir("TOP", "b"), nil},

		// Nearest setting wins; a Local setting still overrides on its own
		// directory, and is skipped for its children.
		{"OPTIM", dir("TOP", "a", "b"), Value{"-O3"}},
		{"OPTIM", dir("TOP", "a", "b", "c"), Value{"-O0"}},
		{"OPTIM", dir("TOP", "z"), Value{"-O0"}},
		{"OPTIM", dir(), Value{"-O2"}},

		// Siblings are never visited.
		{"DEBUG", dir("TOP", "a"), nil},
		{"DEBUG", dir("TOP", "x", "y"), Value{"1"}},

		{"UNDEFINED", dir("TOP", "a", "b"), nil},
	}

	for _, test := range testCases {
		t.Run(test.name+"@"+test.path.String(), func(t *testing.T) {
			got := s.ConfigVar(test.name, test.path)
			if !reflect.DeepEqual(got, test.value) {
				t.Errorf("ConfigVar(%q, %q) = %q; want: %q", test.name, test.path, got, test.value)
			}
		})
	}
}

func TestConfigVarUnsetEverywhere(t *testing.T) {
	s := NewSession()
	s.Globals().Set("HDRS", Value{"include"})
	s.SetConfigVar("OTHER", dir("TOP", "a"), Value{"x"}, Global)

	for _, path := range []DirectoryPath{dir(), dir("TOP"), dir("TOP", "a"), dir("TOP", "a", "b")} {
		if got, want := s.ConfigVar("HDRS", path), s.Globals().Value("HDRS"); !reflect.DeepEqual(got, want) {
			t.Errorf("ConfigVar(HDRS, %q) = %q; want ambient value %q", path, got, want)
		}
	}
}

func TestConfigVarInScope(t *testing.T) {
	s := NewSession()
	s.Globals().Set("WARNINGS", Value{"-Wdefault"})
	s.SetConfigVar("WARNINGS", dir("TOP"), Value{"-Wtop"}, Global)
	s.SetConfigVar("WARNINGS", dir("TOP", "a"), Value{"-Wa"}, Local)
	s.SetConfigVar("WARNINGS", dir("TOP", "g"), Value{"-Wg"}, Global)

	testCases := []struct {
		path     DirectoryPath
		required Scope
		value    Value
	}{
		{dir("TOP", "a"), ScopeUnset, Value{"-Wa"}},
		{dir("TOP", "a"), Local, Value{"-Wa"}},
		{dir("TOP", "a"), Global, Value{"-Wtop"}},
		{dir("TOP", "g"), Local, Value{"-Wtop"}},
		{dir("TOP", "g"), Global, Value{"-Wg"}},
		// Required scope only applies to the first level; above it only
		// Global settings count.
		{dir("TOP", "g", "x"), Local, Value{"-Wg"}},
		{dir("TOP", "a", "x"), Local, Value{"-Wtop"}},
		{dir(), Local, Value{"-Wdefault"}},
	}

	for _, test := range testCases {
		t.Run(test.path.String()+"/"+test.required.String(), func(t *testing.T) {
			got := s.ConfigVarInScope("WARNINGS", test.path, test.required)
			if !reflect.DeepEqual(got, test.value) {
				t.Errorf("ConfigVarInScope(%q, %s) = %q; want: %q", test.path, test.required, got,
					test.value)
			}
		})
	}
}

func TestSetConfigVarOverwrites(t *testing.T) {
	s := NewSession()
	a := dir("TOP", "a")

	s.SetConfigVar("CCFLAGS", a, Value{"-g"}, Global)
	s.SetConfigVar("CCFLAGS", a, Value{"-O2"}, Local)

	value, scope, ok := s.Record(a).Lookup("CCFLAGS")
	if !ok || scope != Local || !reflect.DeepEqual(value, Value{"-O2"}) {
		t.Errorf("Lookup(CCFLAGS) = %q, %s, %v; want: [-O2], local, true", value, scope, ok)
	}
	if got := s.ConfigVar("CCFLAGS", a.Join("b")); got != nil {
		t.Errorf("overwritten Global setting is still inherited: %q", got)
	}
}

func TestSetConfigVarCopiesValue(t *testing.T) {
	s := NewSession()
	a := dir("TOP", "a")

	value := Value{"-g"}
	s.SetConfigVar("CCFLAGS", a, value, Global)
	value[0] = "-O2"

	got := s.ConfigVar("CCFLAGS", a)
	got[0] = "-O3"

	if got := s.ConfigVar("CCFLAGS", a); !reflect.DeepEqual(got, Value{"-g"}) {
		t.Errorf("stored value was modified through an alias: %q", got)
	}
}

func TestAppendToConfigVar(t *testing.T) {
	s := NewSession()
	s.Globals().Set("WARNINGS", Value{"-Wdefault"})
	top := dir("TOP")
	a := dir("TOP", "a")

	s.AppendToConfigVar("WARNINGS", a, Value{"-Wall"}, ScopeUnset)
	s.AppendToConfigVar("WARNINGS", a, Value{"-Wall"}, ScopeUnset)

	want := Value{"-Wdefault", "-Wall", "-Wall"}
	if got := s.ConfigVar("WARNINGS", a); !reflect.DeepEqual(got, want) {
		t.Errorf("ConfigVar after two appends = %q; want: %q", got, want)
	}

	// Appending reads the inherited value.
	s.SetConfigVar("DEFINES", top, Value{"A"}, Global)
	s.AppendToConfigVar("DEFINES", a.Join("b"), Value{"B"}, Local)
	if got, want := s.ConfigVar("DEFINES", a.Join("b")), (Value{"A", "B"}); !reflect.DeepEqual(got, want) {
		t.Errorf("ConfigVar(DEFINES, a/b) = %q; want: %q", got, want)
	}
	if got, want := s.ConfigVar("DEFINES", a.Join("b", "c")), (Value{"A"}); !reflect.DeepEqual(got, want) {
		t.Errorf("ConfigVar(DEFINES, a/b/c) = %q; want: %q", got, want)
	}
	if got, want := s.ConfigVar("DEFINES", a), (Value{"A"}); !reflect.DeepEqual(got, want) {
		t.Errorf("ConfigVar(DEFINES, a) = %q; want: %q", got, want)
	}

	// Appending to an undefined variable.
	s.AppendToConfigVar("HDRS", a, Value{"inc1", "inc2"}, Global)
	if got, want := s.ConfigVar("HDRS", a), (Value{"inc1", "inc2"}); !reflect.DeepEqual(got, want) {
		t.Errorf("ConfigVar(HDRS, a) = %q; want: %q", got, want)
	}
}

func TestSetUpConfigVars(t *testing.T) {
	g := NewGlobals()
	g.Set("WARNINGS", Value{"-Wdefault"})
	g.Set("OPTIM", Value{"-O2"})
	g.Set("UNRELATED", Value{"keep"})

	s := NewSession(WithGlobals(g), WithAutoSetUpVariables("WARNINGS", "OPTIM", "DEFINES"))
	s.SetConfigVar("WARNINGS", dir("TOP", "a"), Value{"-Wa"}, Local)
	s.SetConfigVar("OPTIM", dir("TOP", "a"), Value{"-O0"}, Global)
	s.SetConfigVar("DEFINES", dir("TOP", "a", "b"), Value{"B"}, Global)
	s.SetConfigVar("UNRELATED", dir("TOP", "a"), Value{"changed"}, Global)

	type state map[string]Value
	check := func(path DirectoryPath, want state) {
		t.Helper()
		s.SetUpConfigVars(path)
		for name, value := range want {
			got, _ := g.Get(name)
			if !reflect.DeepEqual(got, value) {
				t.Errorf("after SetUpConfigVars(%q): %s = %q; want: %q", path, name, got, value)
			}
		}
	}

	check(dir("TOP", "a"), state{
		"WARNINGS": {"-Wa"}, "OPTIM": {"-O0"}, "DEFINES": nil, "UNRELATED": {"keep"},
	})
	check(dir("TOP", "a", "b"), state{
		"WARNINGS": {"-Wdefault"}, "OPTIM": {"-O0"}, "DEFINES": {"B"},
	})
	// A directory that sets nothing gets the original ambient values back,
	// not the ones left over from the previous directory.
	check(dir("TOP", "c"), state{
		"WARNINGS": {"-Wdefault"}, "OPTIM": {"-O2"}, "DEFINES": nil,
	})
	if _, defined := g.Get("DEFINES"); defined {
		t.Errorf("DEFINES should be undefined after SetUpConfigVars(TOP/c)")
	}

	s.RestoreGlobals()
	for name, want := range map[string]Value{"WARNINGS": {"-Wdefault"}, "OPTIM": {"-O2"}, "UNRELATED": {"keep"}} {
		if got := g.Value(name); !reflect.DeepEqual(got, want) {
			t.Errorf("after RestoreGlobals: %s = %q; want: %q", name, got, want)
		}
	}
}

func TestSetUpConfigVarsBackupIsTakenOnce(t *testing.T) {
	s := NewSession(WithAutoSetUpVariables("CCFLAGS"))
	s.Globals().Set("CCFLAGS", Value{"-original"})

	s.SetUpConfigVars(dir("TOP"))

	// Changes to the ambient value after the first call are not part of the
	// backup.
	s.Globals().Set("CCFLAGS", Value{"-changed"})
	s.SetUpConfigVars(dir("TOP", "a"))

	if got, want := s.Globals().Value("CCFLAGS"), (Value{"-original"}); !reflect.DeepEqual(got, want) {
		t.Errorf("CCFLAGS = %q; want: %q", got, want)
	}
}

func TestSetUpConfigVarsLateAutoSetUpVariable(t *testing.T) {
	s := NewSession(WithAutoSetUpVariables("CCFLAGS"))
	s.Globals().Set("EXTRA", Value{"ambient"})
	s.SetConfigVar("EXTRA", dir("TOP", "a"), Value{"a"}, Local)

	s.SetUpConfigVars(dir("TOP"))
	s.AddAutoSetUpVariables("EXTRA", "CCFLAGS")

	if got, want := s.AutoSetUpVariables(), []string{"CCFLAGS", "EXTRA"}; !reflect.DeepEqual(got, want) {
		t.Errorf("AutoSetUpVariables() = %q; want: %q", got, want)
	}

	s.SetUpConfigVars(dir("TOP", "a"))
	if got, want := s.Globals().Value("EXTRA"), (Value{"a"}); !reflect.DeepEqual(got, want) {
		t.Errorf("EXTRA = %q; want: %q", got, want)
	}
	s.SetUpConfigVars(dir("TOP", "b"))
	if got, want := s.Globals().Value("EXTRA"), (Value{"ambient"}); !reflect.DeepEqual(got, want) {
		t.Errorf("EXTRA = %q; want: %q", got, want)
	}
}

func TestRestoreGlobalsWithoutSetUp(t *testing.T) {
	s := NewSession()
	s.Globals().Set("CCFLAGS", Value{"-g"})
	s.RestoreGlobals()
	if got, want := s.Globals().Value("CCFLAGS"), (Value{"-g"}); !reflect.DeepEqual(got, want) {
		t.Errorf("CCFLAGS = %q; want: %q", got, want)
	}
}

func TestDefaultAutoSetUpVariables(t *testing.T) {
	s := NewSession()
	if got := s.AutoSetUpVariables(); !reflect.DeepEqual(got, DefaultAutoSetUpVariables) {
		t.Errorf("AutoSetUpVariables() = %q; want: %q", got, DefaultAutoSetUpVariables)
	}

	s.AddAutoSetUpVariables("WARNINGS", "EXTRA")
	got := s.AutoSetUpVariables()
	if len(got) != len(DefaultAutoSetUpVariables)+1 || got[len(got)-1] != "EXTRA" {
		t.Errorf("AutoSetUpVariables() = %q; want defaults followed by EXTRA", got)
	}
	if len(DefaultAutoSetUpVariables) != 10 {
		t.Errorf("DefaultAutoSetUpVariables was modified: %q", DefaultAutoSetUpVariables)
	}
}
