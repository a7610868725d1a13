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

// Package printer writes resolved config variables for people and for
// scripts.
package printer

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/google/configvars"
)

// Format selects the output syntax.
type Format int

const (
	Text Format = iota
	Shell
	YAML
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Shell:
		return "shell"
	case YAML:
		return "yaml"
	default:
		panic(fmt.Errorf("unknown format %d", int(f)))
	}
}

// ParseFormat converts "text", "shell" or "yaml" into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "shell", "sh":
		return Shell, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Text, fmt.Errorf("unknown format %q, must be one of text, shell or yaml", s)
	}
}

// A Variable is a variable name with its value and, for variables read from
// a record, its scope.
type Variable struct {
	Name  string
	Value configvars.Value
	Scope configvars.Scope
}

// A Resolution is the set of variables printed for one directory.
type Resolution struct {
	Dir  configvars.DirectoryPath
	Vars []Variable
}

// Print writes resolutions to w in the given format.
func Print(w io.Writer, format Format, resolutions []Resolution) error {
	switch format {
	case Text:
		return printText(w, resolutions)
	case Shell:
		return printShell(w, resolutions)
	case YAML:
		return printYAML(w, resolutions)
	default:
		panic(fmt.Errorf("unknown format %d", int(format)))
	}
}

func printText(w io.Writer, resolutions []Resolution) error {
	for _, r := range resolutions {
		for _, v := range r.Vars {
			line := fmt.Sprintf("%s: %s = %s", r.Dir, v.Name, strings.Join(v.Value, " "))
			if v.Scope != configvars.ScopeUnset {
				line += " (" + v.Scope.String() + ")"
			}
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func printShell(w io.Writer, resolutions []Resolution) error {
	for i, r := range resolutions {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n", r.Dir); err != nil {
			return err
		}
		for _, v := range r.Vars {
			_, err := fmt.Fprintf(w, "%s=%s\n", shellName(v.Name), shellQuote(strings.Join(v.Value, " ")))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type yamlVariable struct {
	Name  string   `yaml:"name"`
	Value []string `yaml:"value"`
	Scope string   `yaml:"scope,omitempty"`
}

type yamlResolution struct {
	Dir  string         `yaml:"dir"`
	Vars []yamlVariable `yaml:"vars"`
}

func printYAML(w io.Writer, resolutions []Resolution) error {
	out := make([]yamlResolution, 0, len(resolutions))
	for _, r := range resolutions {
		yr := yamlResolution{
			Dir:  r.Dir.String(),
			Vars: make([]yamlVariable, 0, len(r.Vars)),
		}
		for _, v := range r.Vars {
			yv := yamlVariable{
				Name:  v.Name,
				Value: append([]string{}, v.Value...),
			}
			if v.Scope != configvars.ScopeUnset {
				yv.Scope = v.Scope.String()
			}
			yr.Vars = append(yr.Vars, yv)
		}
		out = append(out, yr)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
