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

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/google/configvars"
	"github.com/google/configvars/ctxlog"
	"github.com/google/configvars/pathtools"
)

// An Error is a problem found in a configuration file.
type Error struct {
	Pos hcl.Range
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind is the kind of block a Statement was read from.
type Kind int

const (
	KindGlobal Kind = iota
	KindSet
	KindAppend
)

func (k Kind) String() string {
	switch k {
	case KindGlobal:
		return "global"
	case KindSet:
		return "set"
	case KindAppend:
		return "append"
	default:
		panic(fmt.Errorf("unknown statement kind %d", int(k)))
	}
}

// A Statement is one block of a configuration file.
type Statement struct {
	Kind  Kind
	Name  string
	Dir   []string
	Value configvars.Value
	Scope configvars.Scope
	Pos   hcl.Range
}

// A File is a parsed configuration file.
type File struct {
	Name       string
	AutoSetUp  []string
	Statements []*Statement
}

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "auto_set_up"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: KindGlobal.String(), LabelNames: []string{"name"}},
		{Type: KindSet.String(), LabelNames: []string{"name"}},
		{Type: KindAppend.String(), LabelNames: []string{"name"}},
	},
}

type hclGlobal struct {
	Value hcl.Expression `hcl:"value"`
}

type hclSetting struct {
	Dir   string         `hcl:"dir,optional"`
	Value hcl.Expression `hcl:"value"`
	Scope string         `hcl:"scope,optional"`
}

var evalContext = &hcl.EvalContext{
	Functions: map[string]function.Function{
		"concat":   stdlib.ConcatFunc,
		"distinct": stdlib.DistinctFunc,
		"join":     stdlib.JoinFunc,
		"lower":    stdlib.LowerFunc,
		"split":    stdlib.SplitFunc,
		"upper":    stdlib.UpperFunc,
	},
}

// Parse parses the configuration file src.  filename is only used for error
// positions.
func Parse(filename string, src []byte) (*File, []error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagErrors(diags)
	}

	content, diags := hclFile.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagErrors(diags)
	}

	file := &File{Name: filename}
	var errs []error

	if attr, ok := content.Attributes["auto_set_up"]; ok {
		names, err := evalValue(attr.Expr)
		if err != nil {
			errs = append(errs, err)
		}
		file.AutoSetUp = names
	}

	for _, block := range content.Blocks {
		stmt, blockErrs := parseBlock(block)
		if len(blockErrs) > 0 {
			errs = append(errs, blockErrs...)
			continue
		}
		file.Statements = append(file.Statements, stmt)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return file, nil
}

func parseBlock(block *hcl.Block) (*Statement, []error) {
	stmt := &Statement{
		Name: block.Labels[0],
		Pos:  block.DefRange,
	}

	var valueExpr hcl.Expression

	switch block.Type {
	case KindGlobal.String():
		stmt.Kind = KindGlobal

		var g hclGlobal
		if diags := gohcl.DecodeBody(block.Body, evalContext, &g); diags.HasErrors() {
			return nil, diagErrors(diags)
		}
		valueExpr = g.Value
	case KindSet.String(), KindAppend.String():
		stmt.Kind = KindSet
		if block.Type == KindAppend.String() {
			stmt.Kind = KindAppend
		}

		var setting hclSetting
		if diags := gohcl.DecodeBody(block.Body, evalContext, &setting); diags.HasErrors() {
			return nil, diagErrors(diags)
		}

		dir, err := pathtools.SplitPath(setting.Dir)
		if err != nil {
			return nil, []error{&Error{Pos: block.DefRange, Err: err}}
		}
		stmt.Dir = dir

		scope, err := configvars.ParseScope(setting.Scope)
		if err != nil {
			return nil, []error{&Error{Pos: block.DefRange, Err: err}}
		}
		stmt.Scope = scope

		valueExpr = setting.Value
	default:
		panic(fmt.Errorf("unexpected block type %q", block.Type))
	}

	value, err := evalValue(valueExpr)
	if err != nil {
		return nil, []error{err}
	}
	stmt.Value = value

	return stmt, nil
}

// evalValue evaluates expr to a list of tokens.  A single string is a list
// of one token.
func evalValue(expr hcl.Expression) (configvars.Value, error) {
	val, diags := expr.Value(evalContext)
	if diags.HasErrors() {
		return nil, diagErrors(diags)[0]
	}

	if val.IsNull() {
		return nil, &Error{Pos: expr.Range(), Err: errors.New("value must not be null")}
	}
	if !val.IsWhollyKnown() {
		return nil, &Error{Pos: expr.Range(), Err: errors.New("value must be known")}
	}

	if val.Type() == cty.String {
		return configvars.Value{val.AsString()}, nil
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, &Error{
			Pos: expr.Range(),
			Err: fmt.Errorf("value must be a string or a list of strings, got %s",
				val.Type().FriendlyName()),
		}
	}

	value := configvars.Value{}
	if err := gocty.FromCtyValue(list, (*[]string)(&value)); err != nil {
		return nil, &Error{Pos: expr.Range(), Err: err}
	}
	return value, nil
}

func diagErrors(diags hcl.Diagnostics) []error {
	var errs []error
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}

		msg := diag.Summary
		if diag.Detail != "" {
			msg += "; " + diag.Detail
		}

		err := &Error{Err: errors.New(msg)}
		if diag.Subject != nil {
			err.Pos = *diag.Subject
		}
		errs = append(errs, err)
	}
	return errs
}

// Apply applies the file to s.  Directories of the file are relative to
// anchor.
func (f *File) Apply(s *configvars.Session, anchor configvars.DirectoryPath) {
	s.AddAutoSetUpVariables(f.AutoSetUp...)

	for _, stmt := range f.Statements {
		switch stmt.Kind {
		case KindGlobal:
			s.Globals().Set(stmt.Name, stmt.Value)
		case KindSet:
			s.SetConfigVar(stmt.Name, anchor.Join(stmt.Dir...), stmt.Value, stmt.Scope)
		case KindAppend:
			s.AppendToConfigVar(stmt.Name, anchor.Join(stmt.Dir...), stmt.Value, stmt.Scope)
		}
	}
}

// Load reads the configuration file filename from fs and applies it to s.
// Nothing is applied if the file has errors.
func Load(ctx context.Context, fs pathtools.FileSystem, filename string,
	s *configvars.Session, anchor configvars.DirectoryPath) []error {

	logger := ctxlog.FromContext(ctx)

	exists, isDir, err := fs.Exists(filename)
	if err != nil {
		return []error{err}
	} else if !exists {
		return []error{fmt.Errorf("config file %s does not exist", filename)}
	} else if isDir {
		return []error{fmt.Errorf("config file %s is a directory", filename)}
	}

	f, err := fs.Open(filename)
	if err != nil {
		return []error{err}
	}
	src, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return []error{fmt.Errorf("reading %s: %w", filename, err)}
	}

	file, errs := Parse(filename, src)
	if len(errs) > 0 {
		return errs
	}

	file.Apply(s, anchor)
	logger.Debug("loaded config file", "file", filename,
		"statements", len(file.Statements), "auto_set_up", len(file.AutoSetUp))

	return nil
}
