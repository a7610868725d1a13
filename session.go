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
	"log/slog"

	"github.com/google/configvars/ctxlog"
)

// DefaultAutoSetUpVariables are the variables that SetUpConfigVars resolves
// for every directory unless a session is created with
// WithAutoSetUpVariables.
var DefaultAutoSetUpVariables = []string{
	"CCFLAGS",
	"C++FLAGS",
	"DEBUG",
	"DEFINES",
	"HDRS",
	"LINKFLAGS",
	"OPTIM",
	"OPTIMIZE",
	"SYSHDRS",
	"WARNINGS",
}

// A Session holds all of the state of one build-configuration pass: the
// per-directory records, the ambient globals and the backup of the ambient
// values taken by the first SetUpConfigVars call.  A Session must not be
// reused for a second pass, and it is not safe for concurrent use.
type Session struct {
	globals *Globals
	records map[string]*Record

	autoSetUp    []string
	autoSetUpSet map[string]bool

	backedUp bool
	backup   map[string]savedValue

	logger *slog.Logger
}

type savedValue struct {
	value   Value
	defined bool
}

// An Option configures a Session.
type Option func(*Session)

// WithGlobals makes the session use g as its ambient namespace instead of an
// empty one.
func WithGlobals(g *Globals) Option {
	return func(s *Session) {
		s.globals = g
	}
}

// WithAutoSetUpVariables replaces DefaultAutoSetUpVariables for the session.
func WithAutoSetUpVariables(names ...string) Option {
	return func(s *Session) {
		s.autoSetUp = nil
		s.autoSetUpSet = make(map[string]bool)
		s.AddAutoSetUpVariables(names...)
	}
}

// WithLogger sets the logger used for debug output.  Sessions are silent by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession starts a build-configuration pass.
func NewSession(opts ...Option) *Session {
	s := &Session{
		globals:      NewGlobals(),
		records:      make(map[string]*Record),
		autoSetUpSet: make(map[string]bool),
		logger:       ctxlog.Discard(),
	}
	s.AddAutoSetUpVariables(DefaultAutoSetUpVariables...)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Globals returns the ambient namespace of the session.
func (s *Session) Globals() *Globals {
	return s.globals
}

// AutoSetUpVariables returns the variables applied by SetUpConfigVars, in
// the order they are applied.
func (s *Session) AutoSetUpVariables() []string {
	return append([]string(nil), s.autoSetUp...)
}

// AddAutoSetUpVariables appends names that are not already present to the
// list of variables applied by SetUpConfigVars.
func (s *Session) AddAutoSetUpVariables(names ...string) {
	for _, name := range names {
		if s.autoSetUpSet[name] {
			continue
		}
		s.autoSetUpSet[name] = true
		s.autoSetUp = append(s.autoSetUp, name)
	}
}
