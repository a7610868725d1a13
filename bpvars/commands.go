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

package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/google/configvars"
	"github.com/google/configvars/pathtools"
	"github.com/google/configvars/printer"
)

func newResolveCmd(opts *options) *cobra.Command {
	var dir, scope string

	cmd := &cobra.Command{
		Use:   "resolve [VAR...]",
		Short: "Print the value of variables for one directory",
		Long: `resolve prints the value each variable resolves to for the directory given
with --dir, relative to the anchor.  Without arguments the auto set-up
variables are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			required, err := configvars.ParseScope(scope)
			if err != nil {
				return err
			}
			components, err := pathtools.SplitPath(dir)
			if err != nil {
				return err
			}

			s, anchor, err := opts.newSession(cmd.Context())
			if err != nil {
				return err
			}
			path := anchor.Join(components...)

			names := args
			if len(names) == 0 {
				names = s.AutoSetUpVariables()
			}

			r := printer.Resolution{Dir: path}
			for _, name := range names {
				r.Vars = append(r.Vars, printer.Variable{
					Name:  name,
					Value: s.ConfigVarInScope(name, path, required),
				})
			}

			return opts.print([]printer.Resolution{r})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory relative to the anchor")
	cmd.Flags().StringVar(&scope, "scope", "", "only use a setting on the directory itself if it has this scope")

	return cmd
}

func newWalkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "walk ROOT",
		Short: "Print the auto set-up variables of every directory of a source tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, anchor, err := opts.newSession(cmd.Context())
			if err != nil {
				return err
			}

			var resolutions []printer.Resolution
			visit := func(ctx context.Context, dir configvars.DirectoryPath, fsPath string) error {
				r := printer.Resolution{Dir: dir}
				for _, name := range s.AutoSetUpVariables() {
					r.Vars = append(r.Vars, printer.Variable{
						Name:  name,
						Value: s.Globals().Value(name),
					})
				}
				resolutions = append(resolutions, r)
				return nil
			}

			errs := s.Walk(cmd.Context(), opts.fs, args[0], anchor, visit)
			if len(errs) > 0 {
				return errors.Join(errs...)
			}

			return opts.print(resolutions)
		},
	}
}

func newRecordsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Print every directory setting made by the configuration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := opts.newSession(cmd.Context())
			if err != nil {
				return err
			}

			var resolutions []printer.Resolution
			for _, record := range s.Records() {
				r := printer.Resolution{Dir: record.Path()}
				for _, name := range record.Names() {
					value, scope, _ := record.Lookup(name)
					r.Vars = append(r.Vars, printer.Variable{
						Name:  name,
						Value: value,
						Scope: scope,
					})
				}
				resolutions = append(resolutions, r)
			}

			return opts.print(resolutions)
		},
	}
}
