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

// bpvars loads build configuration files and prints the config variables
// they assign to the directories of a source tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/google/configvars"
	"github.com/google/configvars/ctxlog"
	"github.com/google/configvars/loader"
	"github.com/google/configvars/pathtools"
	"github.com/google/configvars/printer"
)

type options struct {
	configs []string
	anchor  string
	format  string
	verbose bool

	stdout, stderr io.Writer
	fs             pathtools.FileSystem
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr, pathtools.OsFs)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer, fs pathtools.FileSystem) *cobra.Command {
	opts := &options{
		stdout: stdout,
		stderr: stderr,
		fs:     fs,
	}

	cmd := &cobra.Command{
		Use:   "bpvars",
		Short: "Print per-directory build config variables",
		Long: `bpvars applies build configuration files to a source tree and prints the
config variables each directory ends up with.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(opts.stderr, &slog.HandlerOptions{Level: level}))
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringArrayVarP(&opts.configs, "config", "c", nil, "configuration file to load, may be repeated")
	flags.StringVar(&opts.anchor, "anchor", "TOP", "name of the source tree's top-level anchor")
	flags.StringVar(&opts.format, "format", "text", "output format: text, shell or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		newResolveCmd(opts),
		newWalkCmd(opts),
		newRecordsCmd(opts),
	)

	return cmd
}

// newSession starts a session and loads every configuration file into it.
func (o *options) newSession(ctx context.Context) (*configvars.Session, configvars.DirectoryPath, error) {
	if o.anchor == "" {
		return nil, nil, fmt.Errorf("--anchor must not be empty")
	}
	anchor := configvars.NewDirectoryPath(o.anchor)

	s := configvars.NewSession(configvars.WithLogger(ctxlog.FromContext(ctx)))

	var errs []error
	for _, config := range o.configs {
		errs = append(errs, loader.Load(ctx, o.fs, config, s, anchor)...)
	}
	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}

	return s, anchor, nil
}

func (o *options) print(resolutions []printer.Resolution) error {
	format, err := printer.ParseFormat(o.format)
	if err != nil {
		return err
	}
	return printer.Print(o.stdout, format, resolutions)
}
