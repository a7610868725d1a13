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
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/configvars/ctxlog"
	"github.com/google/configvars/pathtools"
)

// SkipDir can be returned by a DirVisitor to skip the subdirectories of the
// directory being visited.
var SkipDir = errors.New("skip this directory")

// A DirVisitor is called by Walk for every directory after the directory's
// config variables have been set up.  dir is the directory's DirectoryPath
// and fsPath its location in the FileSystem.
type DirVisitor func(ctx context.Context, dir DirectoryPath, fsPath string) error

// A WalkError is an error that occurred while walking a directory.
type WalkError struct {
	Dir string
	Err error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("%s: %s", e.Dir, e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Walk walks the source tree rooted at rootDir depth-first, with the
// subdirectories of each directory visited in lexical order.  rootDir
// corresponds to anchor, and each subdirectory to its parent's path with
// the subdirectory name appended.
//
// For every directory Walk calls SetUpConfigVars and then visit, and only
// then descends into the subdirectories, so a directory and everything below
// it is finished before its next sibling is started.  If visit returns
// SkipDir the subdirectories are skipped; any other error is collected and
// also skips the subdirectories.  Hidden directories are not visited.
//
// When the walk ends the ambient globals are restored with RestoreGlobals.
func (s *Session) Walk(ctx context.Context, fs pathtools.FileSystem, rootDir string,
	anchor DirectoryPath, visit DirVisitor) (errs []error) {

	defer s.RestoreGlobals()

	isDir, err := fs.IsDir(rootDir)
	if err != nil {
		return []error{&WalkError{Dir: rootDir, Err: err}}
	}
	if !isDir {
		return []error{&WalkError{Dir: rootDir, Err: fmt.Errorf("not a directory")}}
	}

	w := &walker{
		session: s,
		fs:      fs,
		visit:   visit,
	}
	w.walk(ctx, rootDir, anchor)

	ctxlog.FromContext(ctx).Debug("walked source tree", "root", rootDir,
		"dirs", w.count, "errors", len(w.errs))

	return w.errs
}

type walker struct {
	session *Session
	fs      pathtools.FileSystem
	visit   DirVisitor

	count int
	errs  []error
}

// walk returns false if the walk was cancelled.
func (w *walker) walk(ctx context.Context, dir string, path DirectoryPath) bool {
	if err := ctx.Err(); err != nil {
		w.errs = append(w.errs, err)
		return false
	}

	w.count++
	w.session.SetUpConfigVars(path)

	if w.visit != nil {
		err := w.visit(ctx, NewDirectoryPath(path...), dir)
		if errors.Is(err, SkipDir) {
			return true
		} else if err != nil {
			w.errs = append(w.errs, &WalkError{Dir: dir, Err: err})
			return true
		}
	}

	subdirs, err := w.fs.ListDirs(dir)
	if err != nil {
		w.errs = append(w.errs, &WalkError{Dir: dir, Err: err})
		return true
	}

	for _, subdir := range subdirs {
		if !w.walk(ctx, filepath.Join(dir, subdir), path.Join(subdir)) {
			return false
		}
	}

	return true
}
