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

package pathtools

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// OsFs is the FileSystem backed by the local disk.
var OsFs FileSystem = osFs{}

// MockFs returns a FileSystem backed by the given map of file names to
// contents.  Every parent directory of a file exists implicitly.  A name
// ending in "/" creates an empty directory.
func MockFs(files map[string][]byte) FileSystem {
	fs := &mockFs{
		files: make(map[string][]byte, len(files)),
		dirs:  make(map[string]bool),
	}

	for f, b := range files {
		isDir := strings.HasSuffix(f, "/")
		f = filepath.Clean(f)
		if isDir {
			fs.dirs[f] = true
		} else {
			fs.files[f] = b
		}
		dir := filepath.Dir(f)
		for dir != "." && dir != "/" {
			fs.dirs[dir] = true
			dir = filepath.Dir(dir)
		}
		fs.dirs[dir] = true
	}

	return fs
}

// A FileSystem is the subset of file system operations needed to load
// configuration files and walk a source tree.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	// Exists returns whether name exists and whether it is a directory.
	Exists(name string) (exists, isDir bool, err error)
	IsDir(name string) (bool, error)
	// ListDirs returns the names of the immediate subdirectories of name in
	// lexical order.  Hidden directories are not returned.
	ListDirs(name string) (dirs []string, err error)
}

// osFs implements FileSystem using the local disk.
type osFs struct{}

func (osFs) Open(name string) (io.ReadCloser, error) { return os.Open(name) }

func (osFs) Exists(name string) (bool, bool, error) {
	stat, err := os.Stat(name)
	if err == nil {
		return true, stat.IsDir(), nil
	} else if os.IsNotExist(err) {
		return false, false, nil
	} else {
		return false, false, err
	}
}

func (osFs) IsDir(name string) (bool, error) {
	info, err := os.Stat(name)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (osFs) ListDirs(name string) ([]string, error) {
	entries, err := os.ReadDir(name)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		dirs = append(dirs, entry.Name())
	}

	// os.ReadDir already sorts by name
	return dirs, nil
}

type mockFs struct {
	files map[string][]byte
	dirs  map[string]bool
}

func (m *mockFs) Open(name string) (io.ReadCloser, error) {
	if f, ok := m.files[filepath.Clean(name)]; ok {
		return io.NopCloser(bytes.NewReader(f)), nil
	}

	return nil, &os.PathError{
		Op:   "open",
		Path: name,
		Err:  os.ErrNotExist,
	}
}

func (m *mockFs) Exists(name string) (bool, bool, error) {
	name = filepath.Clean(name)
	if _, ok := m.files[name]; ok {
		return ok, false, nil
	}
	if _, ok := m.dirs[name]; ok {
		return ok, true, nil
	}
	return false, false, nil
}

func (m *mockFs) IsDir(name string) (bool, error) {
	return m.dirs[filepath.Clean(name)], nil
}

func (m *mockFs) ListDirs(name string) ([]string, error) {
	name = filepath.Clean(name)
	if !m.dirs[name] {
		return nil, &os.PathError{
			Op:   "readdir",
			Path: name,
			Err:  fmt.Errorf("not a directory"),
		}
	}

	var dirs []string
	for d := range m.dirs {
		if d == name || filepath.Dir(d) != name {
			continue
		}
		if base := filepath.Base(d); !isHidden(base) {
			dirs = append(dirs, base)
		}
	}
	sort.Strings(dirs)

	return dirs, nil
}

func isHidden(name string) bool {
	return name[0] == '.' && name != "."
}
