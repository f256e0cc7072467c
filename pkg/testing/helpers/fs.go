// Prestarter
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Prestarter.
//
// Prestarter is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Prestarter is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Prestarter.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// VDFEscapePath escapes backslashes in paths for VDF files.
func VDFEscapePath(path string) string {
	return strings.ReplaceAll(path, `\`, `\\`)
}

// WriteFile writes content to path, creating parent directories.
func (h *FSHelper) WriteFile(path, content string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for file %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// CreateLibraryFolders writes steamDir/steamapps/libraryfolders.vdf listing
// the given library roots under keys "0", "1", ... in order.
func (h *FSHelper) CreateLibraryFolders(steamDir string, libraries ...string) error {
	var b strings.Builder
	b.WriteString("\"libraryfolders\"\n{\n")
	for i, lib := range libraries {
		_, _ = fmt.Fprintf(&b, "\t\"%d\"\n\t{\n", i)
		_, _ = fmt.Fprintf(&b, "\t\t\"path\"\t\t\"%s\"\n", VDFEscapePath(lib))
		b.WriteString("\t\t\"label\"\t\t\"\"\n")
		b.WriteString("\t\t\"contentid\"\t\t\"123456\"\n")
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n")
	return h.WriteFile(filepath.Join(steamDir, "steamapps", "libraryfolders.vdf"), b.String())
}

// CreateAppManifest writes an appmanifest_<id>.acf into the library's
// steamapps directory. An empty name leaves the name key out.
func (h *FSHelper) CreateAppManifest(libraryRoot string, id uint32, name, installDir string) error {
	var b strings.Builder
	b.WriteString("\"AppState\"\n{\n")
	_, _ = fmt.Fprintf(&b, "\t\"appid\"\t\t\"%d\"\n", id)
	b.WriteString("\t\"Universe\"\t\t\"1\"\n")
	if name != "" {
		_, _ = fmt.Fprintf(&b, "\t\"name\"\t\t\"%s\"\n", name)
	}
	b.WriteString("\t\"StateFlags\"\t\t\"4\"\n")
	_, _ = fmt.Fprintf(&b, "\t\"installdir\"\t\t\"%s\"\n", installDir)
	b.WriteString("}\n")

	path := filepath.Join(libraryRoot, "steamapps", fmt.Sprintf("appmanifest_%d.acf", id))
	return h.WriteFile(path, b.String())
}

// CreateFiles creates empty files with the given names inside dir.
func (h *FSHelper) CreateFiles(dir string, names ...string) error {
	if err := h.Fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	for _, name := range names {
		if err := afero.WriteFile(h.Fs, filepath.Join(dir, name), []byte{}, 0o644); err != nil {
			return fmt.Errorf("failed to create file %s: %w", name, err)
		}
	}
	return nil
}

// UnreadableFS wraps an Fs so that opening any of the listed paths fails
// with a permission error while Stat still succeeds.
type UnreadableFS struct {
	afero.Fs
	paths map[string]struct{}
}

func NewUnreadableFS(base afero.Fs, paths ...string) *UnreadableFS {
	u := &UnreadableFS{Fs: base, paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		u.paths[filepath.Clean(p)] = struct{}{}
	}
	return u
}

func (u *UnreadableFS) Open(name string) (afero.File, error) {
	if _, ok := u.paths[filepath.Clean(name)]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	//nolint:wrapcheck // passthrough
	return u.Fs.Open(name)
}

func (u *UnreadableFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if _, ok := u.paths[filepath.Clean(name)]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	//nolint:wrapcheck // passthrough
	return u.Fs.OpenFile(name, flag, perm)
}

// StatErrorFS wraps an Fs so that Stat and Lstat of any of the listed
// paths fail with a permission error. Directory listings still show them.
type StatErrorFS struct {
	afero.Fs
	paths map[string]struct{}
}

func NewStatErrorFS(base afero.Fs, paths ...string) *StatErrorFS {
	s := &StatErrorFS{Fs: base, paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		s.paths[filepath.Clean(p)] = struct{}{}
	}
	return s
}

func (s *StatErrorFS) Stat(name string) (os.FileInfo, error) {
	if _, ok := s.paths[filepath.Clean(name)]; ok {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	//nolint:wrapcheck // passthrough
	return s.Fs.Stat(name)
}

func (s *StatErrorFS) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if _, ok := s.paths[filepath.Clean(name)]; ok {
		return nil, false, &os.PathError{Op: "lstat", Path: name, Err: os.ErrPermission}
	}
	info, err := s.Fs.Stat(name)
	//nolint:wrapcheck // passthrough
	return info, false, err
}
