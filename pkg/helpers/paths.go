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

	"github.com/ZaparooProject/prestarter/pkg/config"
	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

// PathExists reports whether root joined with the relative fragments exists
// on fs. Any stat failure, including a missing path, is reported as false.
func PathExists(fs afero.Fs, root string, rel ...string) bool {
	if root == "" {
		return false
	}
	path := filepath.Join(append([]string{root}, rel...)...)
	_, err := fs.Stat(path)
	return err == nil
}

// CanonicalPath returns the absolute form of path with symlinks resolved.
// If symlinks can't be evaluated the cleaned absolute path is returned.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// NormalizePathForComparison normalizes a path for case-insensitive
// comparison, converting to forward slashes and lowercase.
func NormalizePathForComparison(path string) string {
	p := filepath.ToSlash(filepath.Clean(path))
	return strings.ToLower(p)
}

// ConfigDir is where the settings file lives.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// StateDir holds runtime state such as the log file.
func StateDir() string {
	return filepath.Join(xdg.StateHome, config.AppName)
}

// EnsureDirectories creates each of dirs if it doesn't already exist.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
