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

package steam

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/ZaparooProject/prestarter/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const libraryFoldersFile = "libraryfolders.vdf"

// FindSteamAppsDir finds the steamapps directory under a Steam root or
// library root, accepting the mixed-case variant older installs use.
func FindSteamAppsDir(fs afero.Fs, root string) string {
	for _, candidate := range []string{"steamapps", "SteamApps"} {
		path := filepath.Join(root, candidate)
		if info, err := fs.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return filepath.Join(root, "steamapps")
}

// ReadLibraryFolders returns the library root paths listed in the
// libraryfolders.vdf file inside steamAppsDir, ordered by their numeric key.
//
// Both the current layout, where each entry is a block with a "path" key,
// and the legacy layout, where each entry is the path itself, are read.
func ReadLibraryFolders(fs afero.Fs, steamAppsDir string) ([]string, error) {
	path := filepath.Join(steamAppsDir, libraryFoldersFile)

	m, err := readVDF(fs, path)
	if err != nil {
		if errors.Is(err, errVDFSyntax) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrPlatformNotFound, err)
	}

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: libraryfolders is not a map in %s", ErrInvalidRoot, path)
	}

	type entry struct {
		path string
		key  int
	}
	entries := make([]entry, 0, len(lfs))

	for k, v := range lfs {
		// contentstatsid, timenextstatsreport and friends
		key, err := strconv.Atoi(k)
		if err != nil {
			continue
		}

		var libraryPath string
		switch lv := v.(type) {
		case string:
			libraryPath = lv
		case map[string]any:
			p, ok := lv["path"].(string)
			if !ok {
				return nil, fmt.Errorf("%w: library %s has no path", ErrInvalidRoot, k)
			}
			libraryPath = p
		default:
			return nil, fmt.Errorf("%w: library %s has unexpected type %T", ErrInvalidRoot, k, v)
		}

		if libraryPath == "" {
			return nil, fmt.Errorf("%w: library %s has an empty path", ErrInvalidRoot, k)
		}

		entries = append(entries, entry{key: key, path: libraryPath})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	paths := make([]string, len(entries))
	for i, e := range entries {
		log.Debug().Int("key", e.key).Str("path", e.path).Msg("found steam library")
		paths[i] = e.path
	}
	return paths, nil
}

// libraryRoots returns steamDir followed by the listed libraries, with
// repeats removed and first occurrence kept. Paths differing only in case
// are repeats on Windows.
func libraryRoots(steamDir string, libraries []string) []string {
	seen := make(map[string]struct{}, len(libraries)+1)
	roots := make([]string, 0, len(libraries)+1)
	for _, p := range append([]string{steamDir}, libraries...) {
		clean := filepath.Clean(p)
		key := clean
		if runtime.GOOS == "windows" {
			key = helpers.NormalizePathForComparison(clean)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		roots = append(roots, clean)
	}
	return roots
}
