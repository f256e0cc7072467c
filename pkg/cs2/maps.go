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

package cs2

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ListMaps returns the names of the .vpk map packages in the install's
// maps directory, without the extension, in directory listing order.
//
// The bool is false if the maps directory couldn't be read, which is
// distinct from an existing directory with no maps (empty slice, true).
// Entries that can't be inspected are skipped.
func ListMaps(fs afero.Fs, installDir string) ([]string, bool) {
	mapsDir := filepath.Join(installDir, MapsDir)

	f, err := fs.Open(mapsDir)
	if err != nil {
		log.Debug().Err(err).Str("path", mapsDir).Msg("maps directory not readable")
		return nil, false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing maps directory")
		}
	}()

	names, err := f.Readdirnames(-1)
	if err != nil {
		log.Debug().Err(err).Str("path", mapsDir).Msg("maps directory not listable")
		return nil, false
	}

	maps := make([]string, 0, len(names))
	for _, name := range names {
		base, ok := strings.CutSuffix(name, MapExt)
		if !ok || base == "" {
			continue
		}

		info, err := fs.Stat(filepath.Join(mapsDir, name))
		if err != nil {
			log.Debug().Err(err).Str("name", name).Msg("skipping unreadable map entry")
			continue
		}
		if info.IsDir() {
			continue
		}

		maps = append(maps, base)
	}

	return maps, true
}

// SortedMaps returns a sorted copy of maps for display.
func SortedMaps(maps []string) []string {
	sorted := make([]string, len(maps))
	copy(sorted, maps)
	sort.Strings(sorted)
	return sorted
}
