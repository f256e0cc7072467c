//go:build windows

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
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

type registryLocation struct {
	path  string
	value string
	root  registry.Key
}

var registryLocations = []registryLocation{
	// 64-bit systems first (most common)
	{root: registry.LOCAL_MACHINE, path: `SOFTWARE\Wow6432Node\Valve\Steam`, value: "InstallPath"},
	{root: registry.LOCAL_MACHINE, path: `SOFTWARE\Valve\Steam`, value: "InstallPath"},
	{root: registry.CURRENT_USER, path: `SOFTWARE\Valve\Steam`, value: "SteamPath"},
}

func (l *Locator) candidates() []string {
	var paths []string

	for _, loc := range registryLocations {
		key, err := registry.OpenKey(loc.root, loc.path, registry.QUERY_VALUE)
		if err != nil {
			continue
		}

		installPath, _, err := key.GetStringValue(loc.value)
		if closeErr := key.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry key")
		}
		if err != nil || installPath == "" {
			continue
		}

		// SteamPath is stored with forward slashes
		paths = append(paths, filepath.Clean(installPath))
	}

	paths = append(paths, l.opts.ExtraPaths...)

	return append(paths, `C:\Program Files (x86)\Steam`)
}
