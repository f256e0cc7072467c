//go:build !windows && !darwin

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
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const FlatpakSteamID = "com.valvesoftware.Steam"

func (l *Locator) candidates() []string {
	var paths []string

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get user home directory")
	} else {
		paths = append(paths,
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
		)
		if l.opts.CheckFlatpak {
			paths = append(paths, filepath.Join(
				home, ".var", "app", FlatpakSteamID, ".steam", "steam",
			))
		}
		paths = append(paths, filepath.Join(home, "snap", "steam", "common", ".steam", "steam"))
	}

	paths = append(paths, l.opts.ExtraPaths...)

	return append(paths, "/usr/games/steam", "/opt/steam")
}
