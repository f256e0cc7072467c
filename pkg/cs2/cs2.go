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

// Package cs2 knows the Counter-Strike 2 install layout: where maps live,
// where the server binary is, and how to start a dedicated server.
package cs2

import "path/filepath"

const (
	// MapExt is the packaging extension of map files.
	MapExt = ".vpk"

	// SupportedOS is the only GOOS the server binary can be started on.
	SupportedOS = "windows"

	BinaryName = "cs2.exe"

	// GameAliasEnv carries the game mode alias to the server process.
	GameAliasEnv = "game_alias"

	DefaultHost = "127.0.0.1"
	DefaultPort = 27015
)

var (
	// MapsDir is relative to the install directory.
	MapsDir = filepath.Join("game", "csgo", "maps")
	// BinaryDir is relative to the install directory.
	BinaryDir = filepath.Join("game", "bin", "win64")
)
