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

// Package steam discovers installed Steam apps by reading the library
// folder list and the app manifests in each library.
package steam

import (
	"fmt"
	"sort"
)

// App is an installed Steam app.
type App struct {
	// Name is the display name from the manifest, empty if not recorded.
	Name       string `csv:"name"`
	InstallDir string `csv:"install_dir"`
	ID         uint32 `csv:"app_id"`
}

// DisplayName returns the app name, falling back to "Steam App <id>".
func (a App) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("Steam App %d", a.ID)
}

// Index maps app IDs to installed apps. A scan builds a fresh Index and
// nothing mutates it afterwards.
type Index map[uint32]App

// Lookup returns the app with the given ID, or an error wrapping
// ErrMissingTarget.
func (idx Index) Lookup(id uint32) (App, error) {
	app, ok := idx[id]
	if !ok {
		return App{}, fmt.Errorf("%w: app id %d", ErrMissingTarget, id)
	}
	return app, nil
}

// Sorted returns the apps in ascending ID order.
func (idx Index) Sorted() []App {
	apps := make([]App, 0, len(idx))
	for _, app := range idx {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].ID < apps[j].ID
	})
	return apps
}

// Options configures Steam detection.
type Options struct {
	// ExtraPaths are checked after the platform's standard locations.
	ExtraPaths []string
	// CheckFlatpak adds the Flatpak Steam location (Linux only).
	CheckFlatpak bool
}

// DefaultOptions returns detection settings suitable for desktop systems.
func DefaultOptions() Options {
	return Options{
		CheckFlatpak: true,
	}
}
