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
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

const (
	manifestPrefix = "appmanifest_"
	manifestExt    = ".acf"
)

func isManifestName(name string) bool {
	return strings.HasPrefix(name, manifestPrefix) && strings.HasSuffix(name, manifestExt)
}

// ReadAppManifest reads an appmanifest_<id>.acf file from steamAppsDir.
// The returned App's InstallDir is steamAppsDir/common/<installdir>.
//
// A file that can't be read returns the underlying filesystem error. A file
// that was read but lacks the expected data returns an error wrapping
// ErrMalformedManifest.
func ReadAppManifest(fs afero.Fs, steamAppsDir, fileName string) (App, error) {
	path := filepath.Join(steamAppsDir, fileName)

	m, err := readVDF(fs, path)
	if err != nil {
		if errors.Is(err, errVDFSyntax) {
			return App{}, fmt.Errorf("%w: %w", ErrMalformedManifest, err)
		}
		return App{}, err
	}

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		return App{}, fmt.Errorf("%w: appstate is not a map in %s", ErrMalformedManifest, path)
	}

	rawID, ok := appState["appid"].(string)
	if !ok {
		return App{}, fmt.Errorf("%w: appid is not a string in %s", ErrMalformedManifest, path)
	}
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return App{}, fmt.Errorf("%w: invalid appid %q in %s", ErrMalformedManifest, rawID, path)
	}

	installDir, ok := appState["installdir"].(string)
	if !ok || installDir == "" {
		return App{}, fmt.Errorf("%w: installdir missing in %s", ErrMalformedManifest, path)
	}

	name, _ := appState["name"].(string) //nolint:revive // name is optional

	return App{
		ID:         uint32(id),
		Name:       name,
		InstallDir: filepath.Join(steamAppsDir, "common", installDir),
	}, nil
}
