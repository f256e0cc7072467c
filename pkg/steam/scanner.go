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
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// RootLocator finds the Steam root directory.
type RootLocator interface {
	Locate() (string, error)
}

var (
	_ RootLocator = (*Locator)(nil)
	_ RootLocator = DirLocator("")
)

// Scanner builds an Index of every app installed across all Steam
// libraries. It keeps no state between scans.
type Scanner struct {
	fs      afero.Fs
	locator RootLocator
}

func NewScanner(fs afero.Fs, locator RootLocator) *Scanner {
	return &Scanner{
		fs:      fs,
		locator: locator,
	}
}

// Scan reads every library from disk and returns the installed apps.
//
// Libraries are visited with the Steam root first and then in
// libraryfolders.vdf order; when two libraries hold the same app ID the
// later one wins. A library whose steamapps directory can't be listed and
// a manifest that can't be read are skipped. A malformed manifest fails
// the scan.
func (s *Scanner) Scan() (Index, error) {
	steamDir, err := s.locator.Locate()
	if err != nil {
		return nil, err
	}

	info, err := s.fs.Stat(steamDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrPlatformNotFound, steamDir)
	}

	libraries, err := ReadLibraryFolders(s.fs, FindSteamAppsDir(s.fs, steamDir))
	if err != nil {
		return nil, err
	}

	roots := libraryRoots(steamDir, libraries)
	index := make(Index)
	for _, root := range roots {
		if err := s.scanLibrary(root, index); err != nil {
			return nil, err
		}
	}

	log.Debug().
		Int("libraries", len(roots)).
		Int("apps", len(index)).
		Msg("steam library scan complete")

	return index, nil
}

func (s *Scanner) scanLibrary(root string, index Index) error {
	steamAppsDir := FindSteamAppsDir(s.fs, root)

	names, err := readDirNames(s.fs, steamAppsDir)
	if err != nil {
		log.Warn().Err(err).Str("library", root).Msg("skipping unreadable steam library")
		return nil
	}
	sort.Strings(names)

	for _, name := range names {
		if !isManifestName(name) {
			continue
		}

		app, err := ReadAppManifest(s.fs, steamAppsDir, name)
		if errors.Is(err, ErrMalformedManifest) {
			return err
		} else if err != nil {
			log.Warn().Err(err).Str("manifest", name).Msg("skipping unreadable app manifest")
			continue
		}

		if prev, ok := index[app.ID]; ok {
			log.Debug().
				Uint32("appID", app.ID).
				Str("previous", prev.InstallDir).
				Str("current", app.InstallDir).
				Msg("app found in multiple libraries, keeping latest")
		}
		index[app.ID] = app
	}

	return nil
}

func readDirNames(fs afero.Fs, dir string) ([]string, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dir, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", dir).Msg("error closing directory")
		}
	}()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	return names, nil
}
