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
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Locator finds the Steam root directory.
type Locator struct {
	fs       afero.Fs
	override string
	opts     Options
}

// NewLocator creates a Locator. A non-empty override is tried before any
// platform location.
func NewLocator(fs afero.Fs, opts Options, override string) *Locator {
	return &Locator{
		fs:       fs,
		opts:     opts,
		override: override,
	}
}

// Locate returns the first existing Steam root, or an error wrapping
// ErrPlatformNotFound.
func (l *Locator) Locate() (string, error) {
	if l.override != "" {
		if l.isDir(l.override) {
			log.Debug().Msgf("using user-configured Steam directory: %s", l.override)
			return l.override, nil
		}
		log.Warn().Msgf("user-configured Steam directory not found: %s", l.override)
	}

	paths := l.candidates()
	for _, path := range paths {
		if l.isDir(path) {
			log.Debug().Msgf("found Steam installation: %s", path)
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: checked %d locations", ErrPlatformNotFound, len(paths))
}

func (l *Locator) isDir(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && info.IsDir()
}

// DirLocator always reports the same Steam root.
type DirLocator string

func (d DirLocator) Locate() (string, error) {
	if d == "" {
		return "", fmt.Errorf("%w: no directory given", ErrPlatformNotFound)
	}
	return string(d), nil
}
