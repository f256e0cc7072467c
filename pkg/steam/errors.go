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

import "errors"

var (
	// ErrPlatformNotFound means no Steam installation could be located, or
	// its library list could not be read.
	ErrPlatformNotFound = errors.New("steam installation not found")

	// ErrInvalidRoot means Steam was found but its library list is
	// structurally invalid.
	ErrInvalidRoot = errors.New("invalid steam library folders")

	// ErrMissingTarget means Steam was found but the requested app is not
	// installed in any library.
	ErrMissingTarget = errors.New("app not installed")

	// ErrMalformedManifest means an app manifest was readable but did not
	// contain the expected data.
	ErrMalformedManifest = errors.New("malformed app manifest")
)
