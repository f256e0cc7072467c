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
	"testing"

	testhelpers "github.com/ZaparooProject/prestarter/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	customDir := filepath.FromSlash("/custom/Steam")
	extraDir := filepath.FromSlash("/extra/Steam")

	t.Run("uses_override_when_present", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.Fs.MkdirAll(customDir, 0o755))
		require.NoError(t, h.Fs.MkdirAll(extraDir, 0o755))

		dir, err := NewLocator(h.Fs, Options{ExtraPaths: []string{extraDir}}, customDir).Locate()

		require.NoError(t, err)
		assert.Equal(t, customDir, dir)
	})

	t.Run("falls_back_when_override_missing", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.Fs.MkdirAll(extraDir, 0o755))

		dir, err := NewLocator(h.Fs, Options{ExtraPaths: []string{extraDir}}, customDir).Locate()

		require.NoError(t, err)
		assert.Equal(t, extraDir, dir)
	})

	t.Run("ignores_files_named_like_steam", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.WriteFile(extraDir, "not a directory"))

		_, err := NewLocator(h.Fs, Options{ExtraPaths: []string{extraDir}}, "").Locate()

		require.ErrorIs(t, err, ErrPlatformNotFound)
	})

	t.Run("platform_not_found_when_nothing_exists", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()

		_, err := NewLocator(h.Fs, DefaultOptions(), "").Locate()

		require.ErrorIs(t, err, ErrPlatformNotFound)
	})
}

func TestDirLocator(t *testing.T) {
	t.Parallel()

	dir, err := DirLocator("/steam").Locate()
	require.NoError(t, err)
	assert.Equal(t, "/steam", dir)

	_, err = DirLocator("").Locate()
	require.ErrorIs(t, err, ErrPlatformNotFound)
}
