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
	"os"
	"path/filepath"
	"testing"

	testhelpers "github.com/ZaparooProject/prestarter/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAppManifest(t *testing.T) {
	t.Parallel()

	appsDir := filepath.Join(steamRoot, "steamapps")

	tests := []struct {
		wantErr error
		name    string
		content string
		want    App
	}{
		{
			name: "reads_full_manifest",
			content: `"AppState"
{
	"appid"		"730"
	"Universe"		"1"
	"name"		"Counter-Strike 2"
	"StateFlags"		"4"
	"installdir"		"Counter-Strike Global Offensive"
}`,
			want: App{
				ID:         730,
				Name:       "Counter-Strike 2",
				InstallDir: filepath.Join(appsDir, "common", "Counter-Strike Global Offensive"),
			},
		},
		{
			name: "accepts_mixed_case_keys",
			content: `"appstate"
{
	"AppID"		"570"
	"Name"		"Dota 2"
	"InstallDir"		"dota 2 beta"
}`,
			want: App{
				ID:         570,
				Name:       "Dota 2",
				InstallDir: filepath.Join(appsDir, "common", "dota 2 beta"),
			},
		},
		{
			name:    "rejects_missing_appstate",
			content: `"Other" { "appid" "1" }`,
			wantErr: ErrMalformedManifest,
		},
		{
			name:    "rejects_non_numeric_appid",
			content: `"AppState" { "appid" "abc" "installdir" "x" }`,
			wantErr: ErrMalformedManifest,
		},
		{
			name:    "rejects_appid_overflowing_uint32",
			content: `"AppState" { "appid" "4294967296" "installdir" "x" }`,
			wantErr: ErrMalformedManifest,
		},
		{
			name:    "rejects_missing_installdir",
			content: `"AppState" { "appid" "730" "name" "Counter-Strike 2" }`,
			wantErr: ErrMalformedManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := testhelpers.NewMemoryFS()
			require.NoError(t, h.WriteFile(filepath.Join(appsDir, "appmanifest_test.acf"), tt.content))

			app, err := ReadAppManifest(h.Fs, appsDir, "appmanifest_test.acf")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, app)
		})
	}

	t.Run("returns_read_error_for_unreadable_file", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.CreateAppManifest(steamRoot, 730, "Counter-Strike 2", "cs2"))
		fs := testhelpers.NewUnreadableFS(h.Fs, filepath.Join(appsDir, "appmanifest_730.acf"))

		_, err := ReadAppManifest(fs, appsDir, "appmanifest_730.acf")

		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrPermission))
		assert.False(t, errors.Is(err, ErrMalformedManifest))
	})
}

func TestIsManifestName(t *testing.T) {
	t.Parallel()

	assert.True(t, isManifestName("appmanifest_730.acf"))
	assert.False(t, isManifestName("appmanifest_730.acf.tmp"))
	assert.False(t, isManifestName("libraryfolders.vdf"))
	assert.False(t, isManifestName("workshop_730.acf"))
}
