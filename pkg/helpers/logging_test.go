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

package helpers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZaparooProject/prestarter/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupDirs bool
	}{
		{
			name:      "creates_both_directories",
			setupDirs: false,
		},
		{
			name:      "works_when_directories_already_exist",
			setupDirs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			testRoot := t.TempDir()
			cfgDir := filepath.Join(testRoot, "config", "nested")
			stateDir := filepath.Join(testRoot, "state", "nested")

			if tt.setupDirs {
				require.NoError(t, os.MkdirAll(cfgDir, 0o750))
				require.NoError(t, os.MkdirAll(stateDir, 0o750))
			}

			require.NoError(t, EnsureDirectories(cfgDir, stateDir))

			for _, dir := range []string{cfgDir, stateDir} {
				info, err := os.Stat(dir)
				require.NoError(t, err)
				assert.True(t, info.IsDir())
				if runtime.GOOS != "windows" {
					assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
				}
			}
		})
	}
}

func TestEnsureDirectoriesErrorHandling(t *testing.T) {
	t.Parallel()

	err := EnsureDirectories(t.TempDir(), "/proc/invalid\x00path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}

func TestInitLogging(t *testing.T) {
	// Note: Cannot use t.Parallel() because InitLogging modifies global log.Logger
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	t.Run("creates_log_directory", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "logs")

		require.NoError(t, InitLogging(logDir, nil))

		info, err := os.Stat(logDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("writes_to_file_and_extra_writers", func(t *testing.T) {
		logDir := t.TempDir()
		buf := &bytes.Buffer{}

		require.NoError(t, InitLogging(logDir, []io.Writer{buf}))
		log.Info().Msg("logging initialized")

		assert.Contains(t, buf.String(), "logging initialized")
		data, err := os.ReadFile(filepath.Join(logDir, config.LogFile))
		require.NoError(t, err)
		assert.Contains(t, string(data), "logging initialized")
	})
}
