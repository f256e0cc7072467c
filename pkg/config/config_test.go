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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, CfgFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("writes_defaults_on_first_run", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested")

		cfg, err := NewConfig(dir, BaseDefaults)
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, CfgFile))
		assert.Equal(t, DefaultAppID, cfg.AppID())
		assert.Equal(t, DefaultServer, cfg.Server())
		assert.Empty(t, cfg.SteamInstallDir())
		assert.False(t, cfg.DebugLogging())
	})

	t.Run("loads_existing_values_over_defaults", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeConfig(t, dir, `config_schema = 1
debug_logging = true

[steam]
app_id = 740
install_dir = "/games/steam"

[server]
map = "de_mirage"
game_alias = "wingman"
mp_maxrounds = 16
`)

		cfg, err := NewConfig(dir, BaseDefaults)
		require.NoError(t, err)

		assert.True(t, cfg.DebugLogging())
		assert.Equal(t, uint32(740), cfg.AppID())
		assert.Equal(t, "/games/steam", cfg.SteamInstallDir())

		srv := cfg.Server()
		assert.Equal(t, "de_mirage", srv.Map)
		assert.Equal(t, GameAliasWingman, srv.GameAlias)
		assert.Equal(t, uint32(16), srv.MaxRounds)
		// untouched keys keep their defaults
		assert.Equal(t, DefaultServer.RoundTime, srv.RoundTime)
		assert.Equal(t, DefaultServer.Password, srv.Password)
	})

	t.Run("rejects_schema_mismatch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeConfig(t, dir, "config_schema = 99\n")

		_, err := NewConfig(dir, BaseDefaults)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema version mismatch")
	})

	t.Run("rejects_invalid_toml", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeConfig(t, dir, "this is = = not toml")

		_, err := NewConfig(dir, BaseDefaults)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal config")
	})

	t.Run("rejects_invalid_values", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeConfig(t, dir, `config_schema = 1
[server]
game_alias = "deathmatch"
mp_buy_anywhere = 7
`)

		_, err := NewConfig(dir, BaseDefaults)

		require.Error(t, err)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, err.Error(), "game_alias must be one of")
		assert.Contains(t, err.Error(), "mp_buy_anywhere must be at most 3")
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	srv := cfg.Server()
	srv.Map = "de_inferno"
	srv.Password = "hunter2"
	srv.FriendlyFire = false
	require.NoError(t, cfg.SetServer(srv))
	cfg.SetAppID(1234)
	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, srv, reloaded.Server())
	assert.Equal(t, uint32(1234), reloaded.AppID())
	assert.True(t, reloaded.DebugLogging())
}

func TestSetServer(t *testing.T) {
	t.Parallel()

	t.Run("rejects_buytime_longer_than_round", func(t *testing.T) {
		t.Parallel()

		cfg := &Instance{vals: BaseDefaults}
		srv := DefaultServer
		srv.BuyTime = srv.RoundTime + 1

		err := cfg.SetServer(srv)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mp_buytime must not exceed mp_roundtime")
		assert.Equal(t, DefaultServer, cfg.Server())
	})

	t.Run("rejects_empty_map", func(t *testing.T) {
		t.Parallel()

		cfg := &Instance{vals: BaseDefaults}
		srv := DefaultServer
		srv.Map = ""

		err := cfg.SetServer(srv)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "map is required")
	})

	t.Run("accepts_valid_settings", func(t *testing.T) {
		t.Parallel()

		cfg := &Instance{vals: BaseDefaults}
		srv := DefaultServer
		srv.GameAlias = GameAliasCasual
		srv.RandomSpawn = RandomSpawnAll

		require.NoError(t, cfg.SetServer(srv))
		assert.Equal(t, srv, cfg.Server())
	})
}

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(&BaseDefaults))
}

// TestPropertyServerTimingsValidate verifies that settings within the
// documented ranges always pass and a buy time past the round never does.
func TestPropertyServerTimingsValidate(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		srv := DefaultServer
		srv.RoundTime = rapid.Uint32Range(0, 3600).Draw(t, "roundTime")
		srv.BuyTime = rapid.Uint32Range(0, srv.RoundTime).Draw(t, "buyTime")
		srv.C4Timer = rapid.Uint32Range(0, srv.RoundTime).Draw(t, "c4Timer")
		srv.FreezeTime = rapid.Uint32Range(0, srv.RoundTime).Draw(t, "freezeTime")
		srv.BuyAnywhere = rapid.Uint8Range(0, 3).Draw(t, "buyAnywhere")
		srv.RandomSpawn = rapid.Uint8Range(0, 3).Draw(t, "randomSpawn")
		srv.GameAlias = rapid.SampledFrom([]string{
			GameAliasCompetitive, GameAliasWingman, GameAliasCasual, GameAliasCustom,
		}).Draw(t, "gameAlias")

		if err := Validate(&srv); err != nil {
			t.Fatalf("valid settings rejected: %v", err)
		}

		srv.BuyTime = srv.RoundTime + rapid.Uint32Range(1, 100).Draw(t, "excess")
		if err := Validate(&srv); err == nil {
			t.Fatalf("buy time %d past round time %d accepted", srv.BuyTime, srv.RoundTime)
		}
	})
}
