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

package cs2

import (
	"fmt"
	"strconv"

	"github.com/ZaparooProject/prestarter/pkg/config"
)

// BuildArgs turns server settings into the dedicated server command line.
// The order is fixed.
func BuildArgs(s config.Server) []string { //nolint:gocritic // settings are a value
	args := []string{"-dedicated"}
	if s.Insecure {
		args = append(args, "-insecure")
	}

	return append(args,
		"+map", s.Map,
		"+mp_autokick", boolArg(s.AutoKick),
		"+mp_buy_anywhere", strconv.FormatUint(uint64(s.BuyAnywhere), 10),
		"+mp_buytime", uintArg(s.BuyTime),
		"+mp_c4timer", uintArg(s.C4Timer),
		"+mp_freezetime", uintArg(s.FreezeTime),
		"+mp_friendlyfire", boolArg(s.FriendlyFire),
		"+mp_maxrounds", uintArg(s.MaxRounds),
		"+mp_randomspawn", strconv.FormatUint(uint64(s.RandomSpawn), 10),
		"+mp_roundtime", SecondsToMinutes(s.RoundTime),
		"+mp_warmuptime", uintArg(s.WarmupTime),
		"+mp_endwarmup_player_count", uintArg(s.EndWarmupPlayerCount),
		"+sv_minupdaterate", uintArg(s.MinUpdateRate),
		"+sv_password", s.Password,
	)
}

// BuildEnv returns the variables the server reads at startup.
func BuildEnv(s config.Server) map[string]string { //nolint:gocritic // settings are a value
	return map[string]string{
		GameAliasEnv: s.GameAlias,
	}
}

// NewLaunchSpec assembles a LaunchSpec for an install from server settings.
func NewLaunchSpec(installDir string, s config.Server) LaunchSpec { //nolint:gocritic // settings are a value
	return LaunchSpec{
		InstallDir: installDir,
		Args:       BuildArgs(s),
		Env:        BuildEnv(s),
	}
}

// ConnectURL returns the steam:// link that joins a server.
func ConnectURL(host string, port int, password string) string {
	return fmt.Sprintf("steam://connect/%s:%d/%s", host, port, password)
}

// SecondsToMinutes formats seconds as fractional minutes with two decimals,
// which is the unit mp_roundtime expects.
func SecondsToMinutes(seconds uint32) string {
	return strconv.FormatFloat(float64(seconds)/60, 'f', 2, 64)
}

func boolArg(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func uintArg(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
