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

const (
	GameAliasCompetitive = "competitive"
	GameAliasWingman     = "wingman"
	GameAliasCasual      = "casual"
	GameAliasCustom      = "custom"
)

// Buy zone rules for mp_buy_anywhere.
const (
	BuyAnywhereOff uint8 = iota
	BuyAnywhereAll
	BuyAnywhereT
	BuyAnywhereCT
)

// Spawn rules for mp_randomspawn.
const (
	RandomSpawnOff uint8 = iota
	RandomSpawnAll
	RandomSpawnT
	RandomSpawnCT
)

// Server holds the dedicated server options passed on the command line.
// Durations are in seconds.
type Server struct {
	Map       string `toml:"map" validate:"required"`
	GameAlias string `toml:"game_alias" validate:"oneof=competitive wingman casual custom"`
	// Password of "0" disables the join password.
	Password             string `toml:"sv_password" validate:"required"`
	RoundTime            uint32 `toml:"mp_roundtime" validate:"lte=3600"`
	BuyTime              uint32 `toml:"mp_buytime" validate:"ltefield=RoundTime"`
	C4Timer              uint32 `toml:"mp_c4timer" validate:"ltefield=RoundTime"`
	FreezeTime           uint32 `toml:"mp_freezetime" validate:"ltefield=RoundTime"`
	MaxRounds            uint32 `toml:"mp_maxrounds" validate:"lte=4096"`
	WarmupTime           uint32 `toml:"mp_warmuptime" validate:"lte=3600"`
	EndWarmupPlayerCount uint32 `toml:"mp_endwarmup_player_count" validate:"lte=3600"`
	MinUpdateRate        uint32 `toml:"sv_minupdaterate" validate:"lte=4096"`
	BuyAnywhere          uint8  `toml:"mp_buy_anywhere" validate:"lte=3"`
	RandomSpawn          uint8  `toml:"mp_randomspawn" validate:"lte=3"`
	Insecure             bool   `toml:"insecure"`
	AutoKick             bool   `toml:"mp_autokick"`
	FriendlyFire         bool   `toml:"mp_friendlyfire"`
}

var DefaultServer = Server{
	Map:                  "de_dust2",
	GameAlias:            GameAliasCompetitive,
	Password:             "0",
	RoundTime:            115,
	BuyTime:              15,
	C4Timer:              40,
	FreezeTime:           20,
	MaxRounds:            32,
	WarmupTime:           15,
	EndWarmupPlayerCount: 2,
	MinUpdateRate:        64,
	BuyAnywhere:          BuyAnywhereOff,
	RandomSpawn:          RandomSpawnOff,
	Insecure:             true,
	AutoKick:             true,
	FriendlyFire:         true,
}
