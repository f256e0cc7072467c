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

// Package readiness decides whether the target app can be launched and
// produces the diagnostic shown when it can't.
package readiness

import (
	"errors"
	"fmt"

	"github.com/ZaparooProject/prestarter/pkg/cs2"
	"github.com/ZaparooProject/prestarter/pkg/steam"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	TitleNoSteam = "Steam not found"
	TitleNoGame  = "Game not found"
	TitleUnknown = "Unknown error"

	MessageNoSteam = "Unable to find SteamLibrary directory. Are you sure you have Steam installed?"
)

// State is the readiness classification of the target app.
type State int

const (
	StateNoSteam State = iota
	StateNoGame
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateNoGame:
		return "no_game"
	case StateNoSteam:
		return "no_steam"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is one of Ready, NoGame or NoSteam.
type Result interface {
	State() State
	Title() string
	Message() string
	// InstallDir is empty unless the result is Ready.
	InstallDir() string
	// Apps is the sorted index for a fallback selection, only set for NoGame.
	Apps() []steam.App

	isResult()
}

// Ready means the target app is installed.
type Ready struct {
	Dir  string
	Maps []string
	// MapsFound is false when the maps directory couldn't be read.
	MapsFound bool
}

func (Ready) State() State         { return StateReady }
func (Ready) Title() string        { return "" }
func (Ready) Message() string      { return "" }
func (r Ready) InstallDir() string { return r.Dir }
func (Ready) Apps() []steam.App    { return nil }
func (Ready) isResult()            {}

// NoGame means Steam was found but the target app isn't installed.
type NoGame struct {
	Installed []steam.App
	AppID     uint32
}

func (NoGame) State() State  { return StateNoGame }
func (NoGame) Title() string { return TitleNoGame }
func (n NoGame) Message() string {
	return fmt.Sprintf("Unable to find app with id %d.\nAre you sure it is installed?", n.AppID)
}
func (NoGame) InstallDir() string  { return "" }
func (n NoGame) Apps() []steam.App { return n.Installed }
func (NoGame) isResult()           {}

// NoSteam means the Steam libraries couldn't be scanned. Err is the scan
// failure; Unknown is set when it wasn't a location problem.
type NoSteam struct {
	Err     error
	Unknown bool
}

func (NoSteam) State() State { return StateNoSteam }

func (n NoSteam) Title() string {
	if n.Unknown {
		return TitleUnknown
	}
	return TitleNoSteam
}

func (n NoSteam) Message() string {
	if n.Unknown {
		return fmt.Sprintf("Unknown error occurred: %v", n.Err)
	}
	return MessageNoSteam
}

func (NoSteam) InstallDir() string { return "" }
func (NoSteam) Apps() []steam.App  { return nil }
func (NoSteam) isResult()          {}

// ScanFailure classifies a failed scan. Location problems give the
// "Steam not found" diagnostic; anything else is reported as unknown.
func ScanFailure(err error) NoSteam {
	if errors.Is(err, steam.ErrPlatformNotFound) || errors.Is(err, steam.ErrInvalidRoot) {
		return NoSteam{Err: err}
	}
	return NoSteam{Err: err, Unknown: true}
}

// Scanner produces a fresh app index from disk.
type Scanner interface {
	Scan() (steam.Index, error)
}

// Resolver derives a Result from a fresh scan on every call.
type Resolver struct {
	scanner Scanner
	fs      afero.Fs
}

func NewResolver(scanner Scanner, fs afero.Fs) *Resolver {
	return &Resolver{
		scanner: scanner,
		fs:      fs,
	}
}

// Resolve scans once and classifies the target app. On Ready the maps of
// the install are listed as well.
func (r *Resolver) Resolve(appID uint32) Result {
	index, err := r.scanner.Scan()
	if err != nil {
		res := ScanFailure(err)
		if res.Unknown {
			log.Error().Err(err).Msg("error scanning steam libraries")
		} else {
			log.Warn().Err(err).Msg("steam not found")
		}
		return res
	}

	app, err := index.Lookup(appID)
	if err != nil {
		log.Info().Uint32("appId", appID).Int("installed", len(index)).Msg("target app not installed")
		return NoGame{AppID: appID, Installed: index.Sorted()}
	}

	maps, found := cs2.ListMaps(r.fs, app.InstallDir)
	log.Debug().
		Str("installDir", app.InstallDir).
		Int("maps", len(maps)).
		Bool("mapsFound", found).
		Msg("target app ready")

	return Ready{
		Dir:       app.InstallDir,
		Maps:      maps,
		MapsFound: found,
	}
}
