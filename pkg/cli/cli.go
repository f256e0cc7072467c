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

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ZaparooProject/prestarter/pkg/config"
	"github.com/ZaparooProject/prestarter/pkg/helpers"
	"github.com/rs/zerolog"
)

var errBadAppID = errors.New("app id out of range")

type Flags struct {
	Version *bool
	AppID   *uint
	Apps    *bool
	CSV     *bool
	Find    *string
	Maps    *bool
	Run     *bool
	Map     *string
	Debug   *bool
	Save    *bool
}

// SetupFlags defines all CLI flags.
func SetupFlags() *Flags {
	return &Flags{
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		AppID: flag.Uint(
			"appid",
			0,
			"target Steam app id for this run",
		),
		Apps: flag.Bool(
			"apps",
			false,
			"list every installed Steam app",
		),
		CSV: flag.Bool(
			"csv",
			false,
			"print app lists as CSV",
		),
		Find: flag.String(
			"find",
			"",
			"search installed apps by name",
		),
		Maps: flag.Bool(
			"maps",
			false,
			"list maps available to the server",
		),
		Run: flag.Bool(
			"run",
			false,
			"start the dedicated server with the saved settings",
		),
		Map: flag.String(
			"map",
			"",
			"map to start the server on, overrides the saved setting",
		),
		Debug: flag.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		Save: flag.Bool(
			"save",
			false,
			"write -appid, -map and -debug to the config file",
		),
	}
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("Prestarter v%s\n", config.AppVersion)
		os.Exit(0)
	}
}

// TargetAppID returns the app id to resolve, preferring the -appid flag.
func (f *Flags) TargetAppID(cfg *config.Instance) (uint32, error) {
	if f.AppID == nil || *f.AppID == 0 {
		return cfg.AppID(), nil
	}
	if *f.AppID > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", errBadAppID, *f.AppID)
	}
	return uint32(*f.AppID), nil
}

// Setup initializes the user config and logging. Returns a user config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer) *config.Instance {
	err := helpers.EnsureDirectories(helpers.ConfigDir(), helpers.StateDir())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating directories: %v\n", err)
		os.Exit(1)
	}

	err = helpers.InitLogging(helpers.StateDir(), writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg
}
