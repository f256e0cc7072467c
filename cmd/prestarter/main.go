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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/prestarter/pkg/cli"
	"github.com/ZaparooProject/prestarter/pkg/config"
	"github.com/ZaparooProject/prestarter/pkg/cs2"
	"github.com/ZaparooProject/prestarter/pkg/helpers/command"
	"github.com/ZaparooProject/prestarter/pkg/helpers/syncutil"
	"github.com/ZaparooProject/prestarter/pkg/steam"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, cli.ErrNotReady) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()
	flags.Pre()

	// stdout is reserved for action output; logs go to the state dir
	cfg := cli.Setup(config.BaseDefaults, []io.Writer{})

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	fs := afero.NewOsFs()
	locator := steam.NewLocator(fs, steam.DefaultOptions(), cfg.SteamInstallDir())

	log.Info().
		Str("version", config.AppVersion).
		Str("config", cfg.Path()).
		Bool("deadlockDetector", syncutil.DeadlockEnabled).
		Msg("prestarter started")

	//nolint:wrapcheck // actions return user-facing errors
	return flags.Post(cli.Env{
		Out:      os.Stdout,
		Fs:       fs,
		Scanner:  steam.NewScanner(fs, locator),
		Launcher: cs2.NewLauncher(fs, &command.RealExecutor{}),
		Cfg:      cfg,
	})
}
