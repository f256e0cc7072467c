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
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ZaparooProject/prestarter/pkg/config"
	"github.com/ZaparooProject/prestarter/pkg/cs2"
	"github.com/ZaparooProject/prestarter/pkg/readiness"
	"github.com/ZaparooProject/prestarter/pkg/steam"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrNotReady is returned when an action needs the game but it couldn't
// be resolved. The diagnostic has already been printed.
var ErrNotReady = errors.New("game not ready")

var errMapsNotFound = errors.New("maps directory not found")

const findLimit = 10

// ServerLauncher starts a dedicated server.
type ServerLauncher interface {
	Launch(spec cs2.LaunchSpec) (*os.Process, error)
}

// Env is everything the CLI actions read from or act on.
type Env struct {
	Out      io.Writer
	Fs       afero.Fs
	Scanner  readiness.Scanner
	Launcher ServerLauncher
	Cfg      *config.Instance
}

// Post applies the setting flags and then performs the selected action.
// Without an action the readiness of the target app is printed.
func (f *Flags) Post(env Env) error {
	if err := f.applySettings(env.Cfg); err != nil {
		return err
	}

	switch {
	case *f.Apps:
		index, err := env.Scanner.Scan()
		if err != nil {
			return scanFailed(env.Out, err)
		}
		return writeApps(env.Out, index.Sorted(), *f.CSV)
	case *f.Find != "":
		index, err := env.Scanner.Scan()
		if err != nil {
			return scanFailed(env.Out, err)
		}
		return writeMatches(env.Out, steam.FindByName(index, *f.Find, findLimit))
	}

	res := readiness.NewResolver(env.Scanner, env.Fs).Resolve(env.Cfg.AppID())
	ready, ok := res.(readiness.Ready)
	if !ok {
		if err := writeStatus(env.Out, res); err != nil {
			return err
		}
		return ErrNotReady
	}

	switch {
	case *f.Maps:
		return writeMaps(env.Out, ready)
	case *f.Run:
		return launchServer(env.Out, env.Launcher, ready, env.Cfg.Server())
	default:
		return writeStatus(env.Out, res)
	}
}

// applySettings puts -appid, -map and -debug into cfg, and writes the
// config file when -save is set.
func (f *Flags) applySettings(cfg *config.Instance) error {
	if *f.AppID != 0 {
		id, err := f.TargetAppID(cfg)
		if err != nil {
			return err
		}
		cfg.SetAppID(id)
	}

	if *f.Map != "" {
		server := cfg.Server()
		server.Map = *f.Map
		if err := cfg.SetServer(server); err != nil {
			return fmt.Errorf("invalid server settings: %w", err)
		}
	}

	if *f.Debug {
		cfg.SetDebugLogging(true)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *f.Save {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
		log.Info().Str("path", cfg.Path()).Msg("saved config")
	}
	return nil
}

func scanFailed(w io.Writer, err error) error {
	if writeErr := writeStatus(w, readiness.ScanFailure(err)); writeErr != nil {
		return writeErr
	}
	return ErrNotReady
}

func writeStatus(w io.Writer, res readiness.Result) error {
	var err error
	switch r := res.(type) {
	case readiness.Ready:
		_, err = fmt.Fprintf(w, "Ready: %s\n", r.InstallDir())
		if err == nil {
			if r.MapsFound {
				_, err = fmt.Fprintf(w, "Maps: %d\n", len(r.Maps))
			} else {
				_, err = fmt.Fprintln(w, "Maps: directory not found")
			}
		}
	case readiness.NoGame:
		_, err = fmt.Fprintf(w, "%s\n%s\n", r.Title(), r.Message())
		if err == nil && len(r.Apps()) > 0 {
			_, err = fmt.Fprintln(w, "\nInstalled apps:")
			if err == nil {
				err = writeApps(w, r.Apps(), false)
			}
		}
	default:
		_, err = fmt.Fprintf(w, "%s\n%s\n", res.Title(), res.Message())
	}
	if err != nil {
		return fmt.Errorf("error writing status: %w", err)
	}
	return nil
}

func writeApps(w io.Writer, apps []steam.App, asCSV bool) error {
	if asCSV {
		if err := gocsv.Marshal(apps, w); err != nil {
			return fmt.Errorf("error writing csv: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, app := range apps {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", app.ID, app.DisplayName(), app.InstallDir)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("error writing apps: %w", err)
	}
	return nil
}

func writeMatches(w io.Writer, matches []steam.Match) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "No matching apps found")
		if err != nil {
			return fmt.Errorf("error writing matches: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, m := range matches {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%.2f\n", m.App.ID, m.App.DisplayName(), m.Similarity)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("error writing matches: %w", err)
	}
	return nil
}

func writeMaps(w io.Writer, ready readiness.Ready) error {
	if !ready.MapsFound {
		return fmt.Errorf("%w in %s", errMapsNotFound, ready.InstallDir())
	}
	for _, name := range cs2.SortedMaps(ready.Maps) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("error writing maps: %w", err)
		}
	}
	return nil
}

//nolint:gocritic // settings are a value
func launchServer(w io.Writer, launcher ServerLauncher, ready readiness.Ready, server config.Server) error {
	if err := config.Validate(&server); err != nil {
		return fmt.Errorf("invalid server settings: %w", err)
	}

	proc, err := launcher.Launch(cs2.NewLaunchSpec(ready.InstallDir(), server))
	if err != nil {
		log.Error().Err(err).Msg("error launching server")
		return fmt.Errorf("error launching server: %w", err)
	}

	if proc != nil {
		_, _ = fmt.Fprintf(w, "Server started (pid %d)\n", proc.Pid)
	}
	_, err = fmt.Fprintf(w, "Connect: %s\n", cs2.ConnectURL(cs2.DefaultHost, cs2.DefaultPort, server.Password))
	if err != nil {
		return fmt.Errorf("error writing connect url: %w", err)
	}
	return nil
}
