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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ZaparooProject/prestarter/pkg/helpers"
	"github.com/ZaparooProject/prestarter/pkg/helpers/command"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	// ErrExecutableNotFound means the install has no server binary.
	ErrExecutableNotFound = errors.New("server executable not found")
	// ErrUnsupportedPlatform means the server can't be started on this OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrSpawnFailed means the OS refused to start the server process.
	ErrSpawnFailed = errors.New("failed to start server process")
)

// LaunchSpec is everything needed to start a server. Args and Env are
// passed through without interpretation.
type LaunchSpec struct {
	Env        map[string]string
	InstallDir string
	Args       []string
}

// Launcher starts dedicated server processes.
type Launcher struct {
	fs   afero.Fs
	cmd  command.Executor
	goos string
}

// NewLauncher creates a Launcher for the running OS.
func NewLauncher(fs afero.Fs, cmd command.Executor) *Launcher {
	return NewLauncherForOS(fs, cmd, runtime.GOOS)
}

// NewLauncherForOS creates a Launcher that behaves as if running on goos.
func NewLauncherForOS(fs afero.Fs, cmd command.Executor, goos string) *Launcher {
	return &Launcher{
		fs:   fs,
		cmd:  cmd,
		goos: goos,
	}
}

// SupportedPlatform reports whether the server binary can be started on goos.
func SupportedPlatform(goos string) bool {
	return goos == SupportedOS
}

// ExecutablePath returns where the server binary is expected for an install.
func ExecutablePath(installDir string) string {
	return filepath.Join(installDir, BinaryDir, BinaryName)
}

// Launch starts the server and returns its process without waiting for it.
//
// The executable is checked before the platform, so a missing binary is
// reported as ErrExecutableNotFound on every OS.
func (l *Launcher) Launch(spec LaunchSpec) (*os.Process, error) {
	exe := ExecutablePath(spec.InstallDir)

	exeFound := spec.InstallDir != "" && helpers.PathExists(l.fs, exe)
	platformOK := SupportedPlatform(l.goos)

	if !exeFound {
		return nil, fmt.Errorf("%w: %s", ErrExecutableNotFound, exe)
	}
	if !platformOK {
		return nil, fmt.Errorf("%w: %s (requires %s)", ErrUnsupportedPlatform, l.goos, SupportedOS)
	}

	exe, err := helpers.CanonicalPath(exe)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpawnFailed, err)
	}

	// args carry the join password, so only their count is logged
	log.Info().
		Str("exe", exe).
		Int("args", len(spec.Args)).
		Msg("starting dedicated server")

	// Not tied to any caller context: the server outlives this call.
	proc, err := l.cmd.StartWithOptions(
		context.Background(),
		command.StartOptions{Env: spec.Env, Detach: true},
		exe,
		spec.Args...,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpawnFailed, err)
	}

	if proc != nil {
		log.Info().Int("pid", proc.Pid).Msg("dedicated server started")
	}
	return proc, nil
}
