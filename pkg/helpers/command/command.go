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

// Package command starts external processes behind an interface so callers
// can be tested without spawning anything.
package command

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"strings"
)

type StartOptions struct {
	// Env is merged over the current process environment. Keys in Env
	// replace inherited variables of the same name.
	Env map[string]string

	// Detach starts the process in its own console (Windows) or process
	// group (Unix) so it isn't torn down with the caller's terminal.
	Detach bool
}

type Executor interface {
	// StartWithOptions starts a command without waiting for it to complete
	// and returns the running process. The process outlives ctx only if ctx
	// is never cancelled, so fire-and-forget callers should pass
	// context.Background().
	StartWithOptions(ctx context.Context, opts StartOptions, name string, args ...string) (*os.Process, error)
}

type RealExecutor struct{}

// Compile-time interface implementation check.
var _ Executor = (*RealExecutor)(nil)

//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) StartWithOptions(
	ctx context.Context,
	opts StartOptions,
	name string,
	args ...string,
) (*os.Process, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(opts.Env) > 0 {
		cmd.Env = MergeEnv(os.Environ(), opts.Env)
	}
	applyPlatformOptions(cmd, opts)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Process, nil
}

// MergeEnv returns base with every variable in extra set, replacing any
// existing entry of the same name. Extra variables are appended in sorted
// key order. Names compare case-insensitively on Windows.
func MergeEnv(base []string, extra map[string]string) []string {
	sameKey := func(a, b string) bool { return a == b }
	if runtime.GOOS == "windows" {
		sameKey = strings.EqualFold
	}

	merged := make([]string, 0, len(base)+len(extra))
	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		overridden := false
		for ek := range extra {
			if sameKey(k, ek) {
				overridden = true
				break
			}
		}
		if !overridden {
			merged = append(merged, kv)
		}
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+extra[k])
	}

	return merged
}
