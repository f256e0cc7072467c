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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestInstance_ConcurrentAccess exercises readers and writers together.
// Run with -tags=deadlock to have go-deadlock flag lock ordering problems.
func TestInstance_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cfg := &Instance{vals: BaseDefaults}

	done := make(chan struct{})
	go func() {
		defer close(done)

		var wg sync.WaitGroup
		for i := range 10 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = cfg.Server()
				_ = cfg.AppID()
				_ = cfg.DebugLogging()
			}()
			go func() {
				defer wg.Done()
				srv := DefaultServer
				srv.MaxRounds = uint32(i)
				_ = cfg.SetServer(srv)
				cfg.SetAppID(uint32(700 + i))
			}()
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent config access deadlocked")
	}

	assert.GreaterOrEqual(t, cfg.AppID(), uint32(700))
}
