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

package mocks

import (
	"context"
	"os"

	"github.com/ZaparooProject/prestarter/pkg/helpers/command"
	"github.com/stretchr/testify/mock"
)

// MockCommandExecutor is a testify mock for command.Executor.
// It allows testing process launches without starting anything.
type MockCommandExecutor struct {
	mock.Mock
}

var _ command.Executor = (*MockCommandExecutor)(nil)

// StartWithOptions mocks starting a process.
//
// Example:
//
//	mockCmd := &MockCommandExecutor{}
//	mockCmd.On("StartWithOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
//		Return((*os.Process)(nil), nil)
func (m *MockCommandExecutor) StartWithOptions(
	ctx context.Context,
	opts command.StartOptions,
	name string,
	args ...string,
) (*os.Process, error) {
	called := m.Called(ctx, opts, name, args)
	var proc *os.Process
	if p, ok := called.Get(0).(*os.Process); ok {
		proc = p
	}
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return proc, called.Error(1)
}
