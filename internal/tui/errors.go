// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned when the operator cancels a prompt.
var ErrUserQuit = errors.New("cancelled by user")
