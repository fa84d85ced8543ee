// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrServerStopped wraps the listener error of a server that stopped
	// without a shutdown request (e.g. the address is already in use).
	ErrServerStopped = errors.New("server stopped unexpectedly")
)
