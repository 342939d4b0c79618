// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// a transport fails, then shuts every transport down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the servers, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context)
}
