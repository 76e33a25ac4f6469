// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received and the
// server has shut down. Shutdown stops the server from another goroutine.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
