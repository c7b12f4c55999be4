// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the headless sync client runtime.
type Client interface {
	// Run authenticates, performs the initial sync, starts the background
	// workers, and blocks until shutdown.
	Run() error
}
