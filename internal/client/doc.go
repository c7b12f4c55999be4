// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless sync-client runtime.
//
// It wires authentication, the initial sync session, and the periodic
// background synchronization into a single process lifecycle.
package client
