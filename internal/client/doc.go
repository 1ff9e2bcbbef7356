// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync agent runtime.
//
// It wires the local replica, the server adapter, client services, and the
// hybrid data source into a single process lifecycle: connect, background
// synchronization, periodic maintenance, graceful shutdown.
package client
