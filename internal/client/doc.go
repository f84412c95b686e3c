// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive terminal application runtime.
//
// It wires the local storage backend, the generation backend and the
// terminal UI into a single process lifecycle: resume or open a session,
// run the analysis screen, and start over after a logout.
package client
