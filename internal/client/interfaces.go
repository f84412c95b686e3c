// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-fraud-guard/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
	// Close releases the storage backend.
	Close() error
}

// UI is the interactive surface the client drives. It is satisfied by
// *tui.TUI.
type UI interface {
	// AuthFlow blocks until the user signs in, registers or quits.
	AuthFlow(ctx context.Context) (models.Session, error)
	// MainLoop blocks until the user quits or logs out.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
