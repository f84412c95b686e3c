// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoListenerConfigured is returned by NewServer when there is nothing to
// serve: the HTTP handlers are missing or no listen address was configured.
var errNoListenerConfigured = errors.New("server: no HTTP listener configured")
