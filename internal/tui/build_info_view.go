// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-fraud-guard/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	lines := append([]string{"Application: FraudGuard"}, info.Lines()...)
	if !info.Released() {
		lines = append(lines, "", "Development build")
	}
	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
