// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfoUnknown stands in for build metadata the linker did not set.
const BuildInfoUnknown = "N/A"

// AppBuildInfo is the version stamp of a FraudGuard binary, set through
// -ldflags at release time and shown on the client's About page and in the
// server's startup banner.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the linker-provided values and replaces blanks with
// [BuildInfoUnknown].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// Released reports whether the binary carries a real version stamp.
func (a AppBuildInfo) Released() bool {
	return a.version != "" && a.version != BuildInfoUnknown
}

// Lines renders the stamp as label/value rows.
func (a AppBuildInfo) Lines() []string {
	return []string{
		"Build version: " + a.BuildVersion(),
		"Build date: " + a.BuildDate(),
		"Build commit: " + a.BuildCommit(),
	}
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return BuildInfoUnknown
	}
	return v
}
