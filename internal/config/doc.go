// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (loaded into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied to fields no source set. The main entry points are
// [GetStructuredConfig] for the HTTP server and [GetClientConfig] for the
// terminal client.
package config
