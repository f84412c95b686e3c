// Package server runs the HTTP API: startup, signal handling and graceful
// shutdown.
package server
