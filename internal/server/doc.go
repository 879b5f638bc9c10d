// Package server wires and runs the CMS HTTP server.
//
// It owns the listener lifecycle: startup, waiting for the caller's context
// to be cancelled, and graceful shutdown bounded by the configured timeout.
package server
