// Package server runs the HTTP server of the city guide.
//
// It owns the server lifecycle: startup, waiting for the process context to
// be cancelled (usually by SIGINT/SIGTERM) and a bounded graceful shutdown
// that lets in-flight requests finish.
package server
