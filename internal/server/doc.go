// Package server wires and runs the gateway's HTTP server.
//
// It provides orchestration for the server lifecycle, including startup of
// the background workers, signal handling, and graceful shutdown.
package server
