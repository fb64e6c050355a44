package server

// Server runs the gateway's HTTP listener together with its background
// workers.
type Server interface {
	// RunServer starts the workers and the listener, then blocks until
	// SIGTERM, SIGINT or SIGQUIT arrives or the listener fails.
	RunServer()

	// Shutdown drains in-flight requests, waiting at most 15 seconds.
	Shutdown()
}
