package server

// Server is the lifecycle of the read-only configuration view.
type Server interface {
	// RunServer serves the merged configuration until a shutdown signal
	// arrives.
	RunServer()

	Shutdown()

	// Addr is the configured listen address.
	Addr() string
}
