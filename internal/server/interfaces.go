package server

// Server is the lifecycle of the process's transport.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests.
	Shutdown()
}
