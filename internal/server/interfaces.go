package server

// Server is the lifecycle of the blob download server.
type Server interface {
	// RunServer serves requests until the process is signalled to stop.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
