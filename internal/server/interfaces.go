package server

// Server owns the FraudGuard API listener for the lifetime of the process.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, drains
	// in-flight analysis requests and returns. A clean stop yields nil.
	RunServer() error

	// Shutdown drains the listener without waiting for a signal.
	Shutdown()
}
