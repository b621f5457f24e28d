// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Client and repository ports are implemented by outbound adapters and called
// by the application layer. TraceProvider is consumed by the error dispatcher.
package ports
