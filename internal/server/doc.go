// Package server wires and runs the feed server's transports.
//
// The HTTP server carries the change-feed API; the optional gRPC server
// exposes the health service for load balancers. The package orchestrates
// startup, signal handling, and graceful shutdown of every enabled
// transport.
package server
