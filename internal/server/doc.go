// Package server wires and runs the application's transport layer.
//
// It owns the lifecycle of the HTTP server and of the websocket change feed:
// startup, OS signal handling, and graceful shutdown of both on the same
// signal context.
package server
