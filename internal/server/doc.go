// Package server wires and runs whitelistd's HTTP server and background
// workers, including startup, signal handling, and graceful shutdown.
package server
