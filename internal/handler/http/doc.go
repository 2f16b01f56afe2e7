// Package http implements the admin HTTP API of whitelistd.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, bearer authentication, and response compression
// are handled in this package before requests are delegated to the service
// layer.
package http
