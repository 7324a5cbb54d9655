// Package main is the entry point for the statcalc HTTP server.
//
// The server exposes numerical integration and normal distribution tools
// through the service registry.
//
// Configuration:
//   - Environment variables (see internal/config)
//   - -port flag overrides PORT
//
// Usage:
//
//	QUAD_MIDPOINT_WIDTH=0.001 ./server -port 8000
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
