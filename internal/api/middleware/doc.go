// Package middleware provides the gin middleware used by the statcalc HTTP API:
// CORS, per-client rate limiting and request IDs.
package middleware
