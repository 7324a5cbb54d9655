// Package server assembles the statcalc HTTP server: logger, metrics,
// service registry, middleware chain and routes.
package server
