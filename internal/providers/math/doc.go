// Package math exposes the statcalc numerical tools as a service provider.
//
// This package is organized into specialized modules:
//   - integration: fixed-step midpoint and trapezoid quadrature
//   - special: the closed-form erf approximation
//   - distribution: the normal distribution, ranges and fitting
//   - operations: math.integrate and math.partition tools
//   - advanced: math.erf and math.erfc tools
//   - statistics: math.normal.* and math.describe tools
//
// Every tool takes a params map and returns a *types.Result. Invalid input
// yields a failed Result rather than a Go error.
//
// Example Usage:
//
//	provider := math.NewProvider(cfg.Quadrature, logger, metrics)
//	result, err := provider.Execute(ctx, "math.normal.cdf", map[string]interface{}{"x": 1.0}, nil)
package math
