// Package integration provides numerical quadrature over a finite interval.
//
// An interval is split into n equal sub-intervals whose width never exceeds
// the requested step, so the partition always ends exactly on the bounds.
// Two rules share that partition:
//   - Midpoint: samples the centre of each sub-interval
//   - Trapezoid: samples every partition boundary, interior points weighted twice
//
// All functions are pure. Degenerate input (zero-length interval, non-finite
// or non-positive width) is not rejected by Integrate; NaN and Inf propagate
// through the arithmetic. Callers that want a hard failure use Validate first.
//
// Example Usage:
//
//	area := integration.MidpointWidth(math.Sin, integration.Interval{Start: 0, End: math.Pi}, 0.001)
//	n, width := integration.Partition(integration.Interval{Start: 0, End: 1}, 0.3) // 4, 0.25
package integration
