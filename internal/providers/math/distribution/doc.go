// Package distribution implements the normal distribution on top of the erf
// approximation and the quadrature engine.
//
// The cumulative function has two independent paths:
//   - CDF: closed form 0.5·(1 + erf((x-μ)/(|σ|·√2)))
//   - IntegratedCDF: midpoint quadrature of the density from μ-15|σ| to x
//
// Both are expected to agree to within 1e-4; tests hold them to that.
//
// Interval queries take a Range whose ends may be unbounded:
//
//	n := distribution.Standard()
//	n.Probability(distribution.Between(0, 1)) // ≈ 0.34134
//	n.Probability(distribution.AtMost(0))     // 0.5
package distribution
