// Package special provides closed-form approximations of special functions.
package special

import gomath "math"

// Coefficients of the rational approximation
//
//	erf(x) ≈ 1 - (a1·t + a2·t² + a3·t³)·exp(-x²),  t = 1/(1 + p·|x|)
//
// The values must not be changed: results are expected to match other
// implementations of the same formula bit for bit.
const (
	p  = 0.47047
	a1 = 0.3480242
	a2 = -0.0958798
	a3 = 0.7478556
)

// Erf approximates the error function with an absolute error below 2.5e-5.
// It is odd in x; the sign is taken from the sign bit, so -0 uses the
// negative branch. Erf(±Inf) is ±1.
func Erf(x float64) float64 {
	t := 1 / (1 + p*gomath.Abs(x))
	y := 1 - (a1*t+a2*t*t+a3*t*t*t)*gomath.Exp(-x*x)
	if gomath.Signbit(x) {
		return -y
	}
	return y
}

// Erfc approximates the complementary error function 1 - Erf(x).
func Erfc(x float64) float64 {
	return 1 - Erf(x)
}
