package distribution

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrTooFewSamples is returned by Fit when fewer than two samples are given.
var ErrTooFewSamples = errors.New("at least two samples required")

// Fit estimates a normal distribution from samples using the weighted mean and
// the unbiased standard deviation. weights may be nil.
func Fit(samples, weights []float64) (Normal, error) {
	if len(samples) < 2 {
		return Normal{}, fmt.Errorf("fit normal: %w (got %d)", ErrTooFewSamples, len(samples))
	}
	if weights != nil && len(weights) != len(samples) {
		return Normal{}, fmt.Errorf("fit normal: %d weights for %d samples", len(weights), len(samples))
	}

	mean, std := stat.MeanStdDev(samples, weights)
	return Normal{Mu: mean, Sigma: std}, nil
}
