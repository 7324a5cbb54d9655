package distribution

import (
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/statcalc/internal/providers/math/integration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestDensityMatchesGonum(t *testing.T) {
	for _, n := range []Normal{Standard(), New(3, 2), New(-1.5, 0.25)} {
		ref := distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
		for x := -6.0; x <= 6.0; x += 0.25 {
			assert.InDelta(t, ref.Prob(x), n.Density(x), 1e-12, "%v at %v", n, x)
		}
	}
}

func TestDensityUsesAbsoluteScale(t *testing.T) {
	pos, neg := New(1, 2), New(1, -2)
	for _, x := range []float64{-3, 0, 1, 2.5} {
		assert.Equal(t, pos.Density(x), neg.Density(x))
		assert.Equal(t, pos.CDF(x), neg.CDF(x))
	}
	assert.Equal(t, 2.0, neg.Scale())
}

func TestDensityZeroScale(t *testing.T) {
	n := New(0, 0)
	assert.True(t, gomath.IsNaN(n.Density(0)))
	assert.True(t, gomath.IsNaN(n.Density(1)))
}

func TestStandardCDFTable(t *testing.T) {
	n := Standard()
	assert.InDelta(t, 0.409525, n.CDF(-0.228756), 1e-6)
	assert.Equal(t, 0.5, n.CDF(0))
}

func TestCDFMatchesGonum(t *testing.T) {
	for _, n := range []Normal{Standard(), New(3, 2), New(10, -4)} {
		ref := distuv.Normal{Mu: n.Mu, Sigma: n.Scale()}
		for x := -8.0; x <= 16.0; x += 0.1 {
			assert.InDelta(t, ref.CDF(x), n.CDF(x), 2e-5, "%v at %v", n, x)
		}
	}
}

func TestCDFBoundaries(t *testing.T) {
	n := New(3, 2)
	assert.Equal(t, 0.0, n.CDF(gomath.Inf(-1)))
	assert.Equal(t, 1.0, n.CDF(gomath.Inf(1)))
	assert.True(t, gomath.IsNaN(n.CDF(gomath.NaN())))

	assert.Equal(t, 0.0, n.IntegratedCDF(gomath.Inf(-1)))
	assert.Equal(t, 1.0, n.IntegratedCDF(gomath.Inf(1)))
	assert.True(t, gomath.IsNaN(n.IntegratedCDF(gomath.NaN())))
	assert.Equal(t, 0.0, n.IntegratedCDF(n.TailBound()))
	assert.Equal(t, 0.0, n.IntegratedCDF(-100))
}

func TestIntegratedCDFAgreesWithErf(t *testing.T) {
	for _, n := range []Normal{Standard(), New(3, 2), New(3, -2)} {
		for x := n.Mu - 5*n.Scale(); x <= n.Mu+5*n.Scale(); x += 0.2 * n.Scale() {
			assert.InDelta(t, n.CDF(x), n.IntegratedCDF(x), 1e-4, "%v at %v", n, x)
		}
	}
}

func TestIntegratedCDFWithFinerWidth(t *testing.T) {
	n := Standard()
	ref := distuv.UnitNormal
	for _, rule := range integration.Rules {
		for _, x := range []float64{-2.5, -1, 0, 0.7, 3} {
			assert.InDelta(t, ref.CDF(x), n.IntegratedCDFWith(x, rule, 0.001), 1e-7, "%s at %v", rule, x)
		}
	}
	assert.Equal(t, -15.0, n.TailBound())
}

func TestProbabilityScenarios(t *testing.T) {
	n := Standard()

	tests := []struct {
		name string
		r    Range
		want float64
	}{
		{"0..1", Between(0, 1), 0.34134},
		{"0..2", Between(0, 2), 0.47725},
		{"0..3", Between(0, 3), 0.49865},
		{"-1..2", Between(-1, 2), 0.81859},
		{"..0", AtMost(0), 0.5},
		{"..<0", LessThan(0), 0.5},
		{"0..", AtLeast(0), 0.5},
		{">0", GreaterThan(0), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, n.Probability(tt.r), 1e-4)
			assert.InDelta(t, tt.want, n.IntegratedProbability(tt.r), 1e-4)
		})
	}
}

func TestProbabilityUnbounded(t *testing.T) {
	n := New(-2, 7)
	assert.Equal(t, 1.0, n.Probability(All()))
	assert.Equal(t, 1.0, n.IntegratedProbability(All()))
	assert.Equal(t, n.CDF(1), n.Probability(AtMost(1)))
	assert.Equal(t, 1-n.CDF(1), n.Probability(AtLeast(1)))
}

func TestIntegratedProbabilityWithRule(t *testing.T) {
	n := Standard()
	for _, rule := range integration.Rules {
		t.Run(rule.String(), func(t *testing.T) {
			got := n.IntegratedProbabilityWith(Between(-1, 1), rule, 0.001)
			assert.InDelta(t, 0.6826894921370859, got, 1e-6)
		})
	}
}

func TestProbabilityAdditive(t *testing.T) {
	n := New(0.5, 1.3)
	points := []float64{-3.1, -0.4, 0.2, 1.9, 4}

	for i := 0; i+2 < len(points); i++ {
		a, b, c := points[i], points[i+1], points[i+2]
		split := n.Probability(Between(a, b)) + n.Probability(Between(b, c))
		assert.InDelta(t, n.Probability(Between(a, c)), split, 1e-12, "%v<%v<%v", a, b, c)
	}

	below := n.Probability(LessThan(0.2)) + n.Probability(AtLeast(0.2))
	assert.InDelta(t, 1.0, below, 1e-12)
}

func TestProbabilityReversedRange(t *testing.T) {
	n := Standard()
	forward := n.Probability(Between(-1, 2))
	backward := n.Probability(Between(2, -1))
	assert.Equal(t, forward, backward)
	assert.Positive(t, backward)
}

func TestProbabilityIgnoresInclusion(t *testing.T) {
	n := Standard()
	closed := n.Probability(Between(-0.5, 0.5))
	open := n.Probability(Range{Lower: Excluded(-0.5), Upper: Excluded(0.5)})
	assert.Equal(t, closed, open)
}

func TestRepeatedCallsAreIdentical(t *testing.T) {
	n := New(1, 3)
	first := []float64{n.Density(0.3), n.CDF(0.3), n.IntegratedCDF(0.3), n.Probability(Between(-1, 4))}
	for i := 0; i < 3; i++ {
		again := []float64{n.Density(0.3), n.CDF(0.3), n.IntegratedCDF(0.3), n.Probability(Between(-1, 4))}
		assert.Equal(t, first, again)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "N(μ=0, σ=1)", Standard().String())
	assert.Equal(t, "N(μ=-1.5, σ=0.25)", New(-1.5, 0.25).String())
	assert.Equal(t, "[0, 1]", Between(0, 1).String())
	assert.Equal(t, "(-Inf, 2)", LessThan(2).String())
	assert.Equal(t, "(3, +Inf)", GreaterThan(3).String())
	assert.Equal(t, "(-Inf, +Inf)", All().String())
}

func TestFit(t *testing.T) {
	samples := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	n, err := Fit(samples, nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, n.Mu, 1e-12)
	assert.InDelta(t, 2.138089935299395, n.Sigma, 1e-12)

	_, err = Fit([]float64{1}, nil)
	assert.ErrorIs(t, err, ErrTooFewSamples)

	_, err = Fit(samples, []float64{1, 2})
	assert.Error(t, err)
}
