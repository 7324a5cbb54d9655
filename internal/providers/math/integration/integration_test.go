package integration_test

import (
	gomath "math"
	"testing"

	"github.com/GriffinCanCode/statcalc/internal/providers/math/integration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"
)

// Areas under the standard normal density, taken from scipy.stats.norm.cdf.
var normalAreas = []struct {
	iv   integration.Interval
	area float64
}{
	{integration.Interval{Start: -2.33, End: -2.12}, 0.007099947088468542},
	{integration.Interval{Start: -3.83, End: 1.60}, 0.9451366366709532},
	{integration.Interval{Start: -1.99, End: 0.31}, 0.5984240540718074},
	{integration.Interval{Start: -1.51, End: 2.89}, 0.9325520787788957},
	{integration.Interval{Start: 1.73, End: 2.77}, 0.039012322980829905},
}

func TestIntegrateStandardNormal(t *testing.T) {
	pdf := distuv.UnitNormal.Prob

	for _, rule := range integration.Rules {
		t.Run(rule.String(), func(t *testing.T) {
			for _, tc := range normalAreas {
				got := integration.Integrate(rule, pdf, tc.iv, 0.0005)
				assert.InDelta(t, tc.area, got, 1e-8, "interval %v", tc.iv)
			}
		})
	}
}

func TestTrapezoidCoarseWidth(t *testing.T) {
	pdf := distuv.UnitNormal.Prob
	for _, tc := range normalAreas {
		got := integration.TrapezoidWidth(pdf, tc.iv, 0.05)
		assert.InDelta(t, tc.area, got, 1e-4, "interval %v", tc.iv)
	}
}

func TestDefaultWidthHelpers(t *testing.T) {
	pdf := distuv.UnitNormal.Prob
	iv := integration.Interval{Start: -1.99, End: 0.31}

	assert.Equal(t, integration.MidpointWidth(pdf, iv, integration.DefaultWidth), integration.MidpointIntegral(pdf, iv))
	assert.Equal(t, integration.TrapezoidWidth(pdf, iv, integration.DefaultWidth), integration.TrapezoidIntegral(pdf, iv))
	assert.InDelta(t, 0.5984240540718074, integration.MidpointIntegral(pdf, iv), 1e-4)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		iv    integration.Interval
		width float64
		n     int
		step  float64
	}{
		{"exact division", integration.Interval{Start: 0, End: 1}, 0.25, 4, 0.25},
		{"rounds count up", integration.Interval{Start: 0, End: 1}, 0.3, 4, 0.25},
		{"width larger than interval", integration.Interval{Start: 0, End: 1}, 5, 1, 1},
		{"reversed", integration.Interval{Start: 2, End: 0}, 0.5, 4, 0.5},
		{"negative span", integration.Interval{Start: -3, End: -1}, 0.15, 14, 2.0 / 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, step := integration.Partition(tt.iv, tt.width)
			assert.Equal(t, tt.n, n)
			assert.InDelta(t, tt.step, step, 1e-15)
			assert.LessOrEqual(t, step, tt.width)
		})
	}
}

func TestPartitionOutOfRange(t *testing.T) {
	iv := integration.Interval{Start: 0, End: 1}

	for _, width := range []float64{0, -0.5, gomath.NaN(), 1e-300} {
		n, step := integration.Partition(iv, width)
		assert.Zero(t, n, "width=%v", width)
		assert.True(t, gomath.IsNaN(step), "width=%v", width)
	}
}

func TestIntegrateSampleCount(t *testing.T) {
	iv := integration.Interval{Start: 0, End: 1}

	calls := 0
	counting := func(x float64) float64 {
		calls++
		return x
	}

	integration.Integrate(integration.Midpoint, counting, iv, 0.1)
	assert.Equal(t, 10, calls)

	calls = 0
	integration.Integrate(integration.Trapezoid, counting, iv, 0.1)
	assert.Equal(t, 11, calls)
}

func TestIntegrateSamplePlacement(t *testing.T) {
	iv := integration.Interval{Start: 1, End: 2}

	var seen []float64
	record := func(x float64) float64 {
		seen = append(seen, x)
		return 0
	}

	integration.Integrate(integration.Midpoint, record, iv, 0.5)
	assert.Equal(t, []float64{1.25, 1.75}, seen)

	seen = nil
	integration.Integrate(integration.Trapezoid, record, iv, 0.5)
	assert.Equal(t, []float64{1, 1.5, 2}, seen)
}

func TestIntegrateLinearIsExact(t *testing.T) {
	line := func(x float64) float64 { return 3*x + 1 }
	iv := integration.Interval{Start: 0, End: 2}

	for _, rule := range integration.Rules {
		got := integration.Integrate(rule, line, iv, 0.3)
		assert.InDelta(t, 8.0, got, 1e-12, rule.String())
	}
}

func TestTrapezoidMatchesGonum(t *testing.T) {
	f := func(x float64) float64 { return gomath.Exp(x) / (x*x + 1) }
	iv := integration.Interval{Start: 0, End: 1}

	n, _ := integration.Partition(iv, 0.01)
	xs := floats.Span(make([]float64, n+1), iv.Start, iv.End)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	want := integrate.Trapezoidal(xs, ys)
	got := integration.TrapezoidWidth(f, iv, 0.01)
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 1.270724139833620220138, got, 1e-4)
}

func TestIntegrateReversedInterval(t *testing.T) {
	pdf := distuv.UnitNormal.Prob
	forward := integration.Interval{Start: -1, End: 2}
	backward := integration.Interval{Start: 2, End: -1}

	require.True(t, backward.Reversed())
	for _, rule := range integration.Rules {
		f := integration.Integrate(rule, pdf, forward, 0.01)
		b := integration.Integrate(rule, pdf, backward, 0.01)
		assert.Equal(t, f, b, rule.String())
		assert.Positive(t, b)
	}
}

func TestIntegrateDegenerateInputs(t *testing.T) {
	one := func(float64) float64 { return 1 }

	t.Run("zero length", func(t *testing.T) {
		iv := integration.Interval{Start: 1, End: 1}
		for _, rule := range integration.Rules {
			assert.True(t, gomath.IsNaN(integration.Integrate(rule, one, iv, 0.05)), rule.String())
		}
	})

	t.Run("infinite width", func(t *testing.T) {
		iv := integration.Interval{Start: 0, End: 1}
		assert.True(t, gomath.IsNaN(integration.Integrate(integration.Midpoint, one, iv, gomath.Inf(1))))
	})

	t.Run("unusable width", func(t *testing.T) {
		iv := integration.Interval{Start: 0, End: 1}
		calls := 0
		counting := func(float64) float64 {
			calls++
			return 1
		}
		for _, width := range []float64{0, -0.1, gomath.NaN(), 1e-300} {
			for _, rule := range integration.Rules {
				got := integration.Integrate(rule, counting, iv, width)
				assert.True(t, gomath.IsNaN(got), "%s width=%v", rule, width)
			}
		}
		assert.Zero(t, calls)
	})

	t.Run("unknown rule", func(t *testing.T) {
		iv := integration.Interval{Start: 0, End: 1}
		assert.True(t, gomath.IsNaN(integration.Integrate(integration.Rule(7), one, iv, 0.05)))
	})

	t.Run("non-finite samples", func(t *testing.T) {
		iv := integration.Interval{Start: -1, End: 1}
		inv := func(x float64) float64 { return 1 / x }
		// the trapezoid rule lands on x = 0
		assert.True(t, gomath.IsInf(integration.Integrate(integration.Trapezoid, inv, iv, 0.5), 0))
	})
}

func TestIntegrateDeterministic(t *testing.T) {
	pdf := distuv.UnitNormal.Prob
	iv := integration.Interval{Start: -3.83, End: 1.60}

	for _, rule := range integration.Rules {
		first := integration.Integrate(rule, pdf, iv, 0.001)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, integration.Integrate(rule, pdf, iv, 0.001))
		}
	}
}

func TestValidate(t *testing.T) {
	ok := integration.Interval{Start: 0, End: 1}

	assert.NoError(t, integration.Validate(ok, 0.05))
	assert.NoError(t, integration.Validate(integration.Interval{Start: 1, End: 0}, 0.05))

	assert.ErrorIs(t, integration.Validate(ok, 0), integration.ErrNonPositiveWidth)
	assert.ErrorIs(t, integration.Validate(ok, -0.1), integration.ErrNonPositiveWidth)
	assert.ErrorIs(t, integration.Validate(ok, gomath.NaN()), integration.ErrNonPositiveWidth)
	assert.ErrorIs(t, integration.Validate(ok, gomath.Inf(1)), integration.ErrNonPositiveWidth)
	assert.ErrorIs(t, integration.Validate(integration.Interval{Start: 2, End: 2}, 0.05), integration.ErrEmptyInterval)
	assert.ErrorIs(t, integration.Validate(integration.Interval{Start: gomath.Inf(-1), End: 0}, 0.05), integration.ErrNonFinite)
}

func TestParseRule(t *testing.T) {
	for name, want := range map[string]integration.Rule{
		"midpoint":  integration.Midpoint,
		"Midpoint":  integration.Midpoint,
		"trapezoid": integration.Trapezoid,
		" TRAP ":    integration.Trapezoid,
	} {
		got, err := integration.ParseRule(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := integration.ParseRule("simpsons")
	assert.ErrorIs(t, err, integration.ErrUnknownRule)
	assert.Equal(t, "rule(7)", integration.Rule(7).String())
}

func TestIntegratorWidths(t *testing.T) {
	in := integration.NewIntegrator(0.001, 0)
	assert.Equal(t, 0.001, in.Width(integration.Midpoint))
	assert.Equal(t, integration.DefaultWidth, in.Width(integration.Trapezoid))

	var zero *integration.Integrator
	assert.Equal(t, integration.DefaultWidth, zero.Width(integration.Midpoint))

	pdf := distuv.UnitNormal.Prob
	iv := integration.Interval{Start: 0, End: 1}
	assert.Equal(t, integration.MidpointWidth(pdf, iv, 0.001), in.Integrate(integration.Midpoint, pdf, iv))
}
