package operations

import (
	"context"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/statcalc/internal/providers/math/common"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/integration"
	"github.com/GriffinCanCode/statcalc/internal/types"
)

// Integrand names accepted by math.integrate
const (
	ExpressionNormalPDF  = "normal.pdf"
	ExpressionPolynomial = "polynomial"
)

// SampleRecorder receives the partition size of every evaluated integral.
type SampleRecorder interface {
	RecordQuadrature(rule string, samples int)
}

// QuadratureOps handles fixed-step numerical integration
type QuadratureOps struct {
	*common.MathOps
	Integrator *integration.Integrator
	// MaxSamples caps the number of sub-intervals per request. Zero means no cap.
	MaxSamples int
	Recorder   SampleRecorder
}

// GetTools returns quadrature tool definitions
func (q *QuadratureOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.integrate",
			Name:        "Integrate",
			Description: "Approximate a definite integral with the midpoint or trapezoid rule",
			Parameters: []types.Parameter{
				{Name: "expression", Type: "string", Description: "Integrand: normal.pdf (default) or polynomial", Required: false},
				{Name: "mu", Type: "number", Description: "Normal mean for normal.pdf (default 0)", Required: false},
				{Name: "sigma", Type: "number", Description: "Normal scale for normal.pdf (default 1)", Required: false},
				{Name: "coefficients", Type: "array", Description: "Polynomial coefficients, constant term first", Required: false},
				{Name: "start", Type: "number", Description: "Interval start", Required: true},
				{Name: "end", Type: "number", Description: "Interval end", Required: true},
				{Name: "rule", Type: "string", Description: "midpoint (default) or trapezoid", Required: false},
				{Name: "width", Type: "number", Description: "Target sub-interval width", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "math.partition",
			Name:        "Partition",
			Description: "Number of sub-intervals and actual step for an interval and target width",
			Parameters: []types.Parameter{
				{Name: "start", Type: "number", Description: "Interval start", Required: true},
				{Name: "end", Type: "number", Description: "Interval end", Required: true},
				{Name: "width", Type: "number", Description: "Target sub-interval width", Required: false},
			},
			Returns: "object",
		},
	}
}

// Integrate evaluates an integrand over [start, end]
func (q *QuadratureOps) Integrate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	rule := integration.Midpoint
	if name, ok := common.GetString(params, "rule"); ok && name != "" {
		parsed, err := integration.ParseRule(name)
		if err != nil {
			return common.Failure(err.Error())
		}
		rule = parsed
	}

	f, err := integrand(params)
	if err != nil {
		return common.Failure(err.Error())
	}

	p, err := q.partition(params, rule)
	if err != nil {
		return common.Failure(err.Error())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if q.Recorder != nil {
		q.Recorder.RecordQuadrature(rule.String(), p.n)
	}

	return common.Success(map[string]interface{}{
		"result": integration.Integrate(rule, f, p.interval, p.target),
		"rule":   rule.String(),
		"n":      p.n,
		"width":  p.step,
	})
}

// Partition reports how an interval would be split
func (q *QuadratureOps) Partition(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, err := q.partition(params, integration.Midpoint)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"n":      p.n,
		"width":  p.step,
		"target": p.target,
	})
}

type plan struct {
	interval integration.Interval
	target   float64
	step     float64
	n        int
}

func (q *QuadratureOps) partition(params map[string]interface{}, rule integration.Rule) (plan, error) {
	start, ok := common.GetNumber(params, "start")
	if !ok {
		return plan{}, fmt.Errorf("start parameter required")
	}
	end, ok := common.GetNumber(params, "end")
	if !ok {
		return plan{}, fmt.Errorf("end parameter required")
	}
	width, ok := common.GetNumberOr(params, "width", q.Integrator.Width(rule))
	if !ok {
		return plan{}, fmt.Errorf("width must be a number")
	}

	iv := integration.Interval{Start: start, End: end}
	if err := integration.Validate(iv, width); err != nil {
		return plan{}, err
	}

	// checked in float space so that int conversion cannot overflow
	if q.MaxSamples > 0 && gomath.Ceil(iv.Length()/width) > float64(q.MaxSamples) {
		return plan{}, fmt.Errorf("partition exceeds %d sub-intervals; use a wider step", q.MaxSamples)
	}

	n, step := integration.Partition(iv, width)
	return plan{interval: iv, target: width, step: step, n: n}, nil
}

func integrand(params map[string]interface{}) (func(float64) float64, error) {
	expression, ok := common.GetString(params, "expression")
	if !ok || expression == "" {
		expression = ExpressionNormalPDF
		if _, has := params["coefficients"]; has {
			expression = ExpressionPolynomial
		}
	}

	switch expression {
	case ExpressionNormalPDF:
		n, err := common.GetNormal(params)
		if err != nil {
			return nil, err
		}
		return n.Density, nil
	case ExpressionPolynomial:
		coeffs, ok := common.GetNumbers(params, "coefficients")
		if !ok || len(coeffs) == 0 {
			return nil, fmt.Errorf("coefficients must be a non-empty array of numbers")
		}
		if err := common.ValidateNumbers(coeffs, "coefficients"); err != nil {
			return nil, err
		}
		return polynomial(coeffs), nil
	default:
		return nil, fmt.Errorf("unknown expression %q", expression)
	}
}

// polynomial evaluates c[0] + c[1]x + c[2]x² + ... with Horner's scheme
func polynomial(c []float64) func(float64) float64 {
	return func(x float64) float64 {
		y := 0.0
		for i := len(c) - 1; i >= 0; i-- {
			y = y*x + c[i]
		}
		return y
	}
}
