package statistics

import (
	"context"
	"errors"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/statcalc/internal/providers/math/common"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/distribution"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/integration"
	"github.com/GriffinCanCode/statcalc/internal/types"
)

// CDF evaluation methods
const (
	MethodErf        = "erf"
	MethodQuadrature = "quadrature"
)

// NormalOps handles normal distribution tools
type NormalOps struct {
	*common.MathOps
	Integrator *integration.Integrator
	MaxSamples int
}

// GetTools returns normal distribution tool definitions
func (n *NormalOps) GetTools() []types.Tool {
	mu := types.Parameter{Name: "mu", Type: "number", Description: "Mean (default 0)", Required: false}
	sigma := types.Parameter{Name: "sigma", Type: "number", Description: "Standard deviation, non-zero (default 1)", Required: false}
	method := types.Parameter{Name: "method", Type: "string", Description: "erf (default) or quadrature", Required: false}

	return []types.Tool{
		{
			ID:          "math.normal.pdf",
			Name:        "Normal Density",
			Description: "Probability density of a normal distribution at x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Point to evaluate", Required: true},
				mu, sigma,
			},
			Returns: "number",
		},
		{
			ID:          "math.normal.cdf",
			Name:        "Normal CDF",
			Description: "Cumulative probability P(X <= x) of a normal distribution",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Upper limit", Required: true},
				mu, sigma, method,
			},
			Returns: "number",
		},
		{
			ID:          "math.normal.probability",
			Name:        "Normal Range Probability",
			Description: "Probability that a normal variable falls between lower and upper",
			Parameters: []types.Parameter{
				{Name: "lower", Type: "number", Description: "Lower bound, omitted for -Inf", Required: false},
				{Name: "upper", Type: "number", Description: "Upper bound, omitted for +Inf", Required: false},
				mu, sigma, method,
			},
			Returns: "number",
		},
		{
			ID:          "math.normal.fit",
			Name:        "Fit Normal",
			Description: "Estimate mean and standard deviation from samples",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Samples, at least two", Required: true},
				{Name: "weights", Type: "array", Description: "Per-sample weights", Required: false},
			},
			Returns: "object",
		},
	}
}

// PDF evaluates the density
func (n *NormalOps) PDF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	dist, x, err := distributionAt(params)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": dist.Density(x)})
}

// CDF evaluates the cumulative distribution function
func (n *NormalOps) CDF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	dist, x, err := distributionAt(params)
	if err != nil {
		return common.Failure(err.Error())
	}

	method, err := getMethod(params)
	if err != nil {
		return common.Failure(err.Error())
	}

	if method == MethodErf {
		return common.Success(map[string]interface{}{"result": dist.CDF(x), "method": method})
	}

	if err := n.checkSamples(dist, x); err != nil {
		return common.Failure(err.Error())
	}
	result := dist.IntegratedCDFWith(x, integration.Midpoint, n.Integrator.Width(integration.Midpoint))
	return common.Success(map[string]interface{}{"result": result, "method": method})
}

// Probability evaluates the mass between two optional bounds
func (n *NormalOps) Probability(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	dist, err := common.GetNormal(params)
	if err != nil {
		return common.Failure(err.Error())
	}

	lower, err := getBound(params, "lower")
	if err != nil {
		return common.Failure(err.Error())
	}
	upper, err := getBound(params, "upper")
	if err != nil {
		return common.Failure(err.Error())
	}
	r := distribution.Range{Lower: lower, Upper: upper}

	method, err := getMethod(params)
	if err != nil {
		return common.Failure(err.Error())
	}

	var result float64
	switch method {
	case MethodQuadrature:
		for _, b := range []distribution.Bound{lower, upper} {
			if !b.IsBounded() {
				continue
			}
			if err := n.checkSamples(dist, b.Value); err != nil {
				return common.Failure(err.Error())
			}
		}
		result = dist.IntegratedProbabilityWith(r, integration.Midpoint, n.Integrator.Width(integration.Midpoint))
	default:
		result = dist.Probability(r)
	}

	return common.Success(map[string]interface{}{
		"result": result,
		"range":  r.String(),
		"method": method,
	})
}

// Fit estimates a normal distribution from samples
func (n *NormalOps) Fit(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok {
		return common.Failure("numbers parameter required")
	}
	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	var weights []float64
	if _, has := params["weights"]; has {
		weights, ok = common.GetNumbers(params, "weights")
		if !ok {
			return common.Failure("weights must be an array of numbers")
		}
		if err := common.ValidateNumbers(weights, "weights"); err != nil {
			return common.Failure(err.Error())
		}
	}

	dist, err := distribution.Fit(numbers, weights)
	if err != nil {
		if errors.Is(err, distribution.ErrTooFewSamples) {
			return common.Failure("at least two numbers required")
		}
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"mu":           dist.Mu,
		"sigma":        dist.Sigma,
		"distribution": dist.String(),
	})
}

// checkSamples rejects quadrature CDFs whose partition would exceed MaxSamples
func (n *NormalOps) checkSamples(dist distribution.Normal, x float64) error {
	if n.MaxSamples <= 0 {
		return nil
	}
	length := x - dist.TailBound()
	if length <= 0 {
		return nil
	}
	if gomath.Ceil(length/n.Integrator.Width(integration.Midpoint)) > float64(n.MaxSamples) {
		return fmt.Errorf("quadrature CDF exceeds %d sub-intervals; use method %q", n.MaxSamples, MethodErf)
	}
	return nil
}

func distributionAt(params map[string]interface{}) (distribution.Normal, float64, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return distribution.Normal{}, 0, fmt.Errorf("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return distribution.Normal{}, 0, err
	}

	dist, err := common.GetNormal(params)
	if err != nil {
		return distribution.Normal{}, 0, err
	}
	return dist, x, nil
}

func getMethod(params map[string]interface{}) (string, error) {
	method, ok := common.GetString(params, "method")
	if !ok || method == "" {
		return MethodErf, nil
	}
	switch method {
	case MethodErf, MethodQuadrature:
		return method, nil
	default:
		return "", fmt.Errorf("unknown method %q", method)
	}
}

func getBound(params map[string]interface{}, key string) (distribution.Bound, error) {
	if v, has := params[key]; !has || v == nil {
		return distribution.Open(), nil
	}
	value, ok := common.GetNumber(params, key)
	if !ok {
		return distribution.Bound{}, fmt.Errorf("%s must be a number", key)
	}
	if err := common.ValidateNumber(value, key); err != nil {
		return distribution.Bound{}, err
	}
	return distribution.Included(value), nil
}
