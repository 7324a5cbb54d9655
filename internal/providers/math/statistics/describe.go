package statistics

import (
	"context"
	gomath "math"
	"sort"

	"github.com/GriffinCanCode/statcalc/internal/providers/math/common"
	"github.com/GriffinCanCode/statcalc/internal/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DescribeOps summarises a sample before it is fitted
type DescribeOps struct {
	*common.MathOps
}

// GetTools returns descriptive statistics tool definitions
func (d *DescribeOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.describe",
			Name:        "Describe",
			Description: "Count, mean, median, sample standard deviation, min and max of a sample",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "object",
		},
	}
}

// Describe calculates summary statistics using gonum
func (d *DescribeOps) Describe(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	data := map[string]interface{}{
		"count":  len(numbers),
		"mean":   stat.Mean(numbers, nil),
		"median": stat.Quantile(0.5, stat.Empirical, sorted, nil),
		"min":    floats.Min(numbers),
		"max":    floats.Max(numbers),
	}

	// sample variance is undefined for a single value
	if len(numbers) > 1 {
		variance := stat.Variance(numbers, nil)
		data["variance"] = variance
		data["stdev"] = gomath.Sqrt(variance)
	}

	return common.Success(data)
}
