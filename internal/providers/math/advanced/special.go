package advanced

import (
	"context"

	"github.com/GriffinCanCode/statcalc/internal/providers/math/common"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/special"
	"github.com/GriffinCanCode/statcalc/internal/types"
)

// SpecialOps handles special mathematical functions
type SpecialOps struct {
	*common.MathOps
}

// GetTools returns special function tool definitions
func (sp *SpecialOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.erf",
			Name:        "Error Function",
			Description: "Calculate error function erf(x)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.erfc",
			Name:        "Complementary Error Function",
			Description: "Calculate complementary error function erfc(x)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
	}
}

// Erf calculates error function
func (sp *SpecialOps) Erf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": special.Erf(x)})
}

// Erfc calculates complementary error function
func (sp *SpecialOps) Erfc(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": special.Erfc(x)})
}
