package common

import (
	"errors"
	"fmt"
	gomath "math"
	"sort"

	"github.com/GriffinCanCode/statcalc/internal/providers/math/distribution"
	"github.com/GriffinCanCode/statcalc/internal/types"
)

// MathOps provides common math helpers
type MathOps struct{}

// Success creates a successful result. A NaN or infinite number in data
// turns it into a failure, since JSON cannot carry one.
func Success(data map[string]interface{}) (*types.Result, error) {
	if key, v, ok := nonFinite(data); ok {
		return Failure(fmt.Sprintf("%s is not finite: %v", key, v))
	}
	return &types.Result{Success: true, Data: data}, nil
}

// nonFinite returns the first key, in sorted order, holding a NaN or ±Inf.
func nonFinite(data map[string]interface{}) (string, float64, bool) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if v, ok := data[k].(float64); ok && (gomath.IsNaN(v) || gomath.IsInf(v, 0)) {
			return k, v, true
		}
	}
	return "", 0, false
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// IsFailure reports whether a result carries an error message
func IsFailure(result *types.Result) bool {
	return result != nil && !result.Success
}

// ErrZeroScale is returned when a distribution is requested with sigma = 0.
var ErrZeroScale = errors.New("sigma must be non-zero")

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetNumberOr extracts a number, falling back when the key is absent.
// The second return is false only when the key is present but not a number.
func GetNumberOr(params map[string]interface{}, key string, fallback float64) (float64, bool) {
	if _, ok := params[key]; !ok {
		return fallback, true
	}
	return GetNumber(params, key)
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toFloat(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

// GetNormal reads mu and sigma, defaulting to the standard normal.
func GetNormal(params map[string]interface{}) (distribution.Normal, error) {
	mu, ok := GetNumberOr(params, "mu", 0)
	if !ok {
		return distribution.Normal{}, fmt.Errorf("mu must be a number")
	}
	sigma, ok := GetNumberOr(params, "sigma", 1)
	if !ok {
		return distribution.Normal{}, fmt.Errorf("sigma must be a number")
	}
	if err := ValidateNumber(mu, "mu"); err != nil {
		return distribution.Normal{}, err
	}
	if err := ValidateNumber(sigma, "sigma"); err != nil {
		return distribution.Normal{}, err
	}
	if sigma == 0 {
		return distribution.Normal{}, ErrZeroScale
	}
	return distribution.New(mu, sigma), nil
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	default:
		return 0, false
	}
}
