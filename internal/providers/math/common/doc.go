// Package common holds the helpers shared by the math tool modules.
//
// Tool handlers take a loosely typed params map (decoded JSON) and return a
// *types.Result. Input problems are reported as a failed Result with a nil
// error; a non-nil error is reserved for faults the caller cannot fix.
//
// Numbers are coerced from float64, float32 and the integer kinds so that
// both JSON payloads and Go callers can pass them.
//
// Example Usage:
//
//	x, ok := common.GetNumber(params, "x")
//	if !ok {
//		return common.Failure("x parameter required")
//	}
//	return common.Success(map[string]interface{}{"result": x})
package common
