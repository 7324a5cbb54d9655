// Package service provides the registry that routes tool calls to providers.
//
// A tool ID has the form "<service>.<tool>", for example "math.normal.cdf".
// Execute routes on the part before the first dot and hands the full ID to
// the provider.
//
// Discovery Algorithm:
//   - Service ID or name mentioned in the query
//   - Description words longer than three letters
//   - Capability and tool name matching
//   - Category bonus
//   - Ties broken by service ID
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(mathProvider)
//	services := registry.Discover("normal distribution probability", 5)
//	result, err := registry.Execute(ctx, "math.normal.cdf", params, appCtx)
package service
