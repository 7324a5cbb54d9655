package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/statcalc/internal/config"
	"github.com/GriffinCanCode/statcalc/internal/infrastructure/logging"
	"github.com/GriffinCanCode/statcalc/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/advanced"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/common"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/integration"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/operations"
	"github.com/GriffinCanCode/statcalc/internal/providers/math/statistics"
	"github.com/GriffinCanCode/statcalc/internal/types"
	"go.uber.org/zap"
)

// ServiceID is the tool-ID prefix routed to this provider
const ServiceID = "math"

// Provider implements numerical integration and normal distribution tools
type Provider struct {
	quadrature *operations.QuadratureOps
	special    *advanced.SpecialOps
	normal     *statistics.NormalOps
	describe   *statistics.DescribeOps

	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewProvider creates the math provider. logger and metrics may be nil.
func NewProvider(cfg config.QuadratureConfig, logger *logging.Logger, metrics *monitoring.Metrics) *Provider {
	if logger == nil {
		logger = logging.NewNop()
	}

	ops := &common.MathOps{}
	integrator := integration.NewIntegrator(cfg.MidpointWidth, cfg.TrapezoidWidth)

	quadrature := &operations.QuadratureOps{
		MathOps:    ops,
		Integrator: integrator,
		MaxSamples: cfg.MaxSamples,
	}
	if metrics != nil {
		quadrature.Recorder = metrics
	}

	return &Provider{
		quadrature: quadrature,
		special:    &advanced.SpecialOps{MathOps: ops},
		normal: &statistics.NormalOps{
			MathOps:    ops,
			Integrator: integrator,
			MaxSamples: cfg.MaxSamples,
		},
		describe: &statistics.DescribeOps{MathOps: ops},
		logger:   logger.Named(ServiceID),
		metrics:  metrics,
	}
}

// NewDefault creates a provider with default quadrature settings and no
// logging or metrics.
func NewDefault() *Provider {
	return NewProvider(config.Default().Quadrature, nil, nil)
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.quadrature.GetTools()...)
	tools = append(tools, m.special.GetTools()...)
	tools = append(tools, m.normal.GetTools()...)
	tools = append(tools, m.describe.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Math Service",
		Description: "Numerical integration, error function and normal distribution probabilities",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"integration",
			"quadrature",
			"special_functions",
			"normal_distribution",
			"statistics",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	timer := monitoring.NewTimer(m.metrics, ServiceID, toolID)

	result, err := m.dispatch(ctx, toolID, params, appCtx)

	fields := []zap.Field{zap.String("tool", toolID)}
	if appCtx != nil && appCtx.RequestID != nil {
		fields = append(fields, zap.String("request_id", *appCtx.RequestID))
	}

	switch {
	case err != nil:
		timer.Stop("error")
		m.recordError(toolID, "internal")
		m.logger.Error("tool execution failed", append(fields, zap.Error(err))...)
	case common.IsFailure(result):
		timer.Stop("failure")
		m.recordError(toolID, "validation")
		m.logger.Warn("tool rejected input", append(fields, zap.Stringp("reason", result.Error))...)
	default:
		timer.Stop("success")
		m.logger.Debug("tool executed", fields...)
	}

	return result, err
}

func (m *Provider) dispatch(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Quadrature
	case "math.integrate":
		return m.quadrature.Integrate(ctx, params, appCtx)
	case "math.partition":
		return m.quadrature.Partition(ctx, params, appCtx)

	// Special functions
	case "math.erf":
		return m.special.Erf(ctx, params, appCtx)
	case "math.erfc":
		return m.special.Erfc(ctx, params, appCtx)

	// Normal distribution
	case "math.normal.pdf":
		return m.normal.PDF(ctx, params, appCtx)
	case "math.normal.cdf":
		return m.normal.CDF(ctx, params, appCtx)
	case "math.normal.probability":
		return m.normal.Probability(ctx, params, appCtx)
	case "math.normal.fit":
		return m.normal.Fit(ctx, params, appCtx)

	// Descriptive statistics
	case "math.describe":
		return m.describe.Describe(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (m *Provider) recordError(toolID, errorType string) {
	if m.metrics != nil {
		m.metrics.RecordServiceError(ServiceID, toolID, errorType)
	}
}
