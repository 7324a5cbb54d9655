package service

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/statcalc/internal/testutil"
	"github.com/GriffinCanCode/statcalc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	id       string
	category types.Category
	calls    []string
}

func (m *mockProvider) Definition() types.Service {
	category := m.category
	if category == "" {
		category = types.CategoryMath
	}
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "Quadrature mock for testing",
		Category:     category,
		Capabilities: []string{"integration", "special_functions"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "number",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	m.calls = append(m.calls, toolID)
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": 1.0},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test"}))

	_, ok := r.Get("test")
	assert.True(t, ok)

	assert.Error(t, r.Register(&mockProvider{id: ""}))

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))
	require.NoError(t, r.Register(&mockProvider{id: "test1"}))
	require.NoError(t, r.Register(&mockProvider{id: "stats", category: types.CategoryStatistics}))

	services := r.List(nil)
	require.Len(t, services, 3)
	assert.Equal(t, "stats", services[0].ID)
	assert.Equal(t, "test1", services[1].ID)

	cat := types.CategoryMath
	assert.Len(t, r.List(&cat), 2)
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "math"}))

	results := r.Discover("numerical integration of a density", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "math", results[0].ID)

	assert.Empty(t, r.Discover("unrelated words", 5))
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}
	require.NoError(t, r.Register(p))

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"test.test"}, p.calls)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	result, err := r.Execute(ctx, "nodot", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidToolID)
	assert.False(t, result.Success)

	result, err = r.Execute(ctx, "missing.tool", nil, nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "service not found")
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test1"}))
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"math": 2}, stats["categories"])
}

func TestExecuteWithMockProvider(t *testing.T) {
	r := NewRegistry()
	p := testutil.NewMockServiceProvider(t, "stats")
	want := &types.Result{Success: true, Data: map[string]interface{}{"result": 0.5}}
	p.On("Execute", mock.Anything, "stats.test", map[string]interface{}{"x": 0.0}, (*types.Context)(nil)).
		Return(want, nil).
		Once()
	require.NoError(t, r.Register(p))

	got, err := r.Execute(context.Background(), "stats.test", map[string]interface{}{"x": 0.0}, nil)
	require.NoError(t, err)
	assert.Same(t, want, got)
	p.AssertExpectations(t)
}
