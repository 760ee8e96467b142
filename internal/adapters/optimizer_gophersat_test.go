package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"depsolve/internal/ports"
)

func TestGophersatOptimizerMinimizeSatisfiable(t *testing.T) {
	optimizer := NewGophersatOptimizer()
	// 2 variables: (x1 ∨ x2), minimize x1 weighted 10 + x2 weighted 1.
	// The cheapest satisfying assignment is x1=false, x2=true.
	model, ok, err := optimizer.Minimize(
		t.Context(),
		2,
		[]ports.Clause{{1, 2}},
		[]ports.CostTerm{{Var: 1, Weight: 10}, {Var: 2, Weight: 1}},
		5*time.Second,
	)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, model[0])
	require.True(t, model[1])
}

func TestGophersatOptimizerUnsatisfiable(t *testing.T) {
	optimizer := NewGophersatOptimizer()
	_, ok, err := optimizer.Minimize(
		t.Context(),
		1,
		[]ports.Clause{{1}, {-1}},
		nil,
		5*time.Second,
	)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGophersatOptimizerRejectsZeroVars(t *testing.T) {
	optimizer := NewGophersatOptimizer()
	_, ok, err := optimizer.Minimize(t.Context(), 0, nil, nil, time.Second)
	require.Error(t, err)
	require.False(t, ok)
}
