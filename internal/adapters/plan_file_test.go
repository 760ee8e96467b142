package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"depsolve/internal/types"
)

func TestPlanFileAdapterWritePlanPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	v1, err := types.ParseVersion("1")
	require.NoError(t, err)

	adapter := NewPlanFileAdapter(dir)
	commands := []types.Command{
		{Install: false, Name: "B", Version: v1},
		{Install: true, Name: "A", Version: v1},
	}
	require.NoError(t, adapter.WritePlan(commands))

	content, err := os.ReadFile(filepath.Join(dir, "plan.txt"))
	require.NoError(t, err)
	require.Equal(t, "-B=1\n+A=1", string(content))
}

func TestPlanFileAdapterRejectsEmptyDir(t *testing.T) {
	adapter := NewPlanFileAdapter("")
	require.Error(t, adapter.WritePlan(nil))
}
