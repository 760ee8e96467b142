package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"depsolve/internal/adapters"
	"depsolve/internal/app"
	"depsolve/internal/types"
)

// TestResolveIntegration exercises the full document-to-plan path: YAML
// repository document and line-based initial-state/constraints
// documents, through the app.Service orchestration layer, down to the
// gophersat-backed optimizer and the plan file writer. This mirrors
// scenario S1 from the resolver's testable properties.
func TestResolveIntegration(t *testing.T) {
	dir := t.TempDir()

	repoPath := filepath.Join(dir, "repo.yaml")
	require.NoError(t, os.WriteFile(repoPath, []byte(`
packages:
  - name: A
    version: "1"
    depends:
      - ["B=1"]
  - name: B
    version: "1"
`), 0644))

	initialPath := filepath.Join(dir, "initial.txt")
	require.NoError(t, os.WriteFile(initialPath, []byte(""), 0644))

	constraintsPath := filepath.Join(dir, "constraints.txt")
	require.NoError(t, os.WriteFile(constraintsPath, []byte("+A=1\n"), 0644))

	outDir := filepath.Join(dir, "out")

	service := app.Service{Optimizer: adapters.NewGophersatOptimizer()}
	result, err := service.Resolve(t.Context(), app.ResolveRequest{
		RepositoryPath:   repoPath,
		InitialStatePath: initialPath,
		ConstraintsPath:  constraintsPath,
		OutputDir:        outDir,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"+B=1", "+A=1"}, commandStrings(result.Plan))

	content, err := os.ReadFile(filepath.Join(outDir, "plan.txt"))
	require.NoError(t, err)
	require.Equal(t, "+B=1\n+A=1", string(content))
}

func commandStrings(cmds []types.Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.String()
	}
	return out
}
