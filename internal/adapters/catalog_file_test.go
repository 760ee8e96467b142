package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogFileAdapterLoadPackages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repo.yaml")
	doc := `
packages:
  - name: A
    version: "1"
    size: 10
    depends:
      - ["B=1"]
  - name: B
    version: "1"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	adapter := NewCatalogFileAdapter(path)
	packages, err := adapter.LoadPackages()
	require.NoError(t, err)
	require.Len(t, packages, 2)
	require.Equal(t, "A", packages[0].Name)
	require.Len(t, packages[0].Depends, 1)
}

func TestCatalogFileAdapterCachesResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: []\n"), 0644))

	adapter := NewCatalogFileAdapter(path)
	first, err := adapter.LoadPackages()
	require.NoError(t, err)
	require.Empty(t, first)

	require.NoError(t, os.Remove(path))
	second, err := adapter.LoadPackages()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCatalogFileAdapterMissingFile(t *testing.T) {
	adapter := NewCatalogFileAdapter("/nonexistent/repo.yaml")
	_, err := adapter.LoadPackages()
	require.Error(t, err)
}
