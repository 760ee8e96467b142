package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"depsolve/internal/types"
)

func TestCatalogRejectsDuplicateEntries(t *testing.T) {
	v1 := mustVersion(t, "1")
	_, err := NewCatalog([]types.RepoPackage{
		{Name: "A", Version: v1},
		{Name: "A", Version: v1},
	})
	require.Error(t, err)
}

func TestCatalogRejectsNegativeSize(t *testing.T) {
	_, err := NewCatalog([]types.RepoPackage{
		{Name: "A", Version: mustVersion(t, "1"), Size: -1},
	})
	require.Error(t, err)
}

func TestCatalogMatchUnversionedReturnsWholeBucket(t *testing.T) {
	cat, err := NewCatalog([]types.RepoPackage{
		{Name: "A", Version: mustVersion(t, "1")},
		{Name: "A", Version: mustVersion(t, "2")},
	})
	require.NoError(t, err)
	matches := cat.Match(mustRef(t, "A"))
	require.Len(t, matches, 2)
}

func TestCatalogMatchUnknownNameReturnsEmpty(t *testing.T) {
	cat, err := NewCatalog(nil)
	require.NoError(t, err)
	require.Empty(t, cat.Match(mustRef(t, "ghost")))
}

func TestCatalogOrdersVersionsAscending(t *testing.T) {
	cat, err := NewCatalog([]types.RepoPackage{
		{Name: "A", Version: mustVersion(t, "3")},
		{Name: "A", Version: mustVersion(t, "1")},
		{Name: "A", Version: mustVersion(t, "2")},
	})
	require.NoError(t, err)
	bucket := cat.ByName("A")
	require.Equal(t, []string{"A@1", "A@2", "A@3"}, []string{bucket[0].Encoding, bucket[1].Encoding, bucket[2].Encoding})
}

func TestCardinalityAtMostOneLinear(t *testing.T) {
	clauses, fresh := atMostOneLinear([]int{1, 2, 3}, 4)
	require.Equal(t, 2, fresh)
	require.NotEmpty(t, clauses)
}

func TestCardinalitySkipsSingleton(t *testing.T) {
	clauses, fresh := atMostOneLinear([]int{1}, 2)
	require.Empty(t, clauses)
	require.Zero(t, fresh)
}
