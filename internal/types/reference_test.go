package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReferenceUnversioned(t *testing.T) {
	ref, err := ParseReference("libfoo")
	require.NoError(t, err)
	require.Equal(t, "libfoo", ref.Name)
	require.True(t, ref.Op.IsZero())
	require.False(t, ref.IsVersioned())
}

func TestParseReferenceComposedOperator(t *testing.T) {
	ref, err := ParseReference("libfoo>=1.2")
	require.NoError(t, err)
	require.Equal(t, "libfoo", ref.Name)
	require.True(t, ref.Op.Gt)
	require.True(t, ref.Op.Eq)
	require.False(t, ref.Op.Lt)
	require.Equal(t, "1.2", ref.Version.String())
}

func TestParseReferenceRejectsDoubleOperatorRun(t *testing.T) {
	_, err := ParseReference("foo>=1.0=2.0")
	require.Error(t, err)
}

func TestParseReferenceRejectsEmpty(t *testing.T) {
	_, err := ParseReference("")
	require.Error(t, err)
}

func TestReferenceUnparseRoundTrips(t *testing.T) {
	cases := []string{"libfoo", "libfoo=1.0", "libfoo>=1.0", "libfoo<2.0"}
	for _, raw := range cases {
		ref, err := ParseReference(raw)
		require.NoError(t, err)
		require.Equal(t, raw, ref.Unparse())
	}
}
