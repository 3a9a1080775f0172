package flathash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daskie/qc-hash-go"
)

func TestXXHashAlternateHasherIsUsable(t *testing.T) {
	s := flathash.NewSet[string](flathash.HashStringXXH64)
	words := []string{"robin", "hood", "flat", "hash", "table", "sentinel", "probe", "distance"}
	for _, w := range words {
		require.True(t, s.Insert(w))
	}
	require.Equal(t, len(words), s.Len())
	for _, w := range words {
		require.True(t, s.Contains(w))
	}
	require.False(t, s.Contains("absent"))
}

func TestXXHashNotBitExactWithDefault(t *testing.T) {
	a := flathash.HashStringSeed0("flathash")
	b := flathash.HashStringXXH64("flathash")
	require.NotEqual(t, a, b, "alternate hasher happened to collide with the default on this input")
}
