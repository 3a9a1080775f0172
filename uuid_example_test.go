package flathash_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daskie/qc-hash-go"
)

// TestSetOfUUIDs exercises the byte-sequence hasher with a realistic
// fixed-width binary key type rather than a free-form string.
func TestSetOfUUIDs(t *testing.T) {
	hashUUID := func(id uuid.UUID) uint64 {
		return flathash.HashBytesSeed0(id[:])
	}

	s := flathash.NewSet[uuid.UUID](hashUUID)
	ids := make([]uuid.UUID, 32)
	for i := range ids {
		ids[i] = uuid.New()
		require.True(t, s.Insert(ids[i]))
	}
	require.Equal(t, len(ids), s.Len())
	for _, id := range ids {
		require.True(t, s.Contains(id))
	}
	require.False(t, s.Contains(uuid.Nil))
}
