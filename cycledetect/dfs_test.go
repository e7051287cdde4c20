package cycledetect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDFSDetector_MarkGenerationReused(t *testing.T) {
	d := NewDFSDetector(4)
	require.Equal(t, 4, d.N())
	require.True(t, d.Connect(0, 1))
	require.True(t, d.Connect(1, 2))
	require.True(t, d.Connect(2, 3))
	// Repeated refused connects must not corrupt the mark generation used
	// to avoid re-zeroing the visited array between runs.
	for i := 0; i < 5; i++ {
		require.False(t, d.Connect(3, 0))
	}
}

func TestDFSDetector_DisconnectReenablesPath(t *testing.T) {
	d := NewDFSDetector(3)
	require.True(t, d.Connect(0, 1))
	require.True(t, d.Connect(1, 2))
	require.False(t, d.Connect(2, 0))
	d.Disconnect(1, 2)
	require.True(t, d.Connect(2, 0))
}
