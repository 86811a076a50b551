package randutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeterministic(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDeriveDecorrelates(t *testing.T) {
	require.NotEqual(t, Derive(1, 0), Derive(1, 1))
	require.NotEqual(t, Derive(1, 0), Derive(2, 0))
	require.Equal(t, Derive(5, 3), Derive(5, 3))
}
