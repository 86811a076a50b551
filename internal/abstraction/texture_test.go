package abstraction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livegto/solver/internal/deck"
)

func tex(t *testing.T, board string) Texture {
	t.Helper()
	return ClassifyTexture(deck.MustParseCards(board))
}

func TestClassifyTexture(t *testing.T) {
	tests := []struct {
		board string
		want  Texture
	}{
		{"KhQh2h", Monotone},
		{"As8d8c", Paired},
		{"9c8d7h", WetConnected},
		{"Jh9h2c", WetTwoTone},
		{"AhQd7c", HighDryAce},
		{"Kc8d3h", HighDryKQ},
		{"Qd8s3c", HighDryKQ},
		{"Jc7d2h", MediumDry},
		{"8s4d2c", MediumDry},
		{"7d4s2c", LowDry},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tex(t, tt.board), "board %s", tt.board)
	}
}

func TestTexturePriority(t *testing.T) {
	// Monotone wins over pairing and connectivity.
	require.Equal(t, Monotone, tex(t, "9h8h7h"))

	// Paired wins over connectivity and suits.
	require.Equal(t, Paired, tex(t, "9h9c8h"))

	// Connectivity wins over two-tone.
	require.Equal(t, WetConnected, tex(t, "Th9h8c"))

	// Two-tone wins over height tiers.
	require.Equal(t, WetTwoTone, tex(t, "Ah9h2c"))
}

func TestTextureGapBoundary(t *testing.T) {
	// Max adjacent gap of exactly 2 still connected.
	require.Equal(t, WetConnected, tex(t, "Jc9d7h"))
	// Gap of 3 is not.
	require.Equal(t, MediumDry, tex(t, "Jc8d2h"))
}

func TestTextureWireNames(t *testing.T) {
	want := []string{
		"monotone", "paired", "wet_connected", "wet_twotone",
		"high_dry_A", "high_dry_K", "medium_dry", "low_dry",
	}
	for i, texture := range Textures() {
		require.Equal(t, want[i], texture.String())
		parsed, err := ParseTexture(want[i])
		require.NoError(t, err)
		require.Equal(t, texture, parsed)
	}
	_, err := ParseTexture("bogus")
	require.Error(t, err)
}
