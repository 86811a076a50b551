// Package equity estimates, per board texture, the bucket probability
// distribution and the bucket-vs-bucket showdown equity matrix via
// Monte Carlo dealing.
package equity

import (
	"errors"
	"fmt"

	"github.com/livegto/solver/internal/abstraction"
)

// Distribution holds P(bucket | texture). Rows sum to 1.
type Distribution [abstraction.NumTextures][abstraction.NumBuckets]float64

// Matrix holds P(hero bucket beats villain bucket | texture), with
// splits counted as half a win. For any texture t and buckets h, v:
// m[t][h][v] + m[t][v][h] = 1 and m[t][b][b] = 0.5.
type Matrix [abstraction.NumTextures][abstraction.NumBuckets][abstraction.NumBuckets]float64

// Uniform fills one texture's distribution row with equal bucket mass.
func (d *Distribution) uniformRow(t abstraction.Texture) {
	for b := range d[t] {
		d[t][b] = 1.0 / float64(abstraction.NumBuckets)
	}
}

// Row returns a copy of one texture's bucket probabilities.
func (d *Distribution) Row(t abstraction.Texture) [abstraction.NumBuckets]float64 {
	return d[t]
}

// Texture returns a copy of one texture's equity slice.
func (m *Matrix) Texture(t abstraction.Texture) [abstraction.NumBuckets][abstraction.NumBuckets]float64 {
	return m[t]
}

// Config controls the Monte Carlo estimation.
type Config struct {
	// BucketSamples is the number of random deals used to estimate
	// bucket distributions across all textures.
	BucketSamples int

	// MatchupsPerTexture is the target matchup count for each
	// texture's equity estimation. Rejection sampling attempts are
	// capped at 30x this value.
	MatchupsPerTexture int

	// Workers bounds concurrent texture workers. Zero selects
	// min(GOMAXPROCS, texture count).
	Workers int

	// Seed drives all sampling; worker streams are derived from it.
	Seed int64
}

// Validate ensures the sampling parameters are usable.
func (c Config) Validate() error {
	if c.BucketSamples <= 0 {
		return errors.New("bucket samples must be > 0")
	}
	if c.MatchupsPerTexture <= 0 {
		return errors.New("matchups per texture must be > 0")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative (got %d)", c.Workers)
	}
	return nil
}

// DefaultConfig mirrors the sample sizes used for the published tables.
func DefaultConfig() Config {
	return Config{
		BucketSamples:      50_000,
		MatchupsPerTexture: 30_000,
		Workers:            0,
		Seed:               1,
	}
}

// maxAttemptFactor caps rejection sampling per texture relative to the
// matchup target, so rare textures terminate rather than spin.
const maxAttemptFactor = 30

// Ordinal fallback for bucket pairs with no observed showdowns: the
// bucket earlier in canonical order wins 75%.
const (
	fallbackStrongerEquity = 0.75
	fallbackEqualEquity    = 0.50
)

func fallbackEquity(hero, villain abstraction.Bucket) float64 {
	switch {
	case hero < villain:
		return fallbackStrongerEquity
	case hero > villain:
		return 1 - fallbackStrongerEquity
	default:
		return fallbackEqualEquity
	}
}
