package equity

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/livegto/solver/internal/abstraction"
	"github.com/livegto/solver/internal/deck"
	"github.com/livegto/solver/internal/evaluator"
	"github.com/livegto/solver/internal/randutil"
)

// progressInterval is how often the matrix computation logs progress.
const progressInterval = 5 * time.Second

// Engine runs the Monte Carlo estimations. It holds no mutable state
// between runs; every call re-derives its RNG streams from the seed.
type Engine struct {
	cfg    Config
	logger *log.Logger
	clock  quartz.Clock
}

// NewEngine constructs an engine. A nil clock selects the real clock.
func NewEngine(cfg Config, logger *log.Logger, clock quartz.Clock) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Engine{cfg: cfg, logger: logger, clock: clock}, nil
}

// ComputeDistribution estimates P(bucket | texture) by dealing random
// hole cards and flops. Single-threaded; textures that never come up
// fall back to a uniform row.
func (e *Engine) ComputeDistribution(ctx context.Context) (Distribution, error) {
	start := e.clock.Now()
	rng := randutil.New(e.cfg.Seed)
	d := deck.NewDeck(rng)

	var counts [abstraction.NumTextures][abstraction.NumBuckets]int
	var totals [abstraction.NumTextures]int
	var buf [5]deck.Card

	for i := 0; i < e.cfg.BucketSamples; i++ {
		if i&0xFFF == 0 && ctx.Err() != nil {
			return Distribution{}, ctx.Err()
		}
		d.Reset()
		d.DealInto(buf[:])
		hole, board := buf[:2], buf[2:5]
		tex := abstraction.ClassifyTexture(board)
		bkt := abstraction.ClassifyHand(hole, board)
		counts[tex][bkt]++
		totals[tex]++
	}

	var dist Distribution
	for _, tex := range abstraction.Textures() {
		if totals[tex] == 0 {
			dist.uniformRow(tex)
			continue
		}
		for b := range dist[tex] {
			dist[tex][b] = float64(counts[tex][b]) / float64(totals[tex])
		}
	}

	e.logger.Info("bucket distributions computed",
		"samples", e.cfg.BucketSamples,
		"duration", e.clock.Since(start))
	return dist, nil
}

// workerTally is one texture worker's private win/total bookkeeping.
// Entries are recorded in both bucket orders per matchup, which makes
// the complement identity exact for observed pairs.
type workerTally struct {
	wins   [abstraction.NumBuckets][abstraction.NumBuckets]float64
	totals [abstraction.NumBuckets][abstraction.NumBuckets]int
}

func (t *workerTally) record(hero, villain abstraction.Bucket, result float64) {
	t.wins[hero][villain] += result
	t.wins[villain][hero] += 1 - result
	t.totals[hero][villain]++
	t.totals[villain][hero]++
}

// ComputeMatrix estimates the per-texture equity matrix. One worker per
// texture, each with a derived RNG stream and private tallies; results
// merge by summation after all workers join.
func (e *Engine) ComputeMatrix(ctx context.Context) (Matrix, error) {
	start := e.clock.Now()
	workers := e.cfg.Workers
	if workers <= 0 {
		workers = min(runtime.GOMAXPROCS(0), abstraction.NumTextures)
	}

	var completed atomic.Int64
	target := int64(e.cfg.MatchupsPerTexture) * abstraction.NumTextures

	progressCtx, stopProgress := context.WithCancel(ctx)
	defer stopProgress()
	go e.reportProgress(progressCtx, &completed, target)

	tallies := make([]workerTally, abstraction.NumTextures)
	done := make([]int, abstraction.NumTextures)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, tex := range abstraction.Textures() {
		g.Go(func() error {
			seed := randutil.Derive(e.cfg.Seed, int(tex))
			n, err := e.matrixWorker(gctx, tex, seed, &tallies[tex], &completed)
			done[tex] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Matrix{}, err
	}
	stopProgress()

	var m Matrix
	for _, tex := range abstraction.Textures() {
		t := &tallies[tex]
		for _, hero := range abstraction.Buckets() {
			for _, villain := range abstraction.Buckets() {
				if total := t.totals[hero][villain]; total > 0 {
					m[tex][hero][villain] = t.wins[hero][villain] / float64(total)
				} else {
					m[tex][hero][villain] = fallbackEquity(hero, villain)
				}
			}
		}
		e.logger.Debug("texture equity computed", "texture", tex.String(), "matchups", done[tex])
	}

	e.logger.Info("equity matrix computed",
		"matchups_per_texture", e.cfg.MatchupsPerTexture,
		"workers", workers,
		"duration", e.clock.Since(start))
	return m, nil
}

// matrixWorker runs rejection sampling for a single texture. Each
// accepted board yields up to six matchups: the two dealt pairs plus
// their cross matchups, all resolved on the same runout.
func (e *Engine) matrixWorker(ctx context.Context, target abstraction.Texture, seed int64, tally *workerTally, completed *atomic.Int64) (int, error) {
	rng := randutil.New(seed)
	d := deck.NewDeck(rng)

	var cards [9]deck.Card
	var extra [4]deck.Card
	var runout [5]deck.Card

	goal := e.cfg.MatchupsPerTexture
	maxAttempts := goal * maxAttemptFactor
	done := 0

	for attempt := 0; attempt < maxAttempts && done < goal; attempt++ {
		if attempt&0x3FF == 0 && ctx.Err() != nil {
			return done, ctx.Err()
		}

		d.Reset()
		d.DealInto(cards[:])
		board := cards[:3]
		if abstraction.ClassifyTexture(board) != target {
			continue
		}

		h1, h2 := cards[3:5], cards[5:7]
		copy(runout[:3], board)
		copy(runout[3:], cards[7:9])

		b1 := abstraction.ClassifyHand(h1, board)
		b2 := abstraction.ClassifyHand(h2, board)
		tally.record(b1, b2, showdown(h1, h2, runout[:]))
		done++

		// Amortize the rejection cost: more hole cards on the same board.
		d.DealInto(extra[:])
		h3, h4 := extra[:2], extra[2:]
		b3 := abstraction.ClassifyHand(h3, board)
		b4 := abstraction.ClassifyHand(h4, board)
		tally.record(b3, b4, showdown(h3, h4, runout[:]))
		done++

		cross := [4][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}}
		holes := [4][]deck.Card{h1, h2, h3, h4}
		bkts := [4]abstraction.Bucket{b1, b2, b3, b4}
		for _, pair := range cross {
			a, b := pair[0], pair[1]
			tally.record(bkts[a], bkts[b], showdown(holes[a], holes[b], runout[:]))
			done++
		}

		completed.Add(6)
	}
	return done, nil
}

// showdown resolves a 5-card runout between two hole pairs, returning
// 1, 0.5, or 0 from the first player's perspective.
func showdown(a, b, board []deck.Card) float64 {
	var handA, handB [7]deck.Card
	copy(handA[:2], a)
	copy(handA[2:], board)
	copy(handB[:2], b)
	copy(handB[2:], board)

	switch evaluator.Evaluate(handA[:]).Compare(evaluator.Evaluate(handB[:])) {
	case 1:
		return 1
	case -1:
		return 0
	default:
		return 0.5
	}
}

func (e *Engine) reportProgress(ctx context.Context, completed *atomic.Int64, target int64) {
	ticker := e.clock.NewTicker(progressInterval, "equity-progress")
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.logger.Info("equity sampling", "matchups", completed.Load(), "target", target)
		}
	}
}
