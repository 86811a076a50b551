package cfr

// pruneThreshold drops near-zero probabilities from averaged
// strategies before renormalization.
const pruneThreshold = 0.005

// infoSet accumulates CFR+ state for one (decision node, bet size,
// bucket) key. Regrets are floored at zero after every update, so
// regret matching can read them directly.
type infoSet struct {
	n           int
	regret      [maxActions]float64
	strategySum [maxActions]float64
}

// currentStrategy writes the regret-matched strategy into out, which
// must have length n. Uniform when no action carries positive regret.
func (is *infoSet) currentStrategy(out []float64) {
	total := 0.0
	for i := 0; i < is.n; i++ {
		out[i] = is.regret[i]
		total += out[i]
	}
	if total <= 0 {
		uniform(out)
		return
	}
	for i := range out {
		out[i] /= total
	}
}

// averageStrategy returns the time-averaged strategy with tiny entries
// pruned and the remainder renormalized. An info set that was never
// reached averages to uniform.
func (is *infoSet) averageStrategy(actions []Action) map[Action]float64 {
	out := make(map[Action]float64, is.n)
	total := 0.0
	for i := 0; i < is.n; i++ {
		total += is.strategySum[i]
	}
	if total <= 0 {
		uniformMap(out, actions)
		return out
	}

	kept := 0.0
	for i, a := range actions {
		p := is.strategySum[i] / total
		if p < pruneThreshold {
			continue
		}
		out[a] = p
		kept += p
	}
	if kept <= 0 {
		uniformMap(out, actions)
		return out
	}
	for a := range out {
		out[a] /= kept
	}
	return out
}

func uniform(out []float64) {
	p := 1.0 / float64(len(out))
	for i := range out {
		out[i] = p
	}
}

func uniformMap(out map[Action]float64, actions []Action) {
	p := 1.0 / float64(len(actions))
	for _, a := range actions {
		out[a] = p
	}
}
