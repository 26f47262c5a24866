package sim

import "fmt"

// CountStrategy selects how per-trial event counts are drawn.
type CountStrategy string

const (
	// CountDirect draws each trial count in one Binomial(n, p) draw.
	CountDirect CountStrategy = "binomial"
	// CountCompose composes each trial count from n Bernoulli(p) draws.
	// Statistically equivalent to CountDirect, but it consumes n uniforms
	// per trial instead of one binomial draw, so the two strategies produce
	// different numbers for the same seed.
	CountCompose CountStrategy = "bernoulli"
)

// ParseCountStrategy maps a configuration string to a CountStrategy.
// The empty string defaults to CountDirect.
func ParseCountStrategy(s string) (CountStrategy, error) {
	switch CountStrategy(s) {
	case "":
		return CountDirect, nil
	case CountDirect, CountCompose:
		return CountStrategy(s), nil
	}
	return "", fmt.Errorf("unknown count strategy %q (want %q or %q)", s, CountDirect, CountCompose)
}

// SampleCounts runs p.Trials independent count experiments and returns the
// number of events observed in each. With obs non-nil, it is called once
// after every completed trial.
func SampleCounts(p Params, strategy CountStrategy, s Stream, obs Observer) []int {
	if obs == nil {
		obs = NopObserver
	}
	prob := p.P()
	counts := make([]int, p.Trials)
	for t := range counts {
		if strategy == CountCompose {
			c := 0
			for i := 0; i < p.N; i++ {
				if s.Uniform() < prob {
					c++
				}
			}
			counts[t] = c
		} else {
			counts[t] = s.Binomial(p.N, prob)
		}
		obs.TrialSampled(t+1, p.Trials)
	}
	return counts
}
