package sim

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Stream is a seeded source of randomness. The same seed and the same
// sequence of draw requests yields the identical sequence of values, which
// is the reproducibility contract for the whole simulation: consumers must
// draw in a fixed, documented order.
//
// Both capabilities share one underlying generator, so a Binomial draw
// advances the same state as Uniform draws.
type Stream interface {
	// Uniform returns the next draw, uniformly distributed in [0, 1).
	Uniform() float64
	// Binomial returns the next draw from Binomial(n, p).
	Binomial(n int, p float64) int
}

type randStream struct {
	src *rand.Rand
}

// NewStream returns a deterministic Stream seeded with seed.
func NewStream(seed uint64) Stream {
	return &randStream{src: rand.New(rand.NewSource(seed))}
}

func (s *randStream) Uniform() float64 {
	return s.src.Float64()
}

func (s *randStream) Binomial(n int, p float64) int {
	// Degenerate probabilities are exact, not sampled.
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	b := distuv.Binomial{N: float64(n), P: p, Src: s.src}
	return int(b.Rand())
}
