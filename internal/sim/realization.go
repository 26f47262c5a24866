package sim

import "sort"

// BuildRealization simulates one long realization over [0, T] and returns
// the event timestamps in ascending order.
//
// It first draws n uniforms, marking subinterval i a hit when its draw falls
// below p, then draws one jitter uniform u per hit and places the event at
// (i+u)*(T/n), uniformly within its subinterval. That two-pass draw order is
// part of the reproducibility contract. An empty result (no hits) is a valid
// outcome, not an error.
func BuildRealization(p Params, s Stream) []float64 {
	prob := p.P()
	hits := make([]int, 0)
	for i := 0; i < p.N; i++ {
		if s.Uniform() < prob {
			hits = append(hits, i)
		}
	}

	width := p.Width()
	times := make([]float64, len(hits))
	for k, i := range hits {
		times[k] = (float64(i) + s.Uniform()) * width
	}

	// Hits are discovered in index order; chronological order is not assumed.
	sort.Float64s(times)
	return times
}
