// Package stats computes empirical and theoretical summary statistics for a
// simulation run and checks them against configured tolerances.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"poissim/internal/sim"
)

// Summary is the single record exposed to the reporting layer. Field names in
// the serialized form follow the summary file format.
//
// Interarrival statistics are pointers so that a realization with zero events
// reports them as explicitly absent (JSON null) rather than zero.
type Summary struct {
	TimeHorizon        float64 `json:"T"`
	Rate               float64 `json:"lambda"`
	Subintervals       int     `json:"n"`
	SuccessProbability float64 `json:"p"`
	Trials             int     `json:"trials"`

	CountsMean          float64 `json:"counts_mean"`
	CountsVariance      float64 `json:"counts_var"`
	TheoreticalMean     float64 `json:"theor_mean"`
	TheoreticalVariance float64 `json:"theor_var"`

	InterarrivalMean                *float64 `json:"interarrival_mean"`
	InterarrivalVariance            *float64 `json:"interarrival_var"`
	TheoreticalInterarrivalMean     float64  `json:"theor_interarrival_mean"`
	TheoreticalInterarrivalVariance float64  `json:"theor_interarrival_var"`

	RealizationEventCount int `json:"realization_event_count"`
}

// Summarize computes population mean and variance (divide by count, not
// count-minus-one; the biased estimator is kept for reproducibility of the
// reported numbers) over the counts and over the interarrival gaps, together
// with the theoretical Poisson and Exponential reference values.
// Pure function, no side effects.
func Summarize(p sim.Params, counts []int, times, gaps []float64) *Summary {
	s := &Summary{
		TimeHorizon:        p.T,
		Rate:               p.Lambda,
		Subintervals:       p.N,
		SuccessProbability: p.P(),
		Trials:             p.Trials,

		TheoreticalMean:     p.Lambda * p.T,
		TheoreticalVariance: p.Lambda * p.T,

		TheoreticalInterarrivalMean:     1 / p.Lambda,
		TheoreticalInterarrivalVariance: 1 / (p.Lambda * p.Lambda),

		RealizationEventCount: len(times),
	}

	cs := make([]float64, len(counts))
	for i, c := range counts {
		cs[i] = float64(c)
	}
	s.CountsMean, s.CountsVariance = stat.PopMeanVariance(cs, nil)

	if len(gaps) > 0 {
		mean, variance := stat.PopMeanVariance(gaps, nil)
		s.InterarrivalMean = &mean
		s.InterarrivalVariance = &variance
	}

	return s
}
