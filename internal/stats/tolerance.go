package stats

import (
	"fmt"
	"math"
)

// Tolerances defines pass/fail bounds on the absolute deviation between an
// empirical statistic and its theoretical value. A zero tolerance means the
// corresponding check is disabled.
type Tolerances struct {
	CountsMean       float64 `yaml:"counts_mean"`
	CountsVariance   float64 `yaml:"counts_variance"`
	InterarrivalMean float64 `yaml:"interarrival_mean"`
}

// ToleranceResult represents the outcome of a single tolerance check.
type ToleranceResult struct {
	Name      string `json:"name"`
	Passed    bool   `json:"passed"`
	Tolerance string `json:"tolerance"`
	Deviation string `json:"deviation"`
}

// ToleranceResults contains all tolerance check results.
type ToleranceResults struct {
	Passed  bool              `json:"passed"`
	Results []ToleranceResult `json:"results"`
}

// Check evaluates all configured tolerances against a computed summary.
// The interarrival check is skipped when the realization produced no events.
func (t *Tolerances) Check(s *Summary) *ToleranceResults {
	if t == nil {
		return &ToleranceResults{Passed: true}
	}

	results := &ToleranceResults{
		Passed:  true,
		Results: make([]ToleranceResult, 0),
	}

	checks := []struct {
		name      string
		tolerance float64
		empirical float64
		target    float64
		skip      bool
	}{
		{"counts_mean", t.CountsMean, s.CountsMean, s.TheoreticalMean, false},
		{"counts_var", t.CountsVariance, s.CountsVariance, s.TheoreticalVariance, false},
		{
			name:      "interarrival_mean",
			tolerance: t.InterarrivalMean,
			empirical: deref(s.InterarrivalMean),
			target:    s.TheoreticalInterarrivalMean,
			skip:      s.InterarrivalMean == nil,
		},
	}

	for _, check := range checks {
		if check.tolerance == 0 || check.skip {
			continue
		}

		deviation := math.Abs(check.empirical - check.target)
		passed := deviation <= check.tolerance
		if !passed {
			results.Passed = false
		}

		results.Results = append(results.Results, ToleranceResult{
			Name:      check.name,
			Passed:    passed,
			Tolerance: fmt.Sprintf("%g", check.tolerance),
			Deviation: fmt.Sprintf("%.6f", deviation),
		})
	}

	return results
}

// Violations returns only the failed tolerance results.
func (r *ToleranceResults) Violations() []ToleranceResult {
	violations := make([]ToleranceResult, 0)
	for _, result := range r.Results {
		if !result.Passed {
			violations = append(violations, result)
		}
	}
	return violations
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
