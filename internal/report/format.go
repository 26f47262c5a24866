// Package report renders simulation summaries as text, JSON, and plots.
// It only consumes computed values; no statistics are derived here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"poissim/internal/stats"
)

// WriteText writes the summary in human-readable format.
func WriteText(w io.Writer, s *stats.Summary, tolerances *stats.ToleranceResults) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Poisson-approximation simulation summary")
	fmt.Fprintln(w, "=========================================")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Parameters: T=%g, lambda=%g, n=%d, p=lambda*T/n=%.6g, trials=%d\n",
		s.TimeHorizon, s.Rate, s.Subintervals, s.SuccessProbability, s.Trials)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Counts over trials:")
	fmt.Fprintf(w, "  empirical mean = %.6f\n", s.CountsMean)
	fmt.Fprintf(w, "  empirical var  = %.6f\n", s.CountsVariance)
	fmt.Fprintf(w, "  theoretical (Poisson) mean = var = lambda * T = %.6f\n", s.TheoreticalMean)
	fmt.Fprintln(w, "")

	if s.InterarrivalMean != nil {
		fmt.Fprintln(w, "Interarrival times from one realization (approx):")
		fmt.Fprintf(w, "  number of events in realization = %d\n", s.RealizationEventCount)
		fmt.Fprintf(w, "  empirical mean interarrival (including time from 0 to first) = %.6f\n", *s.InterarrivalMean)
		fmt.Fprintf(w, "  empirical var interarrival = %.6f\n", *s.InterarrivalVariance)
		fmt.Fprintf(w, "  theoretical Exponential mean = 1/lambda = %.6f\n", s.TheoreticalInterarrivalMean)
	} else {
		fmt.Fprintln(w, "No events in the single realization used for interarrival inspection.")
	}

	if tolerances != nil && len(tolerances.Results) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Tolerances:")
		for _, result := range tolerances.Results {
			symbol := "✓"
			if !result.Passed {
				symbol = "✗"
			}
			fmt.Fprintf(w, "  %s %s deviation %s <= %s\n",
				symbol, result.Name, result.Deviation, result.Tolerance)
		}
	}
}

// WriteJSON writes the summary in JSON format.
func WriteJSON(w io.Writer, s *stats.Summary, tolerances *stats.ToleranceResults) {
	output := struct {
		*stats.Summary
		Tolerances *stats.ToleranceResults `json:"tolerances,omitempty"`
	}{
		Summary:    s,
		Tolerances: tolerances,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output) // stdout errors are unrecoverable
}

// SaveSummary serializes the summary record to a JSON file.
func SaveSummary(path string, s *stats.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary file: %w", err)
	}
	return nil
}
