package sim

// Interarrivals returns the gap sequence for sorted event times: the time
// from 0 to the first event, then the gap between consecutive events.
// The result has the same length as times; an empty realization yields an
// empty sequence. Pure function, no side effects.
func Interarrivals(times []float64) []float64 {
	if len(times) == 0 {
		return nil
	}
	gaps := make([]float64, len(times))
	prev := 0.0
	for i, t := range times {
		gaps[i] = t - prev
		prev = t
	}
	return gaps
}
