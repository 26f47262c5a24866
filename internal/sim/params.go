// Package sim implements the Bernoulli-approximation simulation of a
// Poisson process: the interval [0, T] is divided into n equal subintervals,
// each producing an event with probability p = lambda*T/n.
package sim

import "fmt"

// Params holds the fixed configuration for one simulation run.
// Immutable once constructed; derived quantities are computed on demand.
type Params struct {
	T      float64 // total time interval
	Lambda float64 // event rate (events per unit time)
	N      int     // number of subintervals per trial
	Trials int     // number of repeated count experiments
	Seed   uint64  // seed for the random stream
}

// P returns the per-subinterval success probability lambda*T/n.
func (p Params) P() float64 {
	return p.Lambda * p.T / float64(p.N)
}

// Width returns the subinterval width T/n.
func (p Params) Width() float64 {
	return p.T / float64(p.N)
}

// InvalidConfigError reports a parameter set that cannot drive a valid
// Bernoulli approximation.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Validate checks that all parameters are positive and that the derived
// success probability lies in (0, 1]. A probability above 1 means n is too
// small for the requested rate and horizon, and the Binomial approximation
// is meaningless.
func (p Params) Validate() error {
	if p.T <= 0 {
		return &InvalidConfigError{Field: "time_horizon", Reason: "must be positive"}
	}
	if p.Lambda <= 0 {
		return &InvalidConfigError{Field: "rate", Reason: "must be positive"}
	}
	if p.N <= 0 {
		return &InvalidConfigError{Field: "subintervals", Reason: "must be positive"}
	}
	if p.Trials <= 0 {
		return &InvalidConfigError{Field: "trials", Reason: "must be positive"}
	}
	if prob := p.P(); prob > 1 {
		return &InvalidConfigError{
			Field:  "subintervals",
			Reason: fmt.Sprintf("too few for rate*horizon: p=lambda*T/n=%g exceeds 1", prob),
		}
	}
	return nil
}
