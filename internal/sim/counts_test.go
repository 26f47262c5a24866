package sim

import (
	"math"
	"testing"
)

func popMeanVar(counts []int) (mean, variance float64) {
	for _, c := range counts {
		mean += float64(c)
	}
	mean /= float64(len(counts))
	for _, c := range counts {
		d := float64(c) - mean
		variance += d * d
	}
	variance /= float64(len(counts))
	return mean, variance
}

func TestParseCountStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    CountStrategy
		wantErr bool
	}{
		{"", CountDirect, false},
		{"binomial", CountDirect, false},
		{"bernoulli", CountCompose, false},
		{"poisson", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCountStrategy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCountStrategy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCountStrategy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSampleCountsLengthAndRange(t *testing.T) {
	p := Params{T: 1.0, Lambda: 3.5, N: 200, Trials: 500, Seed: 1}
	for _, strategy := range []CountStrategy{CountDirect, CountCompose} {
		counts := SampleCounts(p, strategy, NewStream(p.Seed), nil)
		if len(counts) != p.Trials {
			t.Fatalf("%s: len = %d, want %d", strategy, len(counts), p.Trials)
		}
		for i, c := range counts {
			if c < 0 || c > p.N {
				t.Fatalf("%s: counts[%d] = %d, want in [0, %d]", strategy, i, c, p.N)
			}
		}
	}
}

func TestSampleCountsDeterminism(t *testing.T) {
	p := Params{T: 1.0, Lambda: 3.5, N: 200, Trials: 500, Seed: 99}
	for _, strategy := range []CountStrategy{CountDirect, CountCompose} {
		a := SampleCounts(p, strategy, NewStream(p.Seed), nil)
		b := SampleCounts(p, strategy, NewStream(p.Seed), nil)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s: trial %d differs between identical runs: %d != %d", strategy, i, a[i], b[i])
			}
		}
	}
}

// With p = lambda*T/n and n large, counts converge to Poisson(lambda*T):
// mean and variance both approach 3.5 for the reference parameters.
func TestSampleCountsConvergenceDirect(t *testing.T) {
	p := Params{T: 1.0, Lambda: 3.5, N: 5000, Trials: 20000, Seed: 12345}
	counts := SampleCounts(p, CountDirect, NewStream(p.Seed), nil)

	mean, variance := popMeanVar(counts)
	if math.Abs(mean-3.5) > 0.1 {
		t.Errorf("empirical mean = %v, want within 0.1 of 3.5", mean)
	}
	if math.Abs(variance-3.5) > 0.2 {
		t.Errorf("empirical variance = %v, want within 0.2 of 3.5", variance)
	}
}

func TestSampleCountsConvergenceCompose(t *testing.T) {
	// Smaller configuration: the compose strategy consumes n uniforms per trial.
	p := Params{T: 1.0, Lambda: 3.5, N: 500, Trials: 2000, Seed: 12345}
	counts := SampleCounts(p, CountCompose, NewStream(p.Seed), nil)

	mean, variance := popMeanVar(counts)
	if math.Abs(mean-3.5) > 0.3 {
		t.Errorf("empirical mean = %v, want within 0.3 of 3.5", mean)
	}
	if math.Abs(variance-3.5) > 0.6 {
		t.Errorf("empirical variance = %v, want within 0.6 of 3.5", variance)
	}
}

func TestSampleCountsBoundaries(t *testing.T) {
	// p = 0: all counts zero.
	zero := Params{T: 1.0, Lambda: 0, N: 100, Trials: 50, Seed: 3}
	for _, strategy := range []CountStrategy{CountDirect, CountCompose} {
		for i, c := range SampleCounts(zero, strategy, NewStream(zero.Seed), nil) {
			if c != 0 {
				t.Errorf("%s: p=0 counts[%d] = %d, want 0", strategy, i, c)
			}
		}
	}

	// p = 1: every subinterval fires, all counts equal n.
	one := Params{T: 1.0, Lambda: 100, N: 100, Trials: 50, Seed: 3}
	for _, strategy := range []CountStrategy{CountDirect, CountCompose} {
		for i, c := range SampleCounts(one, strategy, NewStream(one.Seed), nil) {
			if c != one.N {
				t.Errorf("%s: p=1 counts[%d] = %d, want %d", strategy, i, c, one.N)
			}
		}
	}
}

type recordingObserver struct {
	calls []int
	total int
}

func (r *recordingObserver) TrialSampled(trial, total int) {
	r.calls = append(r.calls, trial)
	r.total = total
}

func TestSampleCountsObserver(t *testing.T) {
	p := Params{T: 1.0, Lambda: 2, N: 50, Trials: 10, Seed: 5}
	obs := &recordingObserver{}
	SampleCounts(p, CountDirect, NewStream(p.Seed), obs)

	if len(obs.calls) != p.Trials {
		t.Fatalf("observer called %d times, want %d", len(obs.calls), p.Trials)
	}
	for i, trial := range obs.calls {
		if trial != i+1 {
			t.Errorf("call %d reported trial %d, want %d", i, trial, i+1)
		}
	}
	if obs.total != p.Trials {
		t.Errorf("observer total = %d, want %d", obs.total, p.Trials)
	}
}
