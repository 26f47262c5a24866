package sim

// Observer receives a callback after each completed count trial, letting the
// caller surface progress without any I/O inside the simulation itself.
type Observer interface {
	TrialSampled(trial, total int)
}

// NopObserver discards all progress callbacks.
var NopObserver Observer = nopObserver{}

type nopObserver struct{}

func (nopObserver) TrialSampled(int, int) {}
