package metrics

// nopTimer is a no-op implementation of Timer.
type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

// NopTimer returns a Timer that records nothing.
func NopTimer() Timer { return nopTimer{} }
