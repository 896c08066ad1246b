package machine

import "github.com/proteanblank/xstate/core/metrics"

// Metrics defines the metrics interface for the machine runtime.
// All methods are thread-safe.
type Metrics interface {
	// EventProcessed is called once per processed event; handled reports
	// whether the current state had a transition for it.
	EventProcessed(eventType string, handled bool)
	// TransitionDuration times one transition, actions included.
	TransitionDuration() metrics.Timer
	// ListenersActive reports the number of live subscriptions of a ref.
	ListenersActive(machineID string, count int)
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) EventProcessed(string, bool)       {}
func (nopMetrics) TransitionDuration() metrics.Timer { return metrics.NopTimer() }
func (nopMetrics) ListenersActive(string, int)       {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
