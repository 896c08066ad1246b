package view

import "github.com/proteanblank/xstate/core/metrics"

// Metrics defines the metrics interface for the host engine.
// All methods are thread-safe.
type Metrics interface {
	// Rendered is called once per component render.
	Rendered()
	// RenderDuration times a single component render.
	RenderDuration() metrics.Timer
	// NodesActive reports the number of mounted components.
	NodesActive(count int)
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) Rendered()                     {}
func (nopMetrics) RenderDuration() metrics.Timer { return metrics.NopTimer() }
func (nopMetrics) NodesActive(int)               {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
