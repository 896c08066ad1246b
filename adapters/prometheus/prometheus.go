// Package prometheus provides Prometheus implementations of the metrics
// interfaces for the machine runtime and the view host.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/proteanblank/xstate/core/metrics"
)

// timer wraps a Prometheus histogram to implement the Timer interface.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// Default histogram buckets for latency metrics (in seconds). Transitions
// and renders are fast, so the buckets skew small.
var defaultBuckets = []float64{
	.000025, .00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1,
}

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// AllMetrics holds Prometheus implementations for both pillars.
type AllMetrics struct {
	Machine *machineMetrics
	View    *viewMetrics
}

// NewAllMetrics creates Prometheus metrics for both pillars at once.
func NewAllMetrics(reg prometheus.Registerer) *AllMetrics {
	return &AllMetrics{
		Machine: NewMachineMetrics(reg).(*machineMetrics),
		View:    NewViewMetrics(reg).(*viewMetrics),
	}
}
