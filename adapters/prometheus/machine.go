package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/proteanblank/xstate/core/machine"
	"github.com/proteanblank/xstate/core/metrics"
)

// machineMetrics implements machine.Metrics using Prometheus.
type machineMetrics struct {
	eventsTotal        *prometheus.CounterVec
	transitionDuration prometheus.Histogram
	listenersActive    *prometheus.GaugeVec
}

// NewMachineMetrics creates a new Prometheus implementation of machine.Metrics.
func NewMachineMetrics(reg prometheus.Registerer) machine.Metrics {
	m := &machineMetrics{
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xstate_machine_events_total",
			Help: "Total number of events processed",
		}, []string{"event_type", "handled"}),

		transitionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "xstate_machine_transition_duration_seconds",
			Help:    "Transition time in seconds, actions included",
			Buckets: defaultBuckets,
		}),

		listenersActive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "xstate_machine_listeners_active",
			Help: "Current number of live subscriptions",
		}, []string{"machine_id"}),
	}

	reg.MustRegister(
		m.eventsTotal,
		m.transitionDuration,
		m.listenersActive,
	)

	return m
}

func (m *machineMetrics) EventProcessed(eventType string, handled bool) {
	m.eventsTotal.WithLabelValues(eventType, boolToStr(handled)).Inc()
}

func (m *machineMetrics) TransitionDuration() metrics.Timer {
	return newTimer(m.transitionDuration)
}

func (m *machineMetrics) ListenersActive(machineID string, count int) {
	m.listenersActive.WithLabelValues(machineID).Set(float64(count))
}

var _ machine.Metrics = (*machineMetrics)(nil)
