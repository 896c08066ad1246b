package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/proteanblank/xstate/core/metrics"
	"github.com/proteanblank/xstate/core/view"
)

// viewMetrics implements view.Metrics using Prometheus.
type viewMetrics struct {
	rendersTotal   prometheus.Counter
	renderDuration prometheus.Histogram
	nodesActive    prometheus.Gauge
}

// NewViewMetrics creates a new Prometheus implementation of view.Metrics.
func NewViewMetrics(reg prometheus.Registerer) view.Metrics {
	m := &viewMetrics{
		rendersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "xstate_view_renders_total",
			Help: "Total number of component renders",
		}),

		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "xstate_view_render_duration_seconds",
			Help:    "Component render time in seconds",
			Buckets: defaultBuckets,
		}),

		nodesActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "xstate_view_nodes_active",
			Help: "Current number of mounted components",
		}),
	}

	reg.MustRegister(
		m.rendersTotal,
		m.renderDuration,
		m.nodesActive,
	)

	return m
}

func (m *viewMetrics) Rendered() {
	m.rendersTotal.Inc()
}

func (m *viewMetrics) RenderDuration() metrics.Timer {
	return newTimer(m.renderDuration)
}

func (m *viewMetrics) NodesActive(count int) {
	m.nodesActive.Set(float64(count))
}

var _ view.Metrics = (*viewMetrics)(nil)
