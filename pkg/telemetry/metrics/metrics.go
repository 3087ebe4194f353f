// Package metrics provides Prometheus instrumentation for template
// rendering. The engine fails soft on malformed templates, so the
// parse-issue counter is the primary signal that an authored template
// is degrading instead of rendering cleanly.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus collectors for the template engine.
type Metrics struct {
	renders       prometheus.Counter
	parseIssues   *prometheus.CounterVec
	overrideHits  prometheus.Counter
	renderSeconds prometheus.Histogram
}

// New creates a Metrics instance registered against the given
// registerer. Pass prometheus.DefaultRegisterer for process-wide
// metrics, or a private registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		renders: factory.NewCounter(prometheus.CounterOpts{
			Name: "beacon_template_renders_total",
			Help: "Total number of template render calls",
		}),

		parseIssues: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "beacon_template_parse_issues_total",
			Help: "Total number of non-fatal template parse issues encountered during rendering",
		}, []string{"issue"}),

		overrideHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "beacon_template_override_selections_total",
			Help: "Total number of renders that selected a conditional override template",
		}),

		renderSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "beacon_template_render_duration_seconds",
			Help:    "Template render latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		}),
	}
}

// ObserveRender records one completed render and its duration.
func (m *Metrics) ObserveRender(seconds float64) {
	if m == nil {
		return
	}
	m.renders.Inc()
	m.renderSeconds.Observe(seconds)
}

// RecordParseIssue counts a non-fatal parse degradation by issue text.
func (m *Metrics) RecordParseIssue(issue string) {
	if m == nil {
		return
	}
	m.parseIssues.WithLabelValues(issue).Inc()
}

// RecordOverrideSelection counts a render that used an override
// template chosen by the structured condition selector.
func (m *Metrics) RecordOverrideSelection() {
	if m == nil {
		return
	}
	m.overrideHits.Inc()
}
