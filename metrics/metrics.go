// Package metrics exposes the parsing counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "minidom"

// Metrics holds the collectors of a single registry.
type Metrics struct {
	registry *prometheus.Registry

	parsesTotal   *prometheus.CounterVec
	nodesTotal    prometheus.Counter
	tokensTotal   *prometheus.CounterVec
	warningsTotal *prometheus.CounterVec
	cacheTotal    *prometheus.CounterVec
	inputBytes    prometheus.Histogram
	parseDuration prometheus.Histogram
}

// New creates the collectors and registers them in a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		parsesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parses_total",
				Help:      "Total number of parsed inputs",
			},
			[]string{"source", "result"},
		),

		nodesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_total",
				Help:      "Total number of document nodes produced",
			},
		),

		tokensTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokens_total",
				Help:      "Total number of tokens emitted by type",
			},
			[]string{"type"},
		),

		warningsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "warnings_total",
				Help:      "Total number of recorded parse warnings by issue",
			},
			[]string{"issue"},
		),

		cacheTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parse_cache_requests_total",
				Help:      "Parse result cache lookups by outcome",
			},
			[]string{"outcome"},
		),

		inputBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "input_bytes",
				Help:      "Size of the parsed inputs in bytes",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 10), // 64B to 16MB
			},
		),

		parseDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "parse_duration_seconds",
				Help:      "Duration of a single parse in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to 2.6s
			},
		),
	}
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveParse records the outcome of one parse.
func (m *Metrics) ObserveParse(source string, inputLen int, out dom.Output, warns *dom.Warnings, elapsed time.Duration) {
	result := "ok"
	if out.Truncated {
		result = "truncated"
	}
	m.parsesTotal.WithLabelValues(source, result).Inc()

	if out.Document != nil {
		m.nodesTotal.Add(float64(out.Document.Len()))
	}

	m.tokensTotal.WithLabelValues(dom.TokenOpeningTag.String()).Add(float64(out.OpenTags))
	m.tokensTotal.WithLabelValues(dom.TokenClosingTag.String()).Add(float64(out.CloseTags))
	m.tokensTotal.WithLabelValues(dom.TokenText.String()).Add(float64(out.TextTokens))

	for _, w := range warns.List() {
		m.warningsTotal.WithLabelValues(w.Issue.String()).Inc()
	}

	m.inputBytes.Observe(float64(inputLen))
	m.parseDuration.Observe(elapsed.Seconds())
}

// ObserveCache records a parse result cache lookup. outcome is "hit", "miss" or "error".
func (m *Metrics) ObserveCache(outcome string) {
	m.cacheTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
