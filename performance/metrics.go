// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package performance

import (
	"net/http"

	"github.com/brainmark/extension-preflight/preflight"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace      = "preflight"
	metricsSubSystemRuns  = "runs"
	metricsSubSystemCheck = "checks"
)

type RunMetrics struct {
	RunsTotal       prometheus.Counter
	FailedRunsTotal prometheus.Counter
	RunDuration     prometheus.Histogram
	ChecksTotal     *prometheus.CounterVec
}

type Metrics struct {
	registry   *prometheus.Registry
	runMetrics RunMetrics
}

func NewMetrics() *Metrics {
	var m Metrics
	m.registry = prometheus.NewRegistry()

	m.runMetrics.RunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemRuns,
		Name:      "total",
		Help:      "The total number of preflight runs executed.",
	})
	m.registry.MustRegister(m.runMetrics.RunsTotal)

	m.runMetrics.FailedRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemRuns,
		Name:      "failed_total",
		Help:      "The total number of preflight runs with at least one failed check.",
	})
	m.registry.MustRegister(m.runMetrics.FailedRunsTotal)

	m.runMetrics.RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemRuns,
		Name:      "duration_seconds",
		Help:      "The time taken to execute a preflight run.",
	})
	m.registry.MustRegister(m.runMetrics.RunDuration)

	m.runMetrics.ChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemCheck,
		Name:      "total",
		Help:      "The total number of file checks, by group and status.",
	},
		[]string{"group", "status"})
	m.registry.MustRegister(m.runMetrics.ChecksTotal)

	return &m
}

// ObserveRun records a finished preflight run.
func (m *Metrics) ObserveRun(report *preflight.Report) {
	m.runMetrics.RunsTotal.Inc()
	if !report.Passed {
		m.runMetrics.FailedRunsTotal.Inc()
	}
	m.runMetrics.RunDuration.Observe(report.Duration.Seconds())

	manifestStatus := "ok"
	if !report.Manifest.Valid {
		manifestStatus = "invalid"
	}
	m.runMetrics.ChecksTotal.WithLabelValues("manifest", manifestStatus).Inc()

	for _, res := range report.Results {
		status := "ok"
		if res.Status == preflight.StatusMissing {
			status = "missing"
		}
		m.runMetrics.ChecksTotal.WithLabelValues(res.Group, status).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RunMetrics() *RunMetrics {
	return &m.runMetrics
}
