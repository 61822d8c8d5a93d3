// Package metrics defines the Prometheus collectors recorded during a
// wordindex run and writes them out in the textfile exposition format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Token outcomes recorded by TokensTotal.
const (
	OutcomeIndexed = "indexed"
	OutcomeStopped = "stopped"
)

// Metrics holds all Prometheus collectors for one run. Each instance owns its
// registry so repeated runs in one process do not collide.
type Metrics struct {
	Registry           *prometheus.Registry
	LinesScannedTotal  prometheus.Counter
	TokensTotal        *prometheus.CounterVec
	DistinctWords      prometheus.Gauge
	StopWordsLoaded    prometheus.Gauge
	StopWordFilesTotal prometheus.Counter
	StageDuration      *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		LinesScannedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordindex_lines_scanned_total",
				Help: "Total number of input lines read by the indexer.",
			},
		),
		TokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordindex_tokens_total",
				Help: "Total word tokens seen by outcome (indexed, stopped).",
			},
			[]string{"outcome"},
		),
		DistinctWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordindex_distinct_words",
				Help: "Number of distinct words in the finished index.",
			},
		),
		StopWordsLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordindex_stopwords_loaded",
				Help: "Number of distinct stop words in effect.",
			},
		),
		StopWordFilesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordindex_stopword_files_total",
				Help: "Total number of stop-word files read.",
			},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordindex_stage_duration_seconds",
				Help:    "Pipeline stage latency in seconds.",
				Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"stage"},
		),
	}

	m.Registry.MustRegister(
		m.LinesScannedTotal,
		m.TokensTotal,
		m.DistinctWords,
		m.StopWordsLoaded,
		m.StopWordFilesTotal,
		m.StageDuration,
	)

	return m
}

// ObserveStage records how long a pipeline stage took since start.
func (m *Metrics) ObserveStage(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes every registered collector to path, suitable for the
// node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
