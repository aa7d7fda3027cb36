// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verdant_recommend_requests_total",
			Help: "Total number of recommendation pipeline runs",
		},
		[]string{"outcome"}, // "satisfied", "relaxed", "exhausted", "empty"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "verdant_recommend_duration_seconds",
			Help:    "Duration of a recommendation pipeline run in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	EligibleCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "verdant_recommend_eligible_candidates",
			Help:    "Number of plants passing the hard filter",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
		},
		[]string{"stage"}, // "strict", "final"
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "verdant_recommend_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50},
		},
	)

	RelaxationSteps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verdant_relaxation_steps_total",
			Help: "Total number of constraint relaxations applied",
		},
		[]string{"step"},
	)

	PreferenceDefaults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verdant_preference_defaults_total",
			Help: "Total number of invalid preference values replaced by defaults",
		},
		[]string{"field"},
	)

	// Catalog Metrics
	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "verdant_catalog_records_loaded",
			Help: "Number of plant records in the most recently loaded catalog",
		},
	)

	CatalogLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "verdant_catalog_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
	)
)

// RecordRecommendation records the outcome of one pipeline run.
func RecordRecommendation(outcome string, strictCount, finalCount, returned int, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
	EligibleCandidates.WithLabelValues("strict").Observe(float64(strictCount))
	EligibleCandidates.WithLabelValues("final").Observe(float64(finalCount))
	RecommendResults.Observe(float64(returned))
}

// RecordRelaxationStep records that a relaxation step was applied.
func RecordRelaxationStep(step string) {
	RelaxationSteps.WithLabelValues(step).Inc()
}

// RecordPreferenceDefault records that a preference field fell back to its default.
func RecordPreferenceDefault(field string) {
	PreferenceDefaults.WithLabelValues(field).Inc()
}

// RecordCatalogLoad records a catalog load. records is ignored when err is non-nil.
func RecordCatalogLoad(records int, err error) {
	if err != nil {
		CatalogLoadErrors.Inc()
		return
	}
	CatalogRecords.Set(float64(records))
}

// WriteTextfile writes the default registry to path in Prometheus text format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
