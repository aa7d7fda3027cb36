// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

/*
Package metrics provides Prometheus instrumentation for the recommendation pipeline.

All collectors register with the default registry through promauto. The CLI is a
short-lived process, so instead of serving /metrics it can dump the registry in
node-exporter textfile format with WriteTextfile.

# Available Metrics

Recommendation Metrics:
  - verdant_recommend_requests_total: Pipeline runs (counter)
    Labels: outcome (satisfied, relaxed, exhausted, empty)
  - verdant_recommend_duration_seconds: Pipeline latency (histogram)
  - verdant_recommend_eligible_candidates: Eligible plants (histogram)
    Labels: stage (strict, final)
  - verdant_recommend_results: Recommendations returned per request (histogram)
  - verdant_relaxation_steps_total: Relaxations applied (counter)
    Labels: step
  - verdant_preference_defaults_total: Invalid preference values replaced (counter)
    Labels: field

Catalog Metrics:
  - verdant_catalog_records_loaded: Records in the last loaded catalog (gauge)
  - verdant_catalog_load_errors_total: Failed catalog loads (counter)

# Usage

	metrics.RecordRecommendation("satisfied", 12, 18, 5, time.Since(start))
	if err := metrics.WriteTextfile("/var/lib/node_exporter/verdant.prom"); err != nil {
	    logging.Warn().Err(err).Msg("metrics export failed")
	}
*/
package metrics
