package main

import "errors"

// KnownMetrics is the set of metric names exported by trade-appraiser
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"ta_http_request_duration_seconds": true,
	"ta_http_requests_total":           true,
	"ta_http_rate_limited_total":       true,

	// Health metrics.
	"ta_healthz_up": true,
	"ta_readyz_up":  true,

	// Appraisal metrics.
	"ta_appraisals_total":           true,
	"ta_appraisal_errors_total":     true,
	"ta_appraisal_duration_seconds": true,
	"ta_extraction_strategy_total":  true,
	"ta_recon_cost_dollars":         true,
	"ta_competitive_position_total": true,

	// Retention metrics.
	"ta_retention_deleted_total":      true,
	"ta_retention_last_run_timestamp": true,

	// Recording rules.
	"ta:http_requests:rate5m":     true,
	"ta:http_errors:rate5m":       true,
	"ta:http_rate_limited:rate5m": true,
	"ta:appraisals:rate5m":        true,
	"ta:appraisal_errors:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
