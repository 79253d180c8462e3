package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// trade-appraiser operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ta-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ta-alerts",
					Rules: []Rule{
						{
							Alert: "TaDown",
							Expr:  `absent(up{job="trade-appraiser"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Trade Appraiser is down",
								"description": "The trade-appraiser job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "TaReadinessDown",
							Expr:  `ta_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Trade Appraiser readiness check is failing",
								"description": "The database has been unreachable from the readiness probe for more than 2 minutes.",
							},
						},
						{
							Alert: "TaHighErrorRate",
							Expr:  `ta:http_errors:rate5m / ta:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Trade Appraiser",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "TaAppraisalFailures",
							Expr:  `ta:appraisal_errors:rate5m / (ta:appraisals:rate5m + ta:appraisal_errors:rate5m) > 0.1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Appraisal failure ratio is elevated",
								"description": "More than 10% of appraisals have failed over the last 10 minutes.",
							},
						},
						{
							Alert: "TaRateLimiting",
							Expr:  `ta:http_rate_limited:rate5m > 1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "API clients are being rate limited",
								"description": "More than one request per second has been rejected with 429 for 10 minutes.",
							},
						},
						{
							Alert: "TaRetentionStale",
							Expr:  `time() - ta_retention_last_run_timestamp > 3 * 86400 and ta_retention_last_run_timestamp > 0`,
							For:   "1h",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Appraisal retention has not run recently",
								"description": "Stored appraisals have not been pruned for more than 3 days.",
							},
						},
					},
				},
			},
		},
	}
}
