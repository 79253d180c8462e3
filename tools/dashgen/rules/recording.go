package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ta-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ta-recording",
					Rules: []Rule{
						{
							Record: "ta:http_requests:rate5m",
							Expr:   `sum(rate(ta_http_requests_total[5m]))`,
						},
						{
							Record: "ta:http_errors:rate5m",
							Expr:   `sum(rate(ta_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "ta:http_rate_limited:rate5m",
							Expr:   `rate(ta_http_rate_limited_total[5m])`,
						},
						{
							Record: "ta:appraisals:rate5m",
							Expr:   `rate(ta_appraisals_total[5m])`,
						},
						{
							Record: "ta:appraisal_errors:rate5m",
							Expr:   `rate(ta_appraisal_errors_total[5m])`,
						},
					},
				},
			},
		},
	}
}
