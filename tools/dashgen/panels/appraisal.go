package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AppraisalRate returns a timeseries panel showing completed and failed
// appraisals per minute.
func AppraisalRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Appraisals / min").
		Description("Completed and failed appraisals per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`ta:appraisals:rate5m * 60`, "completed", "A")).
		WithTarget(PromQuery(`ta:appraisal_errors:rate5m * 60`, "failed", "B")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AppraisalDuration returns a timeseries panel showing the p95 appraisal
// duration including persistence.
func AppraisalDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Appraisal Duration (p95)").
		Description("95th percentile duration of one appraisal including the database write").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(ta_appraisal_duration_seconds_bucket{job="trade-appraiser"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PositionMix returns a timeseries panel showing recommended offers by
// competitive position.
func PositionMix() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Competitive Position").
		Description("Recommended offers per hour by position against KBB").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(ta_competitive_position_total{job="trade-appraiser"}[1h])) by (position)`,
			"{{position}}", "A",
		)).
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// ExtractionStrategies returns a bar gauge panel showing which extraction
// rule matched analysis text over the last day.
func ExtractionStrategies() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Extraction Strategy").
		Description("Which issue extraction rule matched, last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(ta_extraction_strategy_total{job="trade-appraiser"}[24h])) by (strategy)`,
			"{{strategy}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ReconCostDistribution returns a bar gauge panel showing estimated repair
// cost per appraisal across histogram buckets.
func ReconCostDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Recon Cost Distribution").
		Description("Estimated total repair cost per appraisal, last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(ta_recon_cost_dollars_bucket{job="trade-appraiser"}[24h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
