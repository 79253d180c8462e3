package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastRetentionRun returns a stat panel showing time since the last
// successful retention run.
func LastRetentionRun() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Retention Run").
		Description("Time since stored appraisals were last pruned").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`time() - ta_retention_last_run_timestamp{job="trade-appraiser"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(2*86400, 3*86400)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RetentionDeleted returns a timeseries panel showing appraisals pruned per
// day.
func RetentionDeleted() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Appraisals Pruned").
		Description("Stored appraisals deleted by retention per day").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(ta_retention_deleted_total{job="trade-appraiser"}[1d]))`,
			"deleted", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}
