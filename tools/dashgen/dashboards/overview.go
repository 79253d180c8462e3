// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/trade-appraiser/tools/dashgen/panels"
)

// OverviewUID is the stable Grafana UID of the overview dashboard.
const OverviewUID = "ta-overview"

// BuildOverview constructs the Trade Appraiser overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Trade Appraiser Overview").
		Uid(OverviewUID).
		Tags([]string{"ta", "trade-appraiser"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.AppraisalsToday()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	// Row 3: Appraisals.
	b.WithRow(dashboard.NewRowBuilder("Appraisals").
		WithPanel(panels.AppraisalRate()).
		WithPanel(panels.AppraisalDuration()).
		WithPanel(panels.PositionMix()))

	// Row 4: Condition.
	b.WithRow(dashboard.NewRowBuilder("Condition").
		WithPanel(panels.ExtractionStrategies()).
		WithPanel(panels.ReconCostDistribution()))

	// Row 5: Retention.
	b.WithRow(dashboard.NewRowBuilder("Retention").
		WithPanel(panels.LastRetentionRun()).
		WithPanel(panels.RetentionDeleted()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
