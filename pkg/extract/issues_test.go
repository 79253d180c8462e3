package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/trade-appraiser/pkg/extract"
	"github.com/donaldgifford/trade-appraiser/pkg/offer"
	"github.com/donaldgifford/trade-appraiser/pkg/recon"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

func tags(ss ...string) []domain.ConditionTag {
	return domain.TagsFromStrings(ss)
}

func TestExtractWithStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		want     []domain.ConditionTag
		strategy extract.Strategy
	}{
		{
			name:     "marker block",
			text:     `Summary... ISSUE_LIST_START["scratches_bumper","dent_hood"]ISSUE_LIST_END done`,
			want:     tags("scratches_bumper", "dent_hood"),
			strategy: extract.StrategyMarker,
		},
		{
			name: "marker block ignores fallback patterns elsewhere",
			text: "detected_issues=['rust_spots']\n" +
				`"issues": ["worn_tires"]` + "\n" +
				"Detected Issues: fluid_leak ⭐\n" +
				"window_tint\n" +
				"ISSUE_LIST_START [\"scratches_bumper\", \"dent_hood\"] ISSUE_LIST_END",
			want:     tags("scratches_bumper", "dent_hood"),
			strategy: extract.StrategyMarker,
		},
		{
			name:     "marker block spans lines",
			text:     "ISSUE_LIST_START\n[\n  \"seat_wear\",\n  \"curb_rash\"\n]\nISSUE_LIST_END",
			want:     tags("seat_wear", "curb_rash"),
			strategy: extract.StrategyMarker,
		},
		{
			name:     "first marker block wins",
			text:     `ISSUE_LIST_START["dent_door"]ISSUE_LIST_END ISSUE_LIST_START["rust_spots"]ISSUE_LIST_END`,
			want:     tags("dent_door"),
			strategy: extract.StrategyMarker,
		},
		{
			name:     "marker duplicates preserved",
			text:     `ISSUE_LIST_START["curb_rash","curb_rash"]ISSUE_LIST_END`,
			want:     tags("curb_rash", "curb_rash"),
			strategy: extract.StrategyMarker,
		},
		{
			name:     "markers are case sensitive",
			text:     `issue_list_start["dent_door"]issue_list_end`,
			want:     tags("dent_door"),
			strategy: extract.StrategyVocabulary,
		},
		{
			name:     "malformed marker falls back",
			text:     `ISSUE_LIST_START[not json]ISSUE_LIST_END "issues": ["worn_tires"]`,
			want:     tags("worn_tires"),
			strategy: extract.StrategyJSONField,
		},
		{
			name:     "non-string marker array falls back",
			text:     `ISSUE_LIST_START[1, 2]ISSUE_LIST_END detected_issues=['seat_tear']`,
			want:     tags("seat_tear"),
			strategy: extract.StrategyAssignment,
		},
		{
			name:     "empty marker list falls back",
			text:     `ISSUE_LIST_START[]ISSUE_LIST_END "issues": ["fluid_leak"]`,
			want:     tags("fluid_leak"),
			strategy: extract.StrategyJSONField,
		},
		{
			name:     "assignment",
			text:     `call estimate(detected_issues = ['paint_fade', 'rust_spots', 'paint_fade'])`,
			want:     tags("paint_fade", "rust_spots", "paint_fade"),
			strategy: extract.StrategyAssignment,
		},
		{
			name:     "assignment beats json field",
			text:     `"issues": ["worn_tires"] detected_issues=['trim_damage']`,
			want:     tags("trim_damage"),
			strategy: extract.StrategyAssignment,
		},
		{
			name:     "json field",
			text:     `{"vin": "X", "issues": ["cracked_windshield", "paint scuff"]}`,
			want:     tags("cracked_windshield", "paint scuff"),
			strategy: extract.StrategyJSONField,
		},
		{
			name: "section up to emoji heading",
			text: "⚠️ Detected Issues:\n- scratches_door on left\n- Rear seat_stain\n" +
				"💰 Estimate: carpet_stain",
			want:     tags("scratches_door", "seat_stain"),
			strategy: extract.StrategySection,
		},
		{
			name: "section up to text heading",
			text: "DETECTED ISSUES: engine_corrosion, Fluid_Leak\n" +
				"Aftermarket Upgrades Detected: aftermarket_audio",
			want:     tags("engine_corrosion"),
			strategy: extract.StrategySection,
		},
		{
			name:     "vocabulary scan in vocabulary order",
			text:     "Noted WINDOW_TINT, some curb_rash and more curb_rash plus dent_door.",
			want:     tags("dent_door", "curb_rash", "window_tint"),
			strategy: extract.StrategyVocabulary,
		},
		{
			name:     "no markers",
			text:     "no markers here",
			want:     []domain.ConditionTag{},
			strategy: extract.StrategyNone,
		},
		{
			name:     "empty text",
			text:     "",
			want:     []domain.ConditionTag{},
			strategy: extract.StrategyNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, strategy := extract.ExtractWithStrategy(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.strategy, strategy)
		})
	}
}

func TestExtract_EmptyIsNonNil(t *testing.T) {
	t.Parallel()

	got := extract.Extract("no markers here")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtract_PipelineIsDeterministic(t *testing.T) {
	t.Parallel()

	text := "Vehicle walkaround complete.\n" +
		`ISSUE_LIST_START["scratches_bumper","curb_rash","aftermarket_wheels"]ISSUE_LIST_END`

	run := func() domain.ScenarioSet {
		breakdown := recon.Estimate(extract.Extract(text))
		set, err := offer.Scenarios(offer.Inputs{
			MarketAvgPrice:   25000,
			KBBInstantOffer:  23800,
			ReconCost:        breakdown.TotalRepairCost,
			AftermarketValue: breakdown.AftermarketValueAdded,
		})
		require.NoError(t, err)
		return set
	}

	first := run()
	for range 10 {
		assert.Equal(t, first, run())
	}
	assert.Equal(t, 600.0, first.Inputs.ReconCost)
	assert.Equal(t, 800.0, first.Inputs.AftermarketValue)
	assert.Equal(t, 25200.0, first.Inputs.BaseOffer)
}
