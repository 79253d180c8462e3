package offer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

func TestScenarios_ReferenceExample(t *testing.T) {
	t.Parallel()

	set, err := Scenarios(Inputs{
		MarketAvgPrice:   25000,
		KBBInstantOffer:  23800,
		ReconCost:        400,
		AftermarketValue: 800,
	})
	require.NoError(t, err)

	assert.Equal(t, -400.0, set.Inputs.NetRecon)
	assert.Equal(t, 25400.0, set.Inputs.BaseOffer)
	assert.Equal(t, 23800.0, set.Inputs.KBBInstantOffer)

	tests := []struct {
		got        domain.OfferScenario
		label      domain.ScenarioLabel
		offer      float64
		winRate    float64
		profit     float64
		marginPct  float64
		multiplier float64
	}{
		{set.Aggressive, domain.ScenarioAggressive, 23368.00, 0.65, 3282.00, 12.5, 0.92},
		{set.Balanced, domain.ScenarioBalanced, 24130.00, 0.78, 2520.00, 9.6, 0.95},
		{set.Conservative, domain.ScenarioConservative, 24892.00, 0.89, 1758.00, 6.7, 0.98},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.got.Label)
		assert.InDelta(t, tt.offer, tt.got.OfferPrice, 0.001, tt.label)
		assert.Equal(t, tt.winRate, tt.got.WinRateEstimate, tt.label)
		assert.InDelta(t, tt.profit, tt.got.ExpectedProfit, 0.001, tt.label)
		assert.InDelta(t, tt.marginPct, tt.got.ProfitMarginPct, 0.001, tt.label)
		assert.Equal(t, tt.multiplier, tt.got.Multiplier, tt.label)
		assert.NotEmpty(t, tt.got.Description)
	}
}

func TestScenarios_Order(t *testing.T) {
	t.Parallel()

	set, err := Scenarios(Inputs{MarketAvgPrice: 30000, KBBInstantOffer: 28000, ReconCost: 1200})
	require.NoError(t, err)

	all := set.All()
	require.Len(t, all, 3)
	assert.Equal(t, domain.ScenarioAggressive, all[0].Label)
	assert.Equal(t, domain.ScenarioBalanced, all[1].Label)
	assert.Equal(t, domain.ScenarioConservative, all[2].Label)
	assert.Less(t, all[0].OfferPrice, all[1].OfferPrice)
	assert.Less(t, all[1].OfferPrice, all[2].OfferPrice)
}

func TestScenarios_NegativeBaseOfferInvertsOrder(t *testing.T) {
	t.Parallel()

	set, err := Scenarios(Inputs{MarketAvgPrice: 1000, ReconCost: 5000})
	require.NoError(t, err)

	assert.Equal(t, -4000.0, set.Inputs.BaseOffer)
	assert.Greater(t, set.Aggressive.OfferPrice, set.Balanced.OfferPrice)
	assert.Greater(t, set.Balanced.OfferPrice, set.Conservative.OfferPrice)
}

func TestScenarios_ZeroMarketPrice(t *testing.T) {
	t.Parallel()

	set, err := Scenarios(Inputs{})
	require.NoError(t, err)

	for _, s := range set.All() {
		assert.Zero(t, s.OfferPrice)
		assert.Zero(t, s.ExpectedProfit)
		assert.Zero(t, s.ProfitMarginPct)
		assert.False(t, math.IsNaN(s.ProfitMarginPct))
	}
}

func TestScenarios_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Inputs
	}{
		{name: "NaN market price", in: Inputs{MarketAvgPrice: math.NaN()}},
		{name: "Inf kbb", in: Inputs{KBBInstantOffer: math.Inf(1)}},
		{name: "-Inf recon", in: Inputs{ReconCost: math.Inf(-1)}},
		{name: "NaN aftermarket", in: Inputs{AftermarketValue: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Scenarios(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestMultiplier(t *testing.T) {
	t.Parallel()

	m, ok := Multiplier(domain.ScenarioBalanced)
	require.True(t, ok)
	assert.Equal(t, 0.95, m)

	_, ok = Multiplier("reckless")
	assert.False(t, ok)
}

func TestRound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12.5, round(12.5029, 1))
	assert.Equal(t, 23368.0, round(23368.000000000004, 2))
	assert.Equal(t, -2.0, round(-2.0, 1))
	assert.Equal(t, 0.13, round(0.125, 2))
}
