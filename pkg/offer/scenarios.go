// Package offer turns market pricing and reconditioning adjustments into
// priced trade-in offer scenarios and classifies an offer's competitive
// position against a KBB-style benchmark.
package offer

import (
	"fmt"
	"math"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// RetailMarkup is the assumed resale price relative to the market average.
const RetailMarkup = 1.05

// Inputs are the pricing values a scenario set is computed from.
type Inputs struct {
	MarketAvgPrice   float64
	KBBInstantOffer  float64
	ReconCost        float64
	AftermarketValue float64
}

type scenarioParams struct {
	label       domain.ScenarioLabel
	multiplier  float64
	winRate     float64
	description string
}

// scenarioTable holds the fixed strategy constants in presentation order.
var scenarioTable = [3]scenarioParams{
	{
		label:       domain.ScenarioAggressive,
		multiplier:  0.92,
		winRate:     0.65,
		description: "Lower offer, higher margin, moderate win probability",
	},
	{
		label:       domain.ScenarioBalanced,
		multiplier:  0.95,
		winRate:     0.78,
		description: "Optimal balance of win rate and profitability",
	},
	{
		label:       domain.ScenarioConservative,
		multiplier:  0.98,
		winRate:     0.89,
		description: "Higher offer, lower margin, high win probability",
	},
}

// Multiplier returns the fixed base-offer multiplier for a scenario label.
func Multiplier(label domain.ScenarioLabel) (float64, bool) {
	for _, p := range scenarioTable {
		if p.label == label {
			return p.multiplier, true
		}
	}
	return 0, false
}

// Scenarios computes the aggressive, balanced and conservative offers.
//
// Zero and negative prices are computed through unchanged. When the net
// reconditioning burden exceeds the market price the base offer is negative
// and the scenario ordering inverts.
func Scenarios(in Inputs) (domain.ScenarioSet, error) {
	if err := finite(
		in.MarketAvgPrice, in.KBBInstantOffer, in.ReconCost, in.AftermarketValue,
	); err != nil {
		return domain.ScenarioSet{}, fmt.Errorf("computing offer scenarios: %w", err)
	}

	netRecon := in.ReconCost - in.AftermarketValue
	baseOffer := in.MarketAvgPrice - netRecon
	expectedSale := in.MarketAvgPrice * RetailMarkup

	var out [3]domain.OfferScenario
	for i, p := range scenarioTable {
		offerPrice := baseOffer * p.multiplier
		profit := expectedSale - offerPrice - netRecon

		var margin float64
		if expectedSale != 0 {
			margin = profit / expectedSale * 100
		}

		out[i] = domain.OfferScenario{
			Label:           p.label,
			Multiplier:      p.multiplier,
			OfferPrice:      round(offerPrice, 2),
			WinRateEstimate: p.winRate,
			ExpectedProfit:  round(profit, 2),
			ProfitMarginPct: round(margin, 1),
			Description:     p.description,
		}
	}

	return domain.ScenarioSet{
		Aggressive:   out[0],
		Balanced:     out[1],
		Conservative: out[2],
		Inputs: domain.ScenarioInputs{
			MarketAvgPrice:   in.MarketAvgPrice,
			KBBInstantOffer:  in.KBBInstantOffer,
			ReconCost:        in.ReconCost,
			AftermarketValue: in.AftermarketValue,
			NetRecon:         netRecon,
			BaseOffer:        baseOffer,
		},
	}, nil
}

func finite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v", domain.ErrInvalidInput, v)
		}
	}
	return nil
}

// round rounds half away from zero to the given number of decimal places.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
