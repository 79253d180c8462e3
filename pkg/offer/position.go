package offer

import (
	"fmt"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// Position band edges relative to the KBB instant offer.
const (
	highlyCompetitiveRatio = 1.02
	marketRateRatio        = 0.98
)

var assessments = map[domain.CompetitivePosition]string{
	domain.PositionHighlyCompetitive: "Offer exceeds KBB by >2%, strong win probability",
	domain.PositionCompetitive:       "Offer beats KBB, good win probability",
	domain.PositionMarketRate:        "Offer near KBB, moderate win probability",
	domain.PositionBelowMarket:       "Offer below KBB, risk of losing trade",
}

// Classify maps an offer to its competitive position against KBB.
// Band edges are exclusive: an offer exactly at kbb*1.02 is Competitive.
func Classify(ourOffer, kbbInstantOffer float64) domain.CompetitivePosition {
	switch {
	case ourOffer > kbbInstantOffer*highlyCompetitiveRatio:
		return domain.PositionHighlyCompetitive
	case ourOffer > kbbInstantOffer:
		return domain.PositionCompetitive
	case ourOffer > kbbInstantOffer*marketRateRatio:
		return domain.PositionMarketRate
	default:
		return domain.PositionBelowMarket
	}
}

// Position classifies an offer and reports its gap to KBB and the market
// average. Percentages are 0 when the benchmark is not positive.
func Position(ourOffer, kbbInstantOffer, marketAvg float64) (domain.PositionAnalysis, error) {
	if err := finite(ourOffer, kbbInstantOffer, marketAvg); err != nil {
		return domain.PositionAnalysis{}, fmt.Errorf("computing competitive position: %w", err)
	}

	pos := Classify(ourOffer, kbbInstantOffer)

	return domain.PositionAnalysis{
		Position:   pos,
		Assessment: assessments[pos],
		VsKBB:      compare(ourOffer, kbbInstantOffer),
		VsMarket:   compare(ourOffer, marketAvg),
	}, nil
}

func compare(ourOffer, benchmark float64) domain.Comparison {
	diff := ourOffer - benchmark

	var pct float64
	if benchmark > 0 {
		pct = diff / benchmark * 100
	}

	return domain.Comparison{
		Difference:    round(diff, 2),
		DifferencePct: round(pct, 1),
	}
}
