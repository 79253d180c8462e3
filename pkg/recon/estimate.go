package recon

import (
	"strings"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// NormalizeTag lower-cases a tag and replaces spaces with underscores.
func NormalizeTag(tag domain.ConditionTag) domain.ConditionTag {
	return domain.ConditionTag(strings.ReplaceAll(strings.ToLower(string(tag)), " ", "_"))
}

// Estimate prices a sequence of condition tags.
//
// Tags are not deduplicated: a tag listed twice is charged twice. Line items
// are keyed by rule description and a repeated description overwrites the
// earlier entry. Unknown tags are ignored.
func Estimate(tags []domain.ConditionTag) domain.CostBreakdown {
	b := domain.CostBreakdown{
		LineItems:      make(map[string]float64),
		IssuesAnalyzed: len(tags),
	}

	for _, tag := range tags {
		rule, ok := rulesByTag[NormalizeTag(tag)]
		if !ok {
			continue
		}

		if rule.IsAftermarket() {
			b.AftermarketValueAdded += rule.ValueAdded
			continue
		}

		b.LineItems[rule.Description] = rule.RepairCost
		b.TotalRepairCost += rule.RepairCost
	}

	b.NetAdjustment = b.AftermarketValueAdded - b.TotalRepairCost

	return b
}
