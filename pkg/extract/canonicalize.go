package extract

import (
	"strings"

	"github.com/donaldgifford/trade-appraiser/pkg/recon"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

type keywordRule struct {
	all []string // every keyword must appear
	any []string // at least one must appear; empty means no constraint
	tag func(lower string) domain.ConditionTag
}

func fixed(tag domain.ConditionTag) func(string) domain.ConditionTag {
	return func(string) domain.ConditionTag { return tag }
}

// keywordRules are evaluated in order and the first match wins.
var keywordRules = []keywordRule{
	{
		all: []string{"paint"},
		any: []string{"scratch", "scuff"},
		tag: func(s string) domain.ConditionTag {
			if strings.Contains(s, "bumper") {
				return "scratches_bumper"
			}
			return "scratches_door"
		},
	},
	{all: []string{"wheel"}, any: []string{"scuff", "curb", "rash"}, tag: fixed("curb_rash")},
	{
		all: []string{"dent"},
		tag: func(s string) domain.ConditionTag {
			if strings.Contains(s, "hood") && !strings.Contains(s, "door") {
				return "dent_hood"
			}
			return "dent_door"
		},
	},
	{
		all: []string{"seat"},
		tag: func(s string) domain.ConditionTag {
			switch {
			case strings.Contains(s, "tear"), strings.Contains(s, "rip"):
				return "seat_tear"
			case strings.Contains(s, "stain"):
				return "seat_stain"
			default:
				return "seat_wear"
			}
		},
	},
	{all: []string{"aftermarket", "wheel"}, tag: fixed("aftermarket_wheels")},
	{all: []string{"custom", "wheel"}, tag: fixed("aftermarket_wheels")},
	{all: []string{"tint"}, tag: fixed("window_tint")},
	{all: []string{"rust"}, tag: fixed("rust_spots")},
	{all: []string{"fade"}, tag: fixed("paint_fade")},
	{all: []string{"dashboard", "crack"}, tag: fixed("dashboard_crack")},
}

// Canonicalize maps a free-form issue description such as "paint scuff on
// rear bumper" to a vocabulary tag. Vocabulary tags map to themselves.
// It reports false when no rule applies.
func Canonicalize(raw string) (domain.ConditionTag, bool) {
	if tag := recon.NormalizeTag(domain.ConditionTag(strings.TrimSpace(raw))); recon.IsKnown(tag) {
		return tag, true
	}

	lower := strings.ToLower(raw)
	for _, r := range keywordRules {
		if r.matches(lower) {
			return r.tag(lower), true
		}
	}
	return "", false
}

// CanonicalizeAll canonicalizes each tag, dropping the ones no rule covers.
// Order and duplicates are preserved.
func CanonicalizeAll(tags []domain.ConditionTag) []domain.ConditionTag {
	out := make([]domain.ConditionTag, 0, len(tags))
	for _, t := range tags {
		if c, ok := Canonicalize(string(t)); ok {
			out = append(out, c)
		}
	}
	return out
}

func (r keywordRule) matches(s string) bool {
	for _, k := range r.all {
		if !strings.Contains(s, k) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, k := range r.any {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
