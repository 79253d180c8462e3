// Package extract recovers condition tags from free-form vehicle analysis
// text. A marker-delimited JSON block is preferred; a chain of looser
// heuristics covers text that lacks one.
package extract

import (
	"regexp"
	"strings"

	"github.com/donaldgifford/trade-appraiser/pkg/recon"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// Strategy names the rule that produced an extraction result.
type Strategy string

// Strategy constants, in the order they are attempted.
const (
	StrategyMarker     Strategy = "marker"
	StrategyAssignment Strategy = "assignment"
	StrategyJSONField  Strategy = "json_field"
	StrategySection    Strategy = "section"
	StrategyVocabulary Strategy = "vocabulary"
	StrategyNone       Strategy = "none"
)

var (
	markerPattern     = regexp.MustCompile(`(?s)ISSUE_LIST_START\s*(\[.*?\])\s*ISSUE_LIST_END`)
	assignmentPattern = regexp.MustCompile(`detected_issues\s*=\s*\[([^\]]+)\]`)
	singleQuoted      = regexp.MustCompile(`'([^']+)'`)
	jsonFieldPattern  = regexp.MustCompile(`"issues":\s*\[([^\]]+)\]`)
	doubleQuoted      = regexp.MustCompile(`"([^"]+)"`)
	sectionPattern    = regexp.MustCompile(
		`(?is)Detected Issues:(.+?)(?:⭐|💰|📊|Aftermarket Upgrades Detected|Reconditioning Cost Estimate|Overall Condition Grade)`,
	)
	snakeToken = regexp.MustCompile(`\b[a-z]+(?:_[a-z]+)+\b`)
)

type matcher struct {
	strategy Strategy
	match    func(text string) []domain.ConditionTag
}

// chain is tried in order; the first non-empty result wins.
var chain = []matcher{
	{StrategyMarker, matchMarker},
	{StrategyAssignment, matchAssignment},
	{StrategyJSONField, matchJSONField},
	{StrategySection, matchSection},
	{StrategyVocabulary, matchVocabulary},
}

// Extract returns the condition tags found in text, in the order found.
// It never fails: text with nothing recognizable yields an empty slice.
func Extract(text string) []domain.ConditionTag {
	tags, _ := ExtractWithStrategy(text)
	return tags
}

// ExtractWithStrategy is Extract that also reports which rule matched.
func ExtractWithStrategy(text string) ([]domain.ConditionTag, Strategy) {
	for _, m := range chain {
		if tags := m.match(text); len(tags) > 0 {
			return tags, m.strategy
		}
	}
	return []domain.ConditionTag{}, StrategyNone
}

// matchMarker decodes the first ISSUE_LIST_START/ISSUE_LIST_END block.
// A block that is not a JSON array of strings counts as no match.
func matchMarker(text string) []domain.ConditionTag {
	m := markerPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	tags, err := domain.DecodeTags([]byte(m[1]))
	if err != nil {
		return nil
	}
	return tags
}

func matchAssignment(text string) []domain.ConditionTag {
	return quotedList(text, assignmentPattern, singleQuoted)
}

func matchJSONField(text string) []domain.ConditionTag {
	return quotedList(text, jsonFieldPattern, doubleQuoted)
}

func quotedList(text string, list, token *regexp.Regexp) []domain.ConditionTag {
	m := list.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var tags []domain.ConditionTag
	for _, t := range token.FindAllStringSubmatch(m[1], -1) {
		tags = append(tags, domain.ConditionTag(t[1]))
	}
	return tags
}

func matchSection(text string) []domain.ConditionTag {
	m := sectionPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return domain.TagsFromStrings(snakeToken.FindAllString(m[1], -1))
}

// matchVocabulary scans for every known tag, vocabulary order, no repeats.
func matchVocabulary(text string) []domain.ConditionTag {
	lower := strings.ToLower(text)
	var tags []domain.ConditionTag
	for _, tag := range recon.Vocabulary() {
		if strings.Contains(lower, string(tag)) {
			tags = append(tags, tag)
		}
	}
	return tags
}
