package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/trade-appraiser/internal/api/client"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printBreakdown(w io.Writer, b *domain.CostBreakdown) error {
	tw := newTabWriter(w)
	tw.writef("ITEM\tAMOUNT\n")
	for _, item := range sortedKeys(b.LineItems) {
		tw.writef("%s\t%s\n", item, money(b.LineItems[item]))
	}
	tw.writef("\t\n")
	tw.writef("Total Repair Cost:\t%s\n", money(b.TotalRepairCost))
	tw.writef("Aftermarket Value:\t%s\n", money(b.AftermarketValueAdded))
	tw.writef("Net Adjustment:\t%s\n", signedMoney(b.NetAdjustment))
	tw.writef("Issues Analyzed:\t%d\n", b.IssuesAnalyzed)
	return tw.finish()
}

func printRulesTable(w io.Writer, rules []domain.CostRule) error {
	tw := newTabWriter(w)
	tw.writef("TAG\tCATEGORY\tREPAIR\tVALUE ADDED\tDESCRIPTION\n")
	for i := range rules {
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			rules[i].Tag,
			rules[i].Category,
			money(rules[i].RepairCost),
			money(rules[i].ValueAdded),
			truncate(rules[i].Description, 48),
		)
	}
	return tw.finish()
}

func printScenarios(w io.Writer, s *domain.ScenarioSet) error {
	tw := newTabWriter(w)
	tw.writef("SCENARIO\tMULTIPLIER\tOFFER\tWIN RATE\tPROFIT\tMARGIN\n")
	for _, sc := range s.All() {
		tw.writef("%s\t%.2f\t%s\t%.0f%%\t%s\t%.1f%%\n",
			sc.Label,
			sc.Multiplier,
			money(sc.OfferPrice),
			sc.WinRateEstimate*100,
			money(sc.ExpectedProfit),
			sc.ProfitMarginPct,
		)
	}
	tw.writef("\t\n")
	tw.writef("Market Avg:\t%s\n", money(s.Inputs.MarketAvgPrice))
	tw.writef("KBB Instant Offer:\t%s\n", money(s.Inputs.KBBInstantOffer))
	tw.writef("Net Recon:\t%s\n", money(s.Inputs.NetRecon))
	tw.writef("Base Offer:\t%s\n", money(s.Inputs.BaseOffer))
	return tw.finish()
}

func printPosition(w io.Writer, p *domain.PositionAnalysis) error {
	tw := newTabWriter(w)
	tw.writef("Position:\t%s\n", p.Position)
	tw.writef("Assessment:\t%s\n", p.Assessment)
	tw.writef("vs KBB:\t%s (%+.1f%%)\n", signedMoney(p.VsKBB.Difference), p.VsKBB.DifferencePct)
	tw.writef("vs Market:\t%s (%+.1f%%)\n", signedMoney(p.VsMarket.Difference), p.VsMarket.DifferencePct)
	return tw.finish()
}

func printExtract(w io.Writer, r *apiclient.ExtractResponse) error {
	tw := newTabWriter(w)
	tw.writef("Strategy:\t%s\n", r.Strategy)
	tw.writef("Tags:\t%s\n", joinTags(r.Tags))
	if len(r.CanonicalTags) > 0 {
		tw.writef("Canonical:\t%s\n", joinTags(r.CanonicalTags))
	}
	return tw.finish()
}

func printMarketSummary(w io.Writer, s *domain.MarketSummary) error {
	tw := newTabWriter(w)
	tw.writef("Average:\t%s\n", money(s.AvgPrice))
	tw.writef("Original Average:\t%s\n", money(s.OriginalAvg))
	tw.writef("Std Dev:\t%s\n", money(s.StdDev))
	tw.writef("Range:\t%s - %s\n", money(s.MinPrice), money(s.MaxPrice))
	tw.writef("Comparables:\t%d\n", s.Count)
	tw.writef("Outliers Removed:\t%d\n", s.OutliersRemoved)
	return tw.finish()
}

func printAppraisalsTable(w io.Writer, appraisals []domain.Appraisal) error {
	tw := newTabWriter(w)
	tw.writef("ID\tVIN\tOFFER\tPOSITION\tRECON\tCREATED\n")
	for i := range appraisals {
		a := &appraisals[i]
		vin := a.VIN
		if vin == "" {
			vin = "-"
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			vin,
			money(a.RecommendedOffer),
			a.Position.Position,
			money(a.Breakdown.TotalRepairCost),
			a.CreatedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printAppraisalDetail(w io.Writer, a *domain.Appraisal) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", a.ID)
	if a.VIN != "" {
		tw.writef("VIN:\t%s\n", a.VIN)
	}
	if a.ZipCode != "" {
		tw.writef("Zip:\t%s\n", a.ZipCode)
	}
	tw.writef("Created:\t%s\n", a.CreatedAt.Format(timeLayout))
	tw.writef("Tags:\t%s (%s)\n", joinTags(a.Tags), a.ExtractionStrategy)
	tw.writef("Recon Cost:\t%s\n", money(a.Breakdown.TotalRepairCost))
	tw.writef("Aftermarket Value:\t%s\n", money(a.Breakdown.AftermarketValueAdded))
	if a.MarketSummary != nil {
		tw.writef("Market Avg:\t%s (%d comparables, %d outliers removed)\n",
			money(a.MarketSummary.AvgPrice), a.MarketSummary.Count, a.MarketSummary.OutliersRemoved)
	} else {
		tw.writef("Market Avg:\t%s\n", money(a.Scenarios.Inputs.MarketAvgPrice))
	}
	tw.writef("Recommended Offer:\t%s\n", money(a.RecommendedOffer))
	tw.writef("Position:\t%s\n", a.Position.Position)
	tw.writef("Assessment:\t%s\n", a.Position.Assessment)
	if err := tw.finish(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return printScenarios(w, &a.Scenarios)
}

func printBatchTable(w io.Writer, resp *apiclient.BatchResponse) error {
	tw := newTabWriter(w)
	tw.writef("#\tID\tOFFER\tPOSITION\tERROR\n")
	for i, item := range resp.Results {
		if item.Appraisal == nil {
			tw.writef("%d\t-\t-\t-\t%s\n", i+1, truncate(item.Error, 60))
			continue
		}
		tw.writef("%d\t%s\t%s\t%s\t\n",
			i+1,
			item.Appraisal.ID,
			money(item.Appraisal.RecommendedOffer),
			item.Appraisal.Position.Position,
		)
	}
	tw.writef("\t\n")
	tw.writef("Succeeded:\t%d\n", resp.Succeeded)
	tw.writef("Failed:\t%d\n", resp.Failed)
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func signedMoney(v float64) string {
	if v < 0 {
		return "-" + money(-v)
	}
	return "+" + money(v)
}

func joinTags(tags []domain.ConditionTag) string {
	if len(tags) == 0 {
		return "(none)"
	}
	ss := make([]string, len(tags))
	for i, t := range tags {
		ss[i] = string(t)
	}
	return strings.Join(ss, ", ")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
