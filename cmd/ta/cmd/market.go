package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

func marketCmd() *cobra.Command {
	marketRoot := &cobra.Command{
		Use:   "market",
		Short: "Analyze local market comparables",
	}

	marketRoot.AddCommand(marketSummaryCmd())

	return marketRoot
}

func marketSummaryCmd() *cobra.Command {
	var (
		file      string
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Average comparable prices after removing outliers",
		Long: "Reads a JSON array of comparables and returns the outlier-filtered\n" +
			"average used as the market price.",
		Example: `  ta market summary --file comps.json
  ta market summary --file comps.json --threshold 1.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var comps []domain.Comparable
			if err := readJSON(cmd, file, &comps); err != nil {
				return err
			}

			resp, err := newClient().SummarizeMarket(cmd.Context(), comps, threshold)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printMarketSummary(cmd.OutOrStdout(), &resp.Summary)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file of comparables (- for stdin)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "outlier cutoff in standard deviations (0 uses the server default)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}
