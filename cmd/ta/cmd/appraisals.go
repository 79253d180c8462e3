package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/trade-appraiser/internal/api/client"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

func appraisalsCmd() *cobra.Command {
	appraisalsRoot := &cobra.Command{
		Use:   "appraisals",
		Short: "Query stored appraisals",
	}

	appraisalsRoot.AddCommand(
		appraisalsListCmd(),
		appraisalsGetCmd(),
	)

	return appraisalsRoot
}

func appraisalsListCmd() *cobra.Command {
	var (
		params apiclient.ListAppraisalsParams
		since  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appraisals with optional filters",
		Long: "List stored appraisals with optional filters for competitive position,\n" +
			"VIN, offer range and age.",
		Example: `  # Most recent appraisals
  ta appraisals list

  # Below-market offers from the last week
  ta appraisals list --position "Below Market" --since 168h

  # Highest offers first
  ta appraisals list --order-by recommended_offer --limit 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if params.Position != "" && !validPosition(params.Position) {
				return fmt.Errorf("invalid --position %q (want one of: %s)", params.Position, positionChoices())
			}
			if since > 0 {
				params.Since = time.Now().Add(-since)
			}

			resp, err := newClient().ListAppraisals(cmd.Context(), &params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}

			if len(resp.Appraisals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No appraisals found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d appraisals\n\n", len(resp.Appraisals), resp.Total)
			return printAppraisalsTable(cmd.OutOrStdout(), resp.Appraisals)
		},
	}
	cmd.Flags().StringVar(&params.Position, "position", "", "competitive position filter")
	cmd.Flags().StringVar(&params.VIN, "vin", "", "VIN filter")
	cmd.Flags().Float64Var(&params.MinOffer, "min-offer", 0, "minimum recommended offer")
	cmd.Flags().Float64Var(&params.MaxOffer, "max-offer", 0, "maximum recommended offer")
	cmd.Flags().DurationVar(&since, "since", 0, "only appraisals newer than this (e.g. 24h)")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort order (created_at, recommended_offer)")

	return cmd
}

func appraisalsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show appraisal details",
		Example: `  ta appraisals get 3f2a9c1e-5b7d-4e8f-9a0b-1c2d3e4f5a6b`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newClient().GetAppraisal(cmd.Context(), args[0])
			if err != nil {
				if apiclient.IsNotFound(err) {
					return fmt.Errorf("appraisal %s not found", args[0])
				}
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), a)
			}
			return printAppraisalDetail(cmd.OutOrStdout(), a)
		},
	}
}

// positionFlagValues lists the accepted --position values.
var positionFlagValues = []domain.CompetitivePosition{
	domain.PositionHighlyCompetitive,
	domain.PositionCompetitive,
	domain.PositionMarketRate,
	domain.PositionBelowMarket,
}

func validPosition(s string) bool {
	for _, p := range positionFlagValues {
		if string(p) == s {
			return true
		}
	}
	return false
}

func positionChoices() string {
	ss := make([]string, len(positionFlagValues))
	for i, p := range positionFlagValues {
		ss[i] = string(p)
	}
	return strings.Join(ss, ", ")
}
