package cmd

import (
	"github.com/spf13/cobra"
)

func reconCmd() *cobra.Command {
	reconRoot := &cobra.Command{
		Use:   "recon",
		Short: "Price reconditioning",
		Long: "Estimate reconditioning cost from condition tags and inspect\n" +
			"the cost rule table the estimator uses.",
	}

	reconRoot.AddCommand(
		reconEstimateCmd(),
		reconRulesCmd(),
	)

	return reconRoot
}

func reconEstimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate [tag...]",
		Short: "Estimate reconditioning cost for condition tags",
		Long: "Prices each condition tag against the rule table. Unknown tags are\n" +
			"charged the default repair cost; aftermarket tags add value.",
		Example: `  ta recon estimate scratches_bumper seat_wear
  ta recon estimate window_tint --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newClient().EstimateRecon(cmd.Context(), args)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), b)
			}
			return printBreakdown(cmd.OutOrStdout(), b)
		},
	}
}

func reconRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   "List the reconditioning cost rules",
		Example: `  ta recon rules`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := newClient().Rules(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), rules)
			}
			return printRulesTable(cmd.OutOrStdout(), rules)
		},
	}
}
