package cmd

import (
	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/trade-appraiser/internal/api/client"
)

func offerCmd() *cobra.Command {
	offerRoot := &cobra.Command{
		Use:   "offer",
		Short: "Build and position trade-in offers",
	}

	offerRoot.AddCommand(
		offerScenariosCmd(),
		offerPositionCmd(),
	)

	return offerRoot
}

func offerScenariosCmd() *cobra.Command {
	var req apiclient.ScenariosRequest

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Compute aggressive, balanced and conservative offers",
		Long: "Computes three offer scenarios from the market average, the KBB\n" +
			"instant offer and the net reconditioning adjustment.",
		Example: `  ta offer scenarios --market 25000 --kbb 23800 --recon 400 --aftermarket 800`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newClient().Scenarios(cmd.Context(), &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			return printScenarios(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().Float64Var(&req.MarketAvgPrice, "market", 0, "market average price")
	cmd.Flags().Float64Var(&req.KBBInstantOffer, "kbb", 0, "KBB instant offer")
	cmd.Flags().Float64Var(&req.ReconCost, "recon", 0, "total reconditioning cost")
	cmd.Flags().Float64Var(&req.AftermarketValue, "aftermarket", 0, "aftermarket value added")
	cobra.CheckErr(cmd.MarkFlagRequired("market"))
	cobra.CheckErr(cmd.MarkFlagRequired("kbb"))

	return cmd
}

func offerPositionCmd() *cobra.Command {
	var req apiclient.PositionRequest

	cmd := &cobra.Command{
		Use:     "position",
		Short:   "Classify an offer against KBB and the market average",
		Example: `  ta offer position --offer 24500 --kbb 23800 --market 25000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newClient().Position(cmd.Context(), &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printPosition(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().Float64Var(&req.OurOffer, "offer", 0, "our offer price")
	cmd.Flags().Float64Var(&req.KBBInstantOffer, "kbb", 0, "KBB instant offer")
	cmd.Flags().Float64Var(&req.MarketAvg, "market", 0, "market average price")
	cobra.CheckErr(cmd.MarkFlagRequired("offer"))
	cobra.CheckErr(cmd.MarkFlagRequired("kbb"))
	cobra.CheckErr(cmd.MarkFlagRequired("market"))

	return cmd
}
