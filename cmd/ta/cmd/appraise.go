package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/trade-appraiser/internal/api/client"
)

func appraiseCmd() *cobra.Command {
	var (
		req       apiclient.AppraisalRequest
		textFile  string
		compsFile string
	)

	cmd := &cobra.Command{
		Use:   "appraise",
		Short: "Appraise a trade-in and store the result",
		Long: "Runs the full appraisal pipeline on the server: tags are taken from\n" +
			"--tags or extracted from the analysis text, reconditioning is priced,\n" +
			"and the balanced offer is positioned against KBB and the market.",
		Example: `  # Extract tags from an inspection analysis
  ta appraise --vin 1HGCM82633A004352 --market 25000 --kbb 23800 --text-file analysis.txt

  # Explicit tags, market price from comparables
  ta appraise --kbb 23800 --tags scratches_bumper,seat_wear --comparables comps.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if textFile != "" {
				data, err := readInput(cmd, textFile)
				if err != nil {
					return err
				}
				req.AnalysisText = string(data)
			}
			if compsFile != "" {
				if err := readJSON(cmd, compsFile, &req.Comparables); err != nil {
					return err
				}
			}
			if req.MarketAvgPrice == 0 && len(req.Comparables) == 0 {
				return errors.New("--market or --comparables is required")
			}

			a, err := newClient().CreateAppraisal(cmd.Context(), &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), a)
			}
			return printAppraisalDetail(cmd.OutOrStdout(), a)
		},
	}
	cmd.Flags().StringVar(&req.VIN, "vin", "", "vehicle identification number")
	cmd.Flags().StringVar(&req.ZipCode, "zip", "", "zip code of the vehicle")
	cmd.Flags().StringVar(&req.AnalysisText, "text", "", "inspection analysis text")
	cmd.Flags().StringVar(&textFile, "text-file", "", "read inspection analysis from file (- for stdin)")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "explicit condition tags (skips extraction)")
	cmd.Flags().Float64Var(&req.MarketAvgPrice, "market", 0, "market average price")
	cmd.Flags().Float64Var(&req.KBBInstantOffer, "kbb", 0, "KBB instant offer")
	cmd.Flags().StringVar(&compsFile, "comparables", "", "JSON file of market comparables (- for stdin)")
	cobra.CheckErr(cmd.MarkFlagRequired("kbb"))
	cmd.MarkFlagsMutuallyExclusive("text", "text-file")

	cmd.AddCommand(appraiseBatchCmd())

	return cmd
}

func appraiseBatchCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Appraise many trade-ins from a JSON file",
		Long: "Reads a JSON array of appraisal requests and appraises them in one\n" +
			"call. Failures are reported per vehicle and do not stop the batch.",
		Example: `  ta appraise batch --file vehicles.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var reqs []apiclient.AppraisalRequest
			if err := readJSON(cmd, file, &reqs); err != nil {
				return err
			}
			if len(reqs) == 0 {
				return fmt.Errorf("no appraisal requests in %s", displayName(file))
			}

			resp, err := newClient().BatchAppraise(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printBatchTable(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file of appraisal requests (- for stdin)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}
