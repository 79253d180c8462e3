package cmd

import (
	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	var (
		file         string
		canonicalize bool
	)

	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Extract condition tags from analysis text",
		Long: "Sends analysis text to the API server, which pulls out the condition\n" +
			"tags and reports which extraction strategy matched.",
		Example: `  ta extract "ISSUE_LIST_START['curb_rash', 'seat_wear']ISSUE_LIST_END"

  # Read a long analysis from a file and map free-form issues onto known tags
  ta extract --file analysis.txt --canonicalize

  # Read from stdin
  cat analysis.txt | ta extract --file -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args, file)
			if err != nil {
				return err
			}

			resp, err := newClient().Extract(cmd.Context(), text, canonicalize)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printExtract(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file (- for stdin)")
	cmd.Flags().BoolVar(&canonicalize, "canonicalize", false, "map unknown tags onto the known vocabulary")

	return cmd
}
