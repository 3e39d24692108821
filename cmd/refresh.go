package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/dealer-insights/internal/refresh"
)

var refreshOut string

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Pull live ratings and reviews for dealers with a place ID",
	Long:  "Fetches current rating, review count, and reviews per dealer. Failures are reported per dealer and never abort the batch.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dealers, err := loadDealers()
		if err != nil {
			return err
		}

		results := refresh.Run(cmd.Context(), dealers, newPlacesClient())
		for _, r := range results {
			cmd.Printf("%-40s %s\n", r.Dealer, r.Status)
		}

		if refreshOut == "" {
			return nil
		}

		data, err := json.MarshalIndent(dealers, "", "  ")
		if err != nil {
			return eris.Wrap(err, "refresh: marshal snapshot")
		}
		if err := os.WriteFile(refreshOut, data, 0o644); err != nil {
			return eris.Wrapf(err, "refresh: write %s", refreshOut)
		}
		cmd.Printf("refreshed snapshot written to %s\n", refreshOut)
		return nil
	},
}

func init() {
	refreshCmd.Flags().StringVar(&refreshOut, "out", "", "write the refreshed dataset to this path")
	rootCmd.AddCommand(refreshCmd)
}
