package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/dealer-insights/internal/enrich"
)

var enrichOut string

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Backfill missing dealer coordinates via geocoding",
	Long:  "Resolves coordinates for every dealer loaded without them, using the memoizing geocoder. Optionally writes the enriched snapshot back out as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dealers, err := loadDealers()
		if err != nil {
			return err
		}

		stats := enrich.Backfill(cmd.Context(), dealers, newGeocoder())

		cmd.Printf("resolved %d, unmatched %d, failed %d, skipped %d\n",
			stats.Resolved, stats.Unmatched, stats.Failed, stats.Skipped)

		if enrichOut == "" {
			return nil
		}

		data, err := json.MarshalIndent(dealers, "", "  ")
		if err != nil {
			return eris.Wrap(err, "enrich: marshal snapshot")
		}
		if err := os.WriteFile(enrichOut, data, 0o644); err != nil {
			return eris.Wrapf(err, "enrich: write %s", enrichOut)
		}
		cmd.Printf("enriched snapshot written to %s\n", enrichOut)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichOut, "out", "", "write the enriched dataset to this path")
	rootCmd.AddCommand(enrichCmd)
}
