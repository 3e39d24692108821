package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/dealer-insights/internal/report"
)

var overviewFilter filterFlags

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "National overview: dealer count, average rating, review totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := overviewFilter.criteria()
		if err != nil {
			return err
		}

		dealers, err := loadDealers()
		if err != nil {
			return err
		}

		filtered := report.Filter(dealers, criteria)
		cmd.Print(report.FormatOverview(filtered))
		return nil
	},
}

func init() {
	overviewFilter.register(overviewCmd)
	rootCmd.AddCommand(overviewCmd)
}
