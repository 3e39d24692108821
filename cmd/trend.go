package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/dealer-insights/internal/report"
)

var trendFilter filterFlags

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Monthly review counts over time",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := trendFilter.criteria()
		if err != nil {
			return err
		}

		dealers, err := loadDealers()
		if err != nil {
			return err
		}

		filtered := report.Filter(dealers, criteria)
		cmd.Print(report.FormatTrend(filtered))
		return nil
	},
}

func init() {
	trendFilter.register(trendCmd)
	rootCmd.AddCommand(trendCmd)
}
