package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/dealer-insights/internal/report"
)

var dealersFilter filterFlags

var dealersCmd = &cobra.Command{
	Use:   "dealers",
	Short: "List dealers matching the filter criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := dealersFilter.criteria()
		if err != nil {
			return err
		}

		dealers, err := loadDealers()
		if err != nil {
			return err
		}

		filtered := report.Filter(dealers, criteria)
		cmd.Print(report.FormatDealers(filtered))
		return nil
	},
}

func init() {
	dealersFilter.register(dealersCmd)
	rootCmd.AddCommand(dealersCmd)
}
