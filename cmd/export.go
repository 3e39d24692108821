package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/dealer-insights/internal/report"
)

var (
	exportFilter filterFlags
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered dealers and summary metrics to XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := exportFilter.criteria()
		if err != nil {
			return err
		}

		dealers, err := loadDealers()
		if err != nil {
			return err
		}

		filtered := report.Filter(dealers, criteria)
		if err := report.WriteXLSX(exportOut, filtered); err != nil {
			return err
		}
		cmd.Printf("wrote %d dealer(s) to %s\n", len(filtered), exportOut)
		return nil
	},
}

func init() {
	exportFilter.register(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "dealers.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
