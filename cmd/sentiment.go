package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/dealer-insights/internal/report"
	"github.com/sells-group/dealer-insights/internal/sentiment"
)

var (
	sentimentDealer  string
	sentimentSamples int
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Sentiment breakdown of a dealer's reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		if sentimentDealer == "" {
			return eris.New("--dealer is required")
		}

		dealers, err := loadDealers()
		if err != nil {
			return err
		}

		var texts []string
		for _, d := range dealers {
			if d.Name == sentimentDealer {
				texts = append(texts, d.ReviewTexts()...)
			}
		}

		classifier := sentiment.NewClassifier(nil)
		tally := classifier.Tally(texts)

		samples := texts
		if len(samples) > sentimentSamples {
			samples = samples[:sentimentSamples]
		}
		cmd.Print(report.FormatSentiment(sentimentDealer, tally, samples))
		return nil
	},
}

func init() {
	sentimentCmd.Flags().StringVar(&sentimentDealer, "dealer", "", "dealer name (exact match)")
	sentimentCmd.Flags().IntVar(&sentimentSamples, "samples", 5, "number of sample reviews to print")
	rootCmd.AddCommand(sentimentCmd)
}
