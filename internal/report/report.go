package report

import (
	"fmt"
	"strings"

	"github.com/sells-group/dealer-insights/internal/model"
)

// monthNames maps month numbers to short labels for trend output.
var monthNames = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatOverview renders the national overview as a human-readable report.
func FormatOverview(dealers []model.Dealer) string {
	var b strings.Builder

	b.WriteString("# National Overview\n\n")

	fmt.Fprintf(&b, "- Total dealers: %d\n", Count(dealers))
	if avg, ok := AverageRating(dealers); ok {
		fmt.Fprintf(&b, "- Average rating: %.2f\n", avg)
	} else {
		b.WriteString("- Average rating: n/a\n")
	}
	fmt.Fprintf(&b, "- Total reviews: %d\n\n", SumReviews(dealers))

	b.WriteString("## Rating Distribution\n")
	dist := RatingDistribution(dealers)
	if len(dist) == 0 {
		b.WriteString("No dealers match the current filters.\n")
		return b.String()
	}
	for _, rc := range dist {
		fmt.Fprintf(&b, "- %.1f: %s (%d)\n", rc.Rating, strings.Repeat("█", rc.Count), rc.Count)
	}

	return b.String()
}

// FormatTrend renders the monthly review trend as a human-readable report.
func FormatTrend(dealers []model.Dealer) string {
	var b strings.Builder

	b.WriteString("# Review Trends Over Time\n\n")

	trend := ReviewTrend(dealers)
	if len(trend) == 0 {
		b.WriteString("No review trends available for the selected filters.\n")
		return b.String()
	}
	for _, p := range trend {
		fmt.Fprintf(&b, "- %d-%s: %d\n", p.Year, monthNames[p.Month], p.Count)
	}

	return b.String()
}

// FormatDealers renders the filtered dealer list as an aligned table.
func FormatDealers(dealers []model.Dealer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-40s %-10s %8s %10s\n", "Dealer", "Province", "Rating", "Reviews")
	for _, d := range dealers {
		fmt.Fprintf(&b, "%-40s %-10s %8.1f %10d\n", d.Name, d.Province, d.Rating, d.TotalReviews)
	}
	fmt.Fprintf(&b, "\n%d dealer(s)\n", len(dealers))

	return b.String()
}

// FormatSentiment renders a dealer's sentiment tally and sample reviews.
func FormatSentiment(name string, tally model.SentimentTally, samples []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sentiment: %s\n\n", name)
	fmt.Fprintf(&b, "- Positive: %d\n", tally.Positive)
	fmt.Fprintf(&b, "- Neutral:  %d\n", tally.Neutral)
	fmt.Fprintf(&b, "- Negative: %d\n", tally.Negative)

	if len(samples) > 0 {
		b.WriteString("\n## Sample Reviews\n")
		for _, s := range samples {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	return b.String()
}
