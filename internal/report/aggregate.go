package report

import (
	"sort"
	"time"

	"github.com/sells-group/dealer-insights/internal/model"
)

// Count returns the number of dealers in the sequence.
func Count(dealers []model.Dealer) int {
	return len(dealers)
}

// AverageRating returns the arithmetic mean of dealer ratings. The second
// return value is false for an empty sequence; callers must handle it.
func AverageRating(dealers []model.Dealer) (float64, bool) {
	if len(dealers) == 0 {
		return 0, false
	}
	var sum float64
	for _, d := range dealers {
		sum += d.Rating
	}
	return sum / float64(len(dealers)), true
}

// SumReviews returns the total review count across all dealers.
func SumReviews(dealers []model.Dealer) int {
	var sum int
	for _, d := range dealers {
		sum += d.TotalReviews
	}
	return sum
}

// RatingDistribution counts dealers per distinct rating value, sorted
// ascending by rating.
func RatingDistribution(dealers []model.Dealer) []model.RatingCount {
	counts := make(map[float64]int)
	for _, d := range dealers {
		counts[d.Rating]++
	}

	dist := make([]model.RatingCount, 0, len(counts))
	for rating, count := range counts {
		dist = append(dist, model.RatingCount{Rating: rating, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool {
		return dist[i].Rating < dist[j].Rating
	})
	return dist
}

// ReviewTrend flattens every dealer's review timestamps into (year, month)
// buckets, sorted chronologically. Timestamps are interpreted as unix
// seconds in UTC; out-of-range values land in whatever bucket the calendar
// conversion yields.
func ReviewTrend(dealers []model.Dealer) []model.TrendPoint {
	counts := make(map[[2]int]int)
	for _, d := range dealers {
		for _, ts := range d.ReviewTimes() {
			t := time.Unix(ts, 0).UTC()
			counts[[2]int{t.Year(), int(t.Month())}]++
		}
	}

	trend := make([]model.TrendPoint, 0, len(counts))
	for key, count := range counts {
		trend = append(trend, model.TrendPoint{Year: key[0], Month: key[1], Count: count})
	}
	sort.Slice(trend, func(i, j int) bool {
		if trend[i].Year != trend[j].Year {
			return trend[i].Year < trend[j].Year
		}
		return trend[i].Month < trend[j].Month
	})
	return trend
}
