// Package refresh pulls live ratings and reviews for dealers that carry a
// place ID, reporting per-dealer status instead of failing the batch.
package refresh

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/dealer-insights/internal/model"
	"github.com/sells-group/dealer-insights/pkg/places"
)

// Status strings reported per dealer.
const (
	StatusUpdated   = "Updated"
	StatusNoPlaceID = "Failed: No Place ID"
	StatusNoResults = "Failed: No Results"
)

// Result pairs a dealer name with the outcome of its refresh.
type Result struct {
	Dealer string `json:"dealer"`
	Status string `json:"status"`
}

// defaultConcurrency bounds simultaneous Details calls.
const defaultConcurrency = 4

// Run refreshes every dealer in place from the live API. Each dealer is
// attempted exactly once; failures are recorded in the returned results
// and never abort the batch. Results are indexed like the input.
func Run(ctx context.Context, dealers []model.Dealer, client places.Client) []Result {
	log := zap.L().With(zap.String("component", "refresh"))

	results := make([]Result, len(dealers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)

	for i := range dealers {
		g.Go(func() error {
			d := &dealers[i]
			results[i] = Result{Dealer: d.Name, Status: refreshOne(ctx, d, client)}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures are per-record

	var updated int
	for _, r := range results {
		if r.Status == StatusUpdated {
			updated++
		}
	}
	log.Info("live refresh complete",
		zap.Int("dealers", len(dealers)),
		zap.Int("updated", updated),
	)
	return results
}

func refreshOne(ctx context.Context, d *model.Dealer, client places.Client) string {
	if d.PlaceID == "" {
		return StatusNoPlaceID
	}

	details, err := client.Details(ctx, d.PlaceID)
	if err != nil {
		var statusErr *places.StatusError
		switch {
		case errors.Is(err, places.ErrNoResults):
			return StatusNoResults
		case errors.As(err, &statusErr):
			return fmt.Sprintf("Failed: %d", statusErr.Code)
		default:
			zap.L().Warn("refresh failed",
				zap.String("dealer", d.Name),
				zap.Error(err),
			)
			return fmt.Sprintf("Failed: %v", err)
		}
	}

	d.Rating = details.Rating
	d.TotalReviews = details.TotalReviews
	d.Reviews = d.Reviews[:0]
	for _, r := range details.Reviews {
		d.Reviews = append(d.Reviews, model.Review{Text: r.Text, Time: r.Time})
	}
	return StatusUpdated
}
