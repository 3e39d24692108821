// Package enrich backfills missing dealer coordinates through the
// geocoding client before any reporting runs.
package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/dealer-insights/internal/model"
	"github.com/sells-group/dealer-insights/pkg/geocode"
)

// Stats summarizes one backfill pass.
type Stats struct {
	Resolved  int
	Unmatched int
	Failed    int
	Skipped   int
}

// Backfill resolves coordinates for every dealer that loaded without them,
// mutating each such dealer at most once. It runs to completion before the
// dataset is served: a lookup failure leaves the dealer without
// coordinates and the pass continues. Dealers that already have
// coordinates are skipped.
func Backfill(ctx context.Context, dealers []model.Dealer, client geocode.Client) Stats {
	log := zap.L().With(zap.String("component", "enrich"))

	var stats Stats
	for i := range dealers {
		d := &dealers[i]
		if d.HasCoordinates() {
			stats.Skipped++
			continue
		}

		result, err := client.Resolve(ctx, d.PostalCode)
		if err != nil {
			log.Warn("geocode failed",
				zap.String("dealer", d.Name),
				zap.String("postal_code", d.PostalCode),
				zap.Error(err),
			)
			stats.Failed++
			continue
		}
		if !result.Matched {
			log.Debug("postal code unmatched",
				zap.String("dealer", d.Name),
				zap.String("postal_code", d.PostalCode),
			)
			stats.Unmatched++
			continue
		}

		d.SetCoordinates(result.Latitude, result.Longitude)
		stats.Resolved++
	}

	log.Info("coordinate backfill complete",
		zap.Int("resolved", stats.Resolved),
		zap.Int("unmatched", stats.Unmatched),
		zap.Int("failed", stats.Failed),
		zap.Int("skipped", stats.Skipped),
	)
	return stats
}
