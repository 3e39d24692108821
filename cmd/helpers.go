package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/dealer-insights/internal/dataset"
	"github.com/sells-group/dealer-insights/internal/model"
	"github.com/sells-group/dealer-insights/pkg/geocode"
	"github.com/sells-group/dealer-insights/pkg/places"
)

// filterFlags carries the shared filter criteria flags.
type filterFlags struct {
	start     string
	end       string
	provinces []string
	minRating float64
	maxRating float64
	dealer    string
}

// register adds the filter flags to a command.
func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&f.provinces, "province", nil, "provinces to include (default all)")
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 1.0, "minimum rating (inclusive)")
	cmd.Flags().Float64Var(&f.maxRating, "max-rating", 5.0, "maximum rating (inclusive)")
	cmd.Flags().StringVar(&f.dealer, "dealer", model.AllDealers, "dealer name (exact match)")
}

// criteria parses the flags into FilterCriteria.
func (f *filterFlags) criteria() (model.FilterCriteria, error) {
	c := model.FilterCriteria{
		Provinces: f.provinces,
		MinRating: f.minRating,
		MaxRating: f.maxRating,
		Dealer:    f.dealer,
	}

	if f.start != "" {
		t, err := time.Parse("2006-01-02", f.start)
		if err != nil {
			return c, eris.Wrapf(err, "parse --start %q", f.start)
		}
		c.StartDate = t
	}
	if f.end != "" {
		t, err := time.Parse("2006-01-02", f.end)
		if err != nil {
			return c, eris.Wrapf(err, "parse --end %q", f.end)
		}
		c.EndDate = t
	}
	return c, nil
}

// loadDealers reads the configured dataset. A missing file is fatal for
// every command.
func loadDealers() ([]model.Dealer, error) {
	return dataset.Load(cfg.Dataset.Path)
}

// newGeocoder builds the memoizing geocoding client from config.
func newGeocoder() geocode.Client {
	inner := geocode.NewClient(cfg.Google.APIKey,
		geocode.WithRateLimit(cfg.Geocode.RateLimit),
	)
	return geocode.NewCache(inner,
		cfg.Geocode.CacheSize,
		time.Duration(cfg.Geocode.CacheTTLSec)*time.Second,
	)
}

// newPlacesClient builds the live-refresh client from config.
func newPlacesClient() places.Client {
	return places.NewClient(cfg.Google.APIKey,
		places.WithRateLimit(cfg.Refresh.RateLimit),
	)
}
