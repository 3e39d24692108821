// Package geocode resolves postal codes to coordinates via the Google
// Geocoding API, with an optional memoizing cache wrapper.
package geocode

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client resolves a postal code to coordinates.
type Client interface {
	// Resolve looks up a single postal code. An unmatched code is not an
	// error: the returned Result has Matched=false. Errors are reserved
	// for transport and protocol failures.
	Resolve(ctx context.Context, postalCode string) (*Result, error)
}

// Result holds the geocoding output for one postal code.
type Result struct {
	Latitude  float64
	Longitude float64
	Matched   bool
}

// Option configures the geocoder.
type Option func(*geocoder)

// WithHTTPClient sets a custom HTTP client for geocoding requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(g *geocoder) {
		g.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit on outbound calls.
func WithRateLimit(rps float64) Option {
	return func(g *geocoder) {
		g.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

type geocoder struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a geocoding Client using the given Google API key.
func NewClient(apiKey string, opts ...Option) Client {
	g := &geocoder{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(10, 10),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
