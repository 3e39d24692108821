// Package places fetches live dealer ratings and reviews from the Google
// Places Details API.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const detailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

// detailsFields is the field mask requested from the Details API.
const detailsFields = "name,rating,user_ratings_total,reviews"

// Review is one review returned by the Details API.
type Review struct {
	Text string `json:"text"`
	Time int64  `json:"time"`
}

// DealerDetails is the live snapshot of a dealer's rating and reviews.
type DealerDetails struct {
	Name         string
	Rating       float64
	TotalReviews int
	Reviews      []Review
}

// ErrNoResults indicates the API answered but carried no result for the
// place. Callers report it per record rather than aborting a batch.
var ErrNoResults = eris.New("places: no results")

// StatusError reports a non-2xx HTTP response from the Details API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("places: google returned status %d", e.Code)
}

// Client fetches dealer details by place ID.
type Client interface {
	Details(ctx context.Context, placeID string) (*DealerDetails, error)
}

// Option configures the places client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit on outbound calls.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

type client struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a places Client using the given Google API key.
func NewClient(apiKey string, opts ...Option) Client {
	c := &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(10, 10),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type detailsResponse struct {
	Result *struct {
		Name             string   `json:"name"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Reviews          []Review `json:"reviews"`
	} `json:"result"`
	Status string `json:"status"`
}

// Details fetches the live rating, review count, and review list for a
// place. One attempt, no retries.
func (c *client) Details(ctx context.Context, placeID string) (*DealerDetails, error) {
	if c.apiKey == "" {
		return nil, eris.New("places: api key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "places: rate limit")
	}

	params := url.Values{
		"place_id": {placeID},
		"fields":   {detailsFields},
		"key":      {c.apiKey},
	}

	reqURL := detailsURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "places: build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "places: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "places: read body")
	}

	var details detailsResponse
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, eris.Wrap(err, "places: parse response")
	}

	if details.Result == nil || (details.Result.Name == "" && details.Result.Rating == 0 && len(details.Result.Reviews) == 0) {
		return nil, ErrNoResults
	}

	return &DealerDetails{
		Name:         details.Result.Name,
		Rating:       details.Result.Rating,
		TotalReviews: details.Result.UserRatingsTotal,
		Reviews:      details.Result.Reviews,
	}, nil
}
