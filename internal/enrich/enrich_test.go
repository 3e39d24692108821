package enrich

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/dealer-insights/internal/model"
	"github.com/sells-group/dealer-insights/pkg/geocode"
)

// mapClient resolves from a fixed table; unknown codes are unmatched.
type mapClient struct {
	coords map[string][2]float64
	errs   map[string]error
	calls  int
}

func (m *mapClient) Resolve(_ context.Context, postalCode string) (*geocode.Result, error) {
	m.calls++
	if err, ok := m.errs[postalCode]; ok {
		return nil, err
	}
	if c, ok := m.coords[postalCode]; ok {
		return &geocode.Result{Latitude: c[0], Longitude: c[1], Matched: true}, nil
	}
	return &geocode.Result{Matched: false}, nil
}

func TestBackfill(t *testing.T) {
	lat, lng := 49.28, -123.12
	dealers := []model.Dealer{
		{Name: "needs lookup", PostalCode: "M5V 3L9"},
		{Name: "already located", PostalCode: "V6B 1A1", Latitude: &lat, Longitude: &lng},
		{Name: "bad code", PostalCode: "ZZZ"},
		{Name: "upstream error", PostalCode: "ERR"},
	}

	client := &mapClient{
		coords: map[string][2]float64{"M5V 3L9": {43.64, -79.38}},
		errs:   map[string]error{"ERR": eris.New("geocode: request")},
	}

	stats := Backfill(context.Background(), dealers, client)

	assert.Equal(t, Stats{Resolved: 1, Unmatched: 1, Failed: 1, Skipped: 1}, stats)
	assert.Equal(t, 3, client.calls)

	require.True(t, dealers[0].HasCoordinates())
	assert.InDelta(t, 43.64, *dealers[0].Latitude, 0.0001)
	assert.InDelta(t, -79.38, *dealers[0].Longitude, 0.0001)

	// Pre-located dealer is untouched.
	assert.Equal(t, 49.28, *dealers[1].Latitude)
	// Failures leave coordinates unset rather than aborting the pass.
	assert.False(t, dealers[2].HasCoordinates())
	assert.False(t, dealers[3].HasCoordinates())
}

func TestBackfill_EmptyDataset(t *testing.T) {
	client := &mapClient{}
	stats := Backfill(context.Background(), nil, client)
	assert.Zero(t, stats)
	assert.Zero(t, client.calls)
}
