package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/dealer-insights/internal/model"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dealers_data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDataset(t, `[
		{
			"actual_name": "Maple Leaf Motors",
			"overall_rating": 3.5,
			"total_reviews": 120,
			"province": "ON",
			"postal_code": "M5V 3L9",
			"reviews": [{"text": "Great service", "time": 1642204800}],
			"place_id": "place-123"
		},
		{
			"actual_name": "Pacific Auto Group",
			"overall_rating": 4.8,
			"total_reviews": 340,
			"province": "BC",
			"latitude": 49.2827,
			"longitude": -123.1207
		}
	]`)

	dealers, err := Load(path)
	require.NoError(t, err)
	require.Len(t, dealers, 2)

	first := dealers[0]
	assert.Equal(t, "Maple Leaf Motors", first.Name)
	assert.InDelta(t, 3.5, first.Rating, 0.0001)
	assert.Equal(t, 120, first.TotalReviews)
	assert.Equal(t, "ON", first.Province)
	assert.Equal(t, "M5V 3L9", first.PostalCode)
	assert.False(t, first.HasCoordinates())
	require.Len(t, first.Reviews, 1)
	assert.Equal(t, model.Review{Text: "Great service", Time: 1642204800}, first.Reviews[0])
	assert.Equal(t, "place-123", first.PlaceID)

	second := dealers[1]
	require.True(t, second.HasCoordinates())
	assert.InDelta(t, 49.2827, *second.Latitude, 0.0001)
	assert.InDelta(t, -123.1207, *second.Longitude, 0.0001)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset: open")
}

func TestLoad_MissingProvinceDefaultsToUnknown(t *testing.T) {
	path := writeDataset(t, `[{"actual_name": "Solo Dealer", "overall_rating": 4.0, "total_reviews": 5}]`)

	dealers, err := Load(path)
	require.NoError(t, err)
	require.Len(t, dealers, 1)
	assert.Equal(t, model.UnknownProvince, dealers[0].Province)
}

func TestLoad_HalfCoordinatesRejected(t *testing.T) {
	path := writeDataset(t, `[{"actual_name": "Broken", "overall_rating": 4.0, "total_reviews": 5, "latitude": 43.6}]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one of latitude/longitude")
}

func TestLoad_UnnamedDealerRejected(t *testing.T) {
	path := writeDataset(t, `[{"overall_rating": 4.0, "total_reviews": 5}]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestLoad_NotAnArray(t *testing.T) {
	path := writeDataset(t, `{"actual_name": "Maple Leaf Motors"}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected '['")
}

func TestLoad_EmptyArray(t *testing.T) {
	path := writeDataset(t, `[]`)

	dealers, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, dealers)
}
