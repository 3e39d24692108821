package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealer_Coordinates(t *testing.T) {
	d := Dealer{Name: "Maple Leaf Motors"}
	assert.False(t, d.HasCoordinates())

	d.SetCoordinates(43.64, -79.38)
	require.True(t, d.HasCoordinates())
	assert.Equal(t, 43.64, *d.Latitude)
	assert.Equal(t, -79.38, *d.Longitude)
}

func TestDealer_ReviewAccessors(t *testing.T) {
	d := Dealer{
		Name: "Maple Leaf Motors",
		Reviews: []Review{
			{Text: "Great service", Time: 1642204800},
			{Text: "Long wait", Time: 1643673600},
		},
	}

	assert.Equal(t, []string{"Great service", "Long wait"}, d.ReviewTexts())
	assert.Equal(t, []int64{1642204800, 1643673600}, d.ReviewTimes())

	empty := Dealer{Name: "No Reviews"}
	assert.Nil(t, empty.ReviewTexts())
	assert.Nil(t, empty.ReviewTimes())
}

func TestFilterCriteria_AllowsProvince(t *testing.T) {
	c := FilterCriteria{Provinces: []string{"ON", "BC"}}
	assert.True(t, c.AllowsProvince("ON"))
	assert.False(t, c.AllowsProvince("QC"))

	// Empty set admits everything.
	assert.True(t, FilterCriteria{}.AllowsProvince("QC"))
}

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()
	assert.Equal(t, 1.0, c.MinRating)
	assert.Equal(t, 5.0, c.MaxRating)
	assert.Equal(t, AllDealers, c.Dealer)
}

func TestSentimentTally_Total(t *testing.T) {
	tally := SentimentTally{Positive: 3, Neutral: 2, Negative: 1}
	assert.Equal(t, 6, tally.Total())
	assert.Zero(t, SentimentTally{}.Total())
}
