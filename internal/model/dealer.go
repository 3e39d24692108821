// Package model defines the dealer dataset types shared across the
// reporting pipeline.
package model

// AllDealers is the sentinel dealer name meaning "no dealer filter".
const AllDealers = "All Dealers"

// UnknownProvince is the default province for records missing one.
const UnknownProvince = "Unknown"

// Review is a single customer review attached to a dealer.
type Review struct {
	Text string `json:"text"`
	Time int64  `json:"time"`
}

// Dealer is one sales outlet with its rating, review history, and location.
// Latitude and Longitude are either both set or both nil; they may be filled
// in exactly once by the enrichment pass if absent at load.
type Dealer struct {
	Name         string   `json:"actual_name"`
	Rating       float64  `json:"overall_rating"`
	TotalReviews int      `json:"total_reviews"`
	Province     string   `json:"province"`
	PostalCode   string   `json:"postal_code"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Reviews      []Review `json:"reviews,omitempty"`
	PlaceID      string   `json:"place_id,omitempty"`
}

// HasCoordinates reports whether the dealer has a resolved location.
func (d *Dealer) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// SetCoordinates fills in the dealer's location. Intended to be called at
// most once, by the enrichment pass, for dealers loaded without coordinates.
func (d *Dealer) SetCoordinates(lat, lng float64) {
	d.Latitude = &lat
	d.Longitude = &lng
}

// ReviewTexts returns the raw review texts in original order.
func (d *Dealer) ReviewTexts() []string {
	if len(d.Reviews) == 0 {
		return nil
	}
	texts := make([]string, 0, len(d.Reviews))
	for _, r := range d.Reviews {
		texts = append(texts, r.Text)
	}
	return texts
}

// ReviewTimes returns the unix timestamps of the dealer's reviews in
// original order.
func (d *Dealer) ReviewTimes() []int64 {
	if len(d.Reviews) == 0 {
		return nil
	}
	times := make([]int64, 0, len(d.Reviews))
	for _, r := range d.Reviews {
		times = append(times, r.Time)
	}
	return times
}
