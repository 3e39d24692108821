package model

import "time"

// FilterCriteria describes one filter invocation over the dealer dataset.
// All predicates are conjunctive. A zero MaxRating means "no rating filter".
//
// StartDate and EndDate are carried for the dashboard's date pickers but do
// not currently constrain results.
// TODO: apply StartDate/EndDate once review timestamps are denormalized
// into the per-dealer filter pass.
type FilterCriteria struct {
	StartDate time.Time
	EndDate   time.Time
	Provinces []string
	MinRating float64
	MaxRating float64
	Dealer    string
}

// DefaultCriteria returns criteria that match every dealer.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		MinRating: 1.0,
		MaxRating: 5.0,
		Dealer:    AllDealers,
	}
}

// AllowsProvince reports whether the criteria's province set admits p.
// An empty set admits every province.
func (c FilterCriteria) AllowsProvince(p string) bool {
	if len(c.Provinces) == 0 {
		return true
	}
	for _, allowed := range c.Provinces {
		if allowed == p {
			return true
		}
	}
	return false
}

// SentimentTally counts reviews per polarity bucket. Derived per request,
// never persisted.
type SentimentTally struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the number of classified reviews.
func (t SentimentTally) Total() int {
	return t.Positive + t.Neutral + t.Negative
}

// RatingCount is one bucket of the rating distribution.
type RatingCount struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// TrendPoint is one (year, month) bucket of the review trend.
type TrendPoint struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}
