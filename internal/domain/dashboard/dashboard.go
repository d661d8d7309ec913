// Package dashboard defines the aggregate served on the home screen.
package dashboard

import (
	"github.com/deskhub-cloud/deskhub/internal/domain/currency"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
)

// Weather is the demo weather snapshot.
type Weather struct {
	City        string
	TempC       int
	Description string
	WindKmh     int
	Humidity    int
}

// Event is one calendar entry of the day.
type Event struct {
	Time  string // HH:MM
	Title string
}

// Stats are the headline numbers, taken from the most recent analytics point.
type Stats struct {
	Documents       int
	AIOps           int
	TimeSavedHours  int
	AccuracyPercent float64
}

// Summary aggregates everything the home screen renders.
type Summary struct {
	Weather Weather
	Rates   []currency.Rate
	Events  []Event
	Items   []candidate.Candidate
	Stats   Stats
}
