// Package analytics defines the synthesized dashboard metrics: a bounded
// random-walk time series plus derived aggregate breakdowns.
package analytics

import (
	"fmt"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain"
)

// Period is the requested series length in days.
type Period int

// Supported periods.
const (
	Period7  Period = 7
	Period14 Period = 14
	Period30 Period = 30
)

// IsValid reports whether the period is supported.
func (p Period) IsValid() bool {
	return p == Period7 || p == Period14 || p == Period30
}

// Days returns the period length as int.
func (p Period) Days() int { return int(p) }

// ParsePeriod validates a raw day count.
func ParsePeriod(days int) (Period, error) {
	p := Period(days)
	if !p.IsValid() {
		return 0, fmt.Errorf("%w: %d days (want 7, 14 or 30)", domain.ErrInvalidPeriod, days)
	}
	return p, nil
}

// Clamp bands. No synthesized value may leave its band regardless of
// cumulative drift.
const (
	MinDocuments = 500
	MaxDocuments = 5000
	MinAIOps     = 800
	MaxAIOps     = 12000
	MinHours     = 20
	MaxHours     = 600
	MinAccuracy  = 80.0
	MaxAccuracy  = 100.0
)

// Heatmap geometry: office hours across a full week.
const (
	HeatmapFirstHour = 8
	HeatmapLastHour  = 20
	HeatmapMaxValue  = 8
)

// Point is one day of metrics.
type Point struct {
	Date           time.Time
	Documents      int
	AIOps          int
	TimeSavedHours int
	Accuracy       float64 // percent, one decimal
}

// InBounds reports whether every metric sits inside its clamp band.
func (p Point) InBounds() bool {
	return p.Documents >= MinDocuments && p.Documents <= MaxDocuments &&
		p.AIOps >= MinAIOps && p.AIOps <= MaxAIOps &&
		p.TimeSavedHours >= MinHours && p.TimeSavedHours <= MaxHours &&
		p.Accuracy >= MinAccuracy && p.Accuracy <= MaxAccuracy
}

// CategoryValue is one named slice of an aggregate breakdown.
type CategoryValue struct {
	Name  string
	Value int
}

// HeatmapCell is one hour x weekday activity sample. Day is 0..6, Hour
// is HeatmapFirstHour..HeatmapLastHour.
type HeatmapCell struct {
	Day   int
	Hour  int
	Value int
}

// Dataset is the full synthesized result: the series oldest->newest plus
// three derived breakdowns.
type Dataset struct {
	Points  []Point
	ByTask  []CategoryValue
	Sources []CategoryValue
	Heatmap []HeatmapCell
}

// Last returns the most recent point and false when the series is empty.
func (d *Dataset) Last() (Point, bool) {
	if len(d.Points) == 0 {
		return Point{}, false
	}
	return d.Points[len(d.Points)-1], true
}

// TotalDocuments sums documents across the series.
func (d *Dataset) TotalDocuments() int {
	total := 0
	for _, p := range d.Points {
		total += p.Documents
	}
	return total
}

// TotalAIOps sums AI operations across the series.
func (d *Dataset) TotalAIOps() int {
	total := 0
	for _, p := range d.Points {
		total += p.AIOps
	}
	return total
}
