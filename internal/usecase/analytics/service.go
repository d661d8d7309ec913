// Package analytics synthesizes the dashboard metric series: a bounded
// random walk per metric plus derived category breakdowns and an
// activity heatmap.
package analytics

import (
	"context"
	"math"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain"
	"github.com/deskhub-cloud/deskhub/internal/domain/analytics"
)

// Seed and step bands of the random walk. Values start inside the seed
// band and drift by one step per day, clamped to the domain bands.
const (
	seedDocumentsMin = 800
	seedDocumentsMax = 1200
	seedAIOpsMin     = 2500
	seedAIOpsMax     = 4200
	seedHoursMin     = 80
	seedHoursMax     = 180
	seedAccuracyMin  = 90.0
	seedAccuracyMax  = 96.0

	stepDocumentsMin = -40
	stepDocumentsMax = 60
	stepAIOpsMin     = -120
	stepAIOpsMax     = 180
	stepHoursMin     = -6
	stepHoursMax     = 10
	stepAccuracyMin  = -1.0
	stepAccuracyMax  = 2.0
)

// Service synthesizes analytics datasets.
type Service struct {
	rnd domain.Rand
	now func() time.Time
}

// New creates an analytics service.
func New(rnd domain.Rand) *Service {
	return &Service{rnd: rnd, now: time.Now}
}

// WithClock returns a copy using the given clock. For tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now
	return &c
}

// Generate synthesizes the full dataset for a period of days. The series
// runs oldest to newest; the last point is today.
func (s *Service) Generate(_ context.Context, days int) (analytics.Dataset, error) {
	period, err := analytics.ParsePeriod(days)
	if err != nil {
		return analytics.Dataset{}, err
	}

	points := s.walk(period)

	ds := analytics.Dataset{Points: points}
	ds.ByTask, ds.Sources = s.breakdowns(&ds)
	ds.Heatmap = s.heatmap()
	return ds, nil
}

// walk runs the bounded random walk: seed each metric, then drift one
// step per day inside its clamp band.
func (s *Service) walk(period analytics.Period) []analytics.Point {
	docs := domain.IntBetween(s.rnd, seedDocumentsMin, seedDocumentsMax)
	ops := domain.IntBetween(s.rnd, seedAIOpsMin, seedAIOpsMax)
	hours := domain.IntBetween(s.rnd, seedHoursMin, seedHoursMax)
	acc := domain.FloatBetween(s.rnd, seedAccuracyMin, seedAccuracyMax)

	today := startOfDay(s.now())
	points := make([]analytics.Point, 0, period.Days())

	for i := period.Days() - 1; i >= 0; i-- {
		points = append(points, analytics.Point{
			Date:           today.AddDate(0, 0, -i),
			Documents:      docs,
			AIOps:          ops,
			TimeSavedHours: hours,
			Accuracy:       round1(acc),
		})

		docs = clampInt(docs+domain.IntBetween(s.rnd, stepDocumentsMin, stepDocumentsMax),
			analytics.MinDocuments, analytics.MaxDocuments)
		ops = clampInt(ops+domain.IntBetween(s.rnd, stepAIOpsMin, stepAIOpsMax),
			analytics.MinAIOps, analytics.MaxAIOps)
		hours = clampInt(hours+domain.IntBetween(s.rnd, stepHoursMin, stepHoursMax),
			analytics.MinHours, analytics.MaxHours)
		acc = clampFloat(acc+domain.FloatBetween(s.rnd, stepAccuracyMin, stepAccuracyMax),
			analytics.MinAccuracy, analytics.MaxAccuracy)
	}

	return points
}

// breakdowns derives the task and source splits from the series totals.
func (s *Service) breakdowns(ds *analytics.Dataset) (byTask, sources []analytics.CategoryValue) {
	totalDocs := float64(ds.TotalDocuments())
	totalOps := float64(ds.TotalAIOps())

	byTask = []analytics.CategoryValue{
		{Name: "Анализ документов", Value: roundInt(totalDocs * 0.35)},
		{Name: "Обработка изображений", Value: roundInt(totalOps * 0.25)},
		{Name: "Переводы", Value: roundInt(totalOps * 0.2)},
		{Name: "Генерация контента", Value: roundInt(totalOps * 0.2)},
	}
	sources = []analytics.CategoryValue{
		{Name: "Загрузки", Value: roundInt(totalDocs * 0.4)},
		{Name: "Интеграции", Value: roundInt(totalDocs * 0.35)},
		{Name: "Email", Value: roundInt(totalDocs * 0.15)},
		{Name: "Другое", Value: roundInt(totalDocs * 0.1)},
	}
	return byTask, sources
}

// heatmap samples activity for every weekday across office hours.
func (s *Service) heatmap() []analytics.HeatmapCell {
	hoursPerDay := analytics.HeatmapLastHour - analytics.HeatmapFirstHour + 1
	cells := make([]analytics.HeatmapCell, 0, 7*hoursPerDay)
	for day := 0; day < 7; day++ {
		for hour := analytics.HeatmapFirstHour; hour <= analytics.HeatmapLastHour; hour++ {
			cells = append(cells, analytics.HeatmapCell{
				Day:   day,
				Hour:  hour,
				Value: s.rnd.IntN(analytics.HeatmapMaxValue + 1),
			})
		}
	}
	return cells
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
