// Package dashboard assembles the home screen aggregate: weather,
// rates, calendar, highlighted records and headline stats.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/deskhub-cloud/deskhub/internal/domain"
	domdash "github.com/deskhub-cloud/deskhub/internal/domain/dashboard"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
)

// HighlightCount is how many top records the home screen shows.
const HighlightCount = 4

// statsPeriodDays is the series length backing the headline stats.
const statsPeriodDays = 7

// fallbackStats keeps the dashboard rendering when the metrics
// synthesizer is unavailable.
var fallbackStats = domdash.Stats{
	Documents:       1247,
	AIOps:           3892,
	TimeSavedHours:  156,
	AccuracyPercent: 94.5,
}

// Service assembles the dashboard summary.
type Service struct {
	catalog Catalog
	rates   RateProvider
	metrics MetricsProvider
	rnd     domain.Rand
}

// New creates a dashboard service.
func New(catalog Catalog, rates RateProvider, metrics MetricsProvider, rnd domain.Rand) *Service {
	return &Service{catalog: catalog, rates: rates, metrics: metrics, rnd: rnd}
}

// Summary builds the full aggregate. Stats degrade to a fixed fallback
// when the metrics provider fails; everything else is required.
func (s *Service) Summary(ctx context.Context) (domdash.Summary, error) {
	weather, err := s.catalog.Weather(ctx, s.rnd)
	if err != nil {
		return domdash.Summary{}, fmt.Errorf("weather: %w", err)
	}

	table, err := s.rates.Rates(ctx)
	if err != nil {
		return domdash.Summary{}, fmt.Errorf("rates: %w", err)
	}

	events, err := s.catalog.Events(ctx)
	if err != nil {
		return domdash.Summary{}, fmt.Errorf("events: %w", err)
	}

	items, err := s.highlights(ctx)
	if err != nil {
		return domdash.Summary{}, fmt.Errorf("highlights: %w", err)
	}

	return domdash.Summary{
		Weather: weather,
		Rates:   table.Rates(),
		Events:  events,
		Items:   items,
		Stats:   s.stats(ctx),
	}, nil
}

// highlights picks the top records by relevance, newest first on ties.
func (s *Service) highlights(ctx context.Context) ([]candidate.Candidate, error) {
	cands, err := s.catalog.Candidates(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Relevance() != cands[j].Relevance() {
			return cands[i].Relevance() > cands[j].Relevance()
		}
		return cands[i].Timestamp() > cands[j].Timestamp()
	})

	if len(cands) > HighlightCount {
		cands = cands[:HighlightCount]
	}
	return cands, nil
}

// stats takes the most recent point of a short series, falling back to
// fixed numbers on any failure.
func (s *Service) stats(ctx context.Context) domdash.Stats {
	ds, err := s.metrics.Generate(ctx, statsPeriodDays)
	if err != nil {
		return fallbackStats
	}
	last, ok := ds.Last()
	if !ok {
		return fallbackStats
	}
	return domdash.Stats{
		Documents:       last.Documents,
		AIOps:           last.AIOps,
		TimeSavedHours:  last.TimeSavedHours,
		AccuracyPercent: last.Accuracy,
	}
}
