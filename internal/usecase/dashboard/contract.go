package dashboard

import (
	"context"

	"github.com/deskhub-cloud/deskhub/internal/domain"
	"github.com/deskhub-cloud/deskhub/internal/domain/analytics"
	"github.com/deskhub-cloud/deskhub/internal/domain/currency"
	domdash "github.com/deskhub-cloud/deskhub/internal/domain/dashboard"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
)

// Catalog supplies the demo data the dashboard renders directly.
type Catalog interface {
	Candidates(ctx context.Context) ([]candidate.Candidate, error)
	Weather(ctx context.Context, rnd domain.Rand) (domdash.Weather, error)
	Events(ctx context.Context) ([]domdash.Event, error)
}

// RateProvider supplies the current rate table.
type RateProvider interface {
	Rates(ctx context.Context) (currency.Table, error)
}

// MetricsProvider synthesizes the analytics series backing the
// headline stats.
type MetricsProvider interface {
	Generate(ctx context.Context, days int) (analytics.Dataset, error)
}
