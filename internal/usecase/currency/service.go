// Package currency exposes the rate table and conversion operations.
package currency

import (
	"context"
	"fmt"

	"github.com/deskhub-cloud/deskhub/internal/domain"
	domcur "github.com/deskhub-cloud/deskhub/internal/domain/currency"
)

// RateSource supplies the current rate table.
type RateSource interface {
	Rates(ctx context.Context, rnd domain.Rand) (domcur.Table, error)
}

// Service answers rate and conversion queries.
type Service struct {
	source RateSource
	rnd    domain.Rand
}

// New creates a currency service.
func New(source RateSource, rnd domain.Rand) *Service {
	return &Service{source: source, rnd: rnd}
}

// Rates returns the current rate table.
func (s *Service) Rates(ctx context.Context) (domcur.Table, error) {
	table, err := s.source.Rates(ctx, s.rnd)
	if err != nil {
		return domcur.Table{}, fmt.Errorf("load rates: %w", err)
	}
	return table, nil
}

// Convert converts a user-typed amount between two currencies through
// the common base. Unknown codes and unparseable amounts degrade
// gracefully: the conversion is returned with Available() == false
// rather than an error.
func (s *Service) Convert(ctx context.Context, amount, from, to string) (domcur.Conversion, error) {
	table, err := s.Rates(ctx)
	if err != nil {
		return domcur.Conversion{}, err
	}
	return table.Convert(amount, from, to), nil
}
