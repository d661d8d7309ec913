// Package suggest implements autocomplete over a fixed phrase catalog.
package suggest

import (
	"context"
	"fmt"
	"strings"
)

// Defaults for the dropdown size.
const (
	DefaultCount = 6
	MaxMatches   = 8
)

// Catalog supplies the ordered phrase list.
type Catalog interface {
	Suggestions(ctx context.Context) ([]string, error)
}

// Service answers autocomplete queries.
type Service struct {
	catalog Catalog
}

// New creates a suggest service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Suggest returns completions for a prefix-free substring query. An
// empty query yields the first DefaultCount phrases; otherwise every
// phrase containing the query, in catalog order, capped at MaxMatches.
func (s *Service) Suggest(ctx context.Context, query string) ([]string, error) {
	phrases, err := s.catalog.Suggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load phrase catalog: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if len(phrases) > DefaultCount {
			phrases = phrases[:DefaultCount]
		}
		return phrases, nil
	}

	matches := make([]string, 0, MaxMatches)
	for _, p := range phrases {
		if !strings.Contains(strings.ToLower(p), query) {
			continue
		}
		matches = append(matches, p)
		if len(matches) == MaxMatches {
			break
		}
	}
	return matches, nil
}
