package search

import (
	"context"

	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/request"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/result"
)

// Source supplies the searchable candidate set.
type Source interface {
	Candidates(ctx context.Context) ([]candidate.Candidate, error)
}

// PageCache stores assembled pages keyed by the full request. Optional.
type PageCache interface {
	Get(ctx context.Context, req *request.Request) (result.Page, bool)
	Put(ctx context.Context, req *request.Request, page result.Page)
}
