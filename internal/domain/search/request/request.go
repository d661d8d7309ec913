// Package request defines the validated search query value object.
package request

import (
	"fmt"
	"strings"

	"github.com/deskhub-cloud/deskhub/internal/domain/search/filter"
)

// Pagination limits.
const (
	DefaultPageSize = 5
	MaxPageSize     = 50
	MaxQueryLength  = 1024
)

// Request is a validated search query with facets and pagination.
type Request struct {
	query    string
	filters  filter.Filters
	page     int
	pageSize int
}

// New validates and normalizes search parameters. The query is trimmed;
// an empty query matches everything. Defaults: page=1, pageSize=5.
func New(query string, filters filter.Filters, page, pageSize int) (Request, error) {
	query = strings.TrimSpace(query)
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Request{
		query:    query,
		filters:  filters,
		page:     page,
		pageSize: pageSize,
	}, nil
}

// Query returns the trimmed free-text query.
func (r *Request) Query() string { return r.query }

// Filters returns the facet filters.
func (r *Request) Filters() filter.Filters { return r.filters }

// Page returns the 1-indexed page number.
func (r *Request) Page() int { return r.page }

// PageSize returns the page size.
func (r *Request) PageSize() int { return r.pageSize }
