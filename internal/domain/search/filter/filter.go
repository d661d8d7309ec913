// Package filter defines the facet filters narrowing a search result set.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
)

// ContentType selects candidate kinds.
type ContentType string

// Content type facets.
const (
	TypeAll       ContentType = "all"
	TypeDocuments ContentType = "documents"
	TypeImages    ContentType = "images"
)

// IsValid reports whether the content type is known.
func (t ContentType) IsValid() bool {
	return t == TypeAll || t == TypeDocuments || t == TypeImages
}

// Period selects a recency window.
type Period string

// Recency facets.
const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// IsValid reports whether the period is known.
func (p Period) IsValid() bool {
	switch p {
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// AnyAuthor matches every author.
const AnyAuthor = "any"

// HighRatingThreshold is the minimum rating for the high-rating facet.
const HighRatingThreshold = 4.5

// Filters is a value object holding all facets of one query.
type Filters struct {
	contentType  ContentType
	period       Period
	author       string
	withAnalysis bool
	highRating   bool
}

// Default returns the all-pass filter set.
func Default() Filters {
	return Filters{contentType: TypeAll, period: PeriodAll, author: AnyAuthor}
}

// New validates and creates a filter set. Empty contentType/period/author
// fall back to their all-pass values.
func New(contentType ContentType, period Period, author string, withAnalysis, highRating bool) (Filters, error) {
	if contentType == "" {
		contentType = TypeAll
	}
	if !contentType.IsValid() {
		return Filters{}, fmt.Errorf("invalid content type: %q", contentType)
	}
	if period == "" {
		period = PeriodAll
	}
	if !period.IsValid() {
		return Filters{}, fmt.Errorf("invalid period: %q", period)
	}
	if author == "" {
		author = AnyAuthor
	}
	return Filters{
		contentType:  contentType,
		period:       period,
		author:       author,
		withAnalysis: withAnalysis,
		highRating:   highRating,
	}, nil
}

// ContentType returns the kind facet.
func (f Filters) ContentType() ContentType { return f.contentType }

// Period returns the recency facet.
func (f Filters) Period() Period { return f.period }

// Author returns the author facet (AnyAuthor when unset).
func (f Filters) Author() string { return f.author }

// WithAnalysis reports whether only AI-analyzed records pass.
func (f Filters) WithAnalysis() bool { return f.withAnalysis }

// HighRating reports whether only records rated >= 4.5 pass.
func (f Filters) HighRating() bool { return f.highRating }

// Matches applies every active facet as an independent AND condition.
func (f Filters) Matches(c *candidate.Candidate, now time.Time) bool {
	switch f.contentType {
	case TypeDocuments:
		if c.Kind() != candidate.Document {
			return false
		}
	case TypeImages:
		if c.Kind() != candidate.Image {
			return false
		}
	}

	if f.author != AnyAuthor && !strings.EqualFold(c.Author(), f.author) {
		return false
	}

	if f.withAnalysis && !c.AIAnalyzed() {
		return false
	}

	if f.highRating && c.Rating() < HighRatingThreshold {
		return false
	}

	if f.period != PeriodAll && c.Timestamp() < f.periodStart(now).UnixMilli() {
		return false
	}

	return true
}

// periodStart computes the inclusive window start for the recency facet.
func (f Filters) periodStart(now time.Time) time.Time {
	switch f.period {
	case PeriodToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	}
	return time.Time{}
}
