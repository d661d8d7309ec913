// Package candidate defines the immutable searchable record: a document
// or image with a precomputed relevance score and display metadata.
package candidate

import (
	"fmt"
	"time"
)

// Kind is the candidate content type.
type Kind string

const (
	// Document is a textual document candidate.
	Document Kind = "document"
	// Image is an image candidate.
	Image Kind = "image"
)

// IsValid reports whether the kind is known.
func (k Kind) IsValid() bool {
	return k == Document || k == Image
}

// Relevance and rating bounds.
const (
	MinRelevance = 0
	MaxRelevance = 100
	MaxRating    = 5.0
)

// DocumentInfo holds document-specific metadata ("PDF", "28 страниц • 5.2 MB").
type DocumentInfo struct {
	Format string
	Meta   string
}

// ImageInfo holds image-specific metadata ("1920x1080", OCR flag).
type ImageInfo struct {
	Dimensions string
	OCR        bool
}

// Candidate is one searchable record. Constructed once as demo data and
// read-only for the lifetime of a query.
type Candidate struct {
	id         string
	kind       Kind
	title      string
	snippet    string
	relevance  int
	timestamp  int64 // epoch millis
	author     string
	rating     float64
	aiAnalyzed bool
	document   *DocumentInfo
	image      *ImageInfo
}

// New validates and creates a candidate.
func New(id string, kind Kind, title, snippet string, relevance int, timestamp int64) (Candidate, error) {
	if id == "" {
		return Candidate{}, fmt.Errorf("candidate id is required")
	}
	if !kind.IsValid() {
		return Candidate{}, fmt.Errorf("invalid candidate kind: %q", kind)
	}
	if title == "" {
		return Candidate{}, fmt.Errorf("candidate title is required")
	}
	if relevance < MinRelevance || relevance > MaxRelevance {
		return Candidate{}, fmt.Errorf("relevance must be between %d and %d, got %d",
			MinRelevance, MaxRelevance, relevance)
	}
	return Candidate{
		id:        id,
		kind:      kind,
		title:     title,
		snippet:   snippet,
		relevance: relevance,
		timestamp: timestamp,
	}, nil
}

// MustNew creates a candidate or panics. For static demo catalogs.
func MustNew(id string, kind Kind, title, snippet string, relevance int, timestamp int64) Candidate {
	c, err := New(id, kind, title, snippet, relevance, timestamp)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAuthor returns a copy with the author set.
func (c Candidate) WithAuthor(author string) Candidate {
	c.author = author
	return c
}

// WithRating returns a copy with the rating set. Out-of-band values are clamped.
func (c Candidate) WithRating(rating float64) Candidate {
	if rating < 0 {
		rating = 0
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	c.rating = rating
	return c
}

// WithAIAnalyzed returns a copy with the AI-analyzed flag set.
func (c Candidate) WithAIAnalyzed(analyzed bool) Candidate {
	c.aiAnalyzed = analyzed
	return c
}

// WithDocumentInfo returns a copy carrying document metadata.
func (c Candidate) WithDocumentInfo(format, meta string) Candidate {
	c.document = &DocumentInfo{Format: format, Meta: meta}
	return c
}

// WithImageInfo returns a copy carrying image metadata.
func (c Candidate) WithImageInfo(dimensions string, ocr bool) Candidate {
	c.image = &ImageInfo{Dimensions: dimensions, OCR: ocr}
	return c
}

// ID returns the unique candidate id.
func (c Candidate) ID() string { return c.id }

// Kind returns the content type.
func (c Candidate) Kind() Kind { return c.kind }

// Title returns the display title.
func (c Candidate) Title() string { return c.title }

// Snippet returns the short description.
func (c Candidate) Snippet() string { return c.snippet }

// Relevance returns the precomputed relevance score (0-100).
func (c Candidate) Relevance() int { return c.relevance }

// Timestamp returns the creation time in epoch millis.
func (c Candidate) Timestamp() int64 { return c.timestamp }

// Time returns the creation time as time.Time.
func (c Candidate) Time() time.Time { return time.UnixMilli(c.timestamp) }

// Author returns the author name, empty when unknown.
func (c Candidate) Author() string { return c.author }

// Rating returns the 0..5 rating, 0 when unrated.
func (c Candidate) Rating() float64 { return c.rating }

// AIAnalyzed reports whether AI analysis ran over the record.
func (c Candidate) AIAnalyzed() bool { return c.aiAnalyzed }

// DocumentInfo returns document metadata (nil for images).
func (c Candidate) DocumentInfo() *DocumentInfo { return c.document }

// ImageInfo returns image metadata (nil for documents).
func (c Candidate) ImageInfo() *ImageInfo { return c.image }
