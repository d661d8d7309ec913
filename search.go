package deskhub

import (
	"context"
	"fmt"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain/analytics"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/filter"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/request"
)

// Item is one search result record.
type Item struct {
	ID         string
	Type       string // "document" or "image"
	Title      string
	Snippet    string
	Relevance  int
	Time       time.Time
	TimeLabel  string // Russian relative label ("вчера", "2 дн назад")
	Author     string
	Rating     float64
	AIAnalyzed bool
	Document   *DocumentInfo
	Image      *ImageInfo
}

// DocumentInfo holds document metadata.
type DocumentInfo struct {
	Format string
	Meta   string
}

// ImageInfo holds image metadata.
type ImageInfo struct {
	Dimensions string
	OCR        bool
}

// SearchResult is one page of ranked items.
type SearchResult struct {
	Items []Item
	Total int
	Took  time.Duration
}

// Rate is one currency table row.
type Rate struct {
	Code  string
	Value float64 // rubles per unit
	Delta float64 // day-over-day change, percent
}

// Conversion is a currency conversion outcome.
type Conversion struct {
	Result    float64
	CrossRate float64
	Available bool
}

// Analytics is the synthesized metric series with breakdowns.
type Analytics struct {
	Points  []AnalyticsPoint
	ByTask  []Category
	Sources []Category
	Heatmap []HeatmapCell
}

// AnalyticsPoint is one day of metrics.
type AnalyticsPoint struct {
	Date           time.Time
	Documents      int
	AIOps          int
	TimeSavedHours int
	Accuracy       float64
}

// Category is a named slice of a breakdown.
type Category struct {
	Name  string
	Value int
}

// HeatmapCell is one weekday x hour activity sample.
type HeatmapCell struct {
	Day   int
	Hour  int
	Value int
}

// Weather is the demo weather snapshot.
type Weather struct {
	City        string
	TempC       int
	Description string
	WindKmh     int
	Humidity    int
}

// Event is one calendar entry.
type Event struct {
	Time  string
	Title string
}

// Stats are the dashboard headline numbers.
type Stats struct {
	Documents       int
	AIOps           int
	TimeSavedHours  int
	AccuracyPercent float64
}

// Dashboard is the home screen aggregate.
type Dashboard struct {
	Weather Weather
	Rates   []Rate
	Events  []Event
	Items   []Item
	Stats   Stats
}

// SearchBuilder is a fluent builder for search queries.
type SearchBuilder struct {
	client *Client

	query        string
	contentType  filter.ContentType
	period       filter.Period
	author       string
	withAnalysis bool
	highRating   bool
	page         int
	pageSize     int
}

// Query sets the free-text query. Empty matches everything.
func (b *SearchBuilder) Query(q string) *SearchBuilder {
	b.query = q
	return b
}

// Documents narrows results to documents.
func (b *SearchBuilder) Documents() *SearchBuilder {
	b.contentType = filter.TypeDocuments
	return b
}

// Images narrows results to images.
func (b *SearchBuilder) Images() *SearchBuilder {
	b.contentType = filter.TypeImages
	return b
}

// Today narrows results to records created today.
func (b *SearchBuilder) Today() *SearchBuilder {
	b.period = filter.PeriodToday
	return b
}

// Week narrows results to the last seven days.
func (b *SearchBuilder) Week() *SearchBuilder {
	b.period = filter.PeriodWeek
	return b
}

// Month narrows results to the last month.
func (b *SearchBuilder) Month() *SearchBuilder {
	b.period = filter.PeriodMonth
	return b
}

// Author narrows results to one author (case-insensitive).
func (b *SearchBuilder) Author(name string) *SearchBuilder {
	b.author = name
	return b
}

// WithAnalysis narrows results to AI-analyzed records.
func (b *SearchBuilder) WithAnalysis() *SearchBuilder {
	b.withAnalysis = true
	return b
}

// HighRating narrows results to records rated 4.5 and above.
func (b *SearchBuilder) HighRating() *SearchBuilder {
	b.highRating = true
	return b
}

// Page sets the 1-indexed page number.
func (b *SearchBuilder) Page(n int) *SearchBuilder {
	b.page = n
	return b
}

// PageSize sets the page size (default 5, max 50).
func (b *SearchBuilder) PageSize(n int) *SearchBuilder {
	b.pageSize = n
	return b
}

// Do executes the search.
func (b *SearchBuilder) Do(ctx context.Context) (SearchResult, error) {
	filters, err := filter.New(b.contentType, b.period, b.author, b.withAnalysis, b.highRating)
	if err != nil {
		return SearchResult{}, fmt.Errorf("deskhub: build filters: %w", err)
	}

	req, err := request.New(b.query, filters, b.page, b.pageSize)
	if err != nil {
		return SearchResult{}, fmt.Errorf("deskhub: build request: %w", err)
	}

	page, err := b.client.searchSvc.Search(ctx, &req)
	if err != nil {
		return SearchResult{}, fmt.Errorf("deskhub: search: %w", err)
	}

	items := page.Items()
	res := SearchResult{
		Items: make([]Item, 0, len(items)),
		Total: page.Total(),
		Took:  page.Took(),
	}
	now := b.client.now()
	for i := range items {
		res.Items = append(res.Items, itemFromCandidate(&items[i], now))
	}
	return res, nil
}

func itemFromCandidate(c *candidate.Candidate, now time.Time) Item {
	item := Item{
		ID:         c.ID(),
		Type:       string(c.Kind()),
		Title:      c.Title(),
		Snippet:    c.Snippet(),
		Relevance:  c.Relevance(),
		Time:       c.Time(),
		TimeLabel:  candidate.FormatRelative(c.Time(), now),
		Author:     c.Author(),
		Rating:     c.Rating(),
		AIAnalyzed: c.AIAnalyzed(),
	}
	if d := c.DocumentInfo(); d != nil {
		item.Document = &DocumentInfo{Format: d.Format, Meta: d.Meta}
	}
	if img := c.ImageInfo(); img != nil {
		item.Image = &ImageInfo{Dimensions: img.Dimensions, OCR: img.OCR}
	}
	return item
}

func analyticsFromDataset(ds *analytics.Dataset) Analytics {
	out := Analytics{
		Points:  make([]AnalyticsPoint, 0, len(ds.Points)),
		ByTask:  make([]Category, 0, len(ds.ByTask)),
		Sources: make([]Category, 0, len(ds.Sources)),
		Heatmap: make([]HeatmapCell, 0, len(ds.Heatmap)),
	}
	for _, p := range ds.Points {
		out.Points = append(out.Points, AnalyticsPoint{
			Date:           p.Date,
			Documents:      p.Documents,
			AIOps:          p.AIOps,
			TimeSavedHours: p.TimeSavedHours,
			Accuracy:       p.Accuracy,
		})
	}
	for _, c := range ds.ByTask {
		out.ByTask = append(out.ByTask, Category{Name: c.Name, Value: c.Value})
	}
	for _, c := range ds.Sources {
		out.Sources = append(out.Sources, Category{Name: c.Name, Value: c.Value})
	}
	for _, c := range ds.Heatmap {
		out.Heatmap = append(out.Heatmap, HeatmapCell{Day: c.Day, Hour: c.Hour, Value: c.Value})
	}
	return out
}
