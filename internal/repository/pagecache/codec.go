package pagecache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/result"
)

// cachedPage is the wire form of a result page. Kept private to the
// cache: nothing else depends on this layout, so it can change freely.
type cachedPage struct {
	Items  []cachedItem `json:"items"`
	Total  int          `json:"total"`
	TookNs int64        `json:"took_ns"`
}

type cachedItem struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Title      string     `json:"title"`
	Snippet    string     `json:"snippet,omitempty"`
	Relevance  int        `json:"relevance"`
	Timestamp  int64      `json:"timestamp"`
	Author     string     `json:"author,omitempty"`
	Rating     float64    `json:"rating,omitempty"`
	AIAnalyzed bool       `json:"ai_analyzed,omitempty"`
	Document   *cachedDoc `json:"document,omitempty"`
	Image      *cachedImg `json:"image,omitempty"`
}

type cachedDoc struct {
	Format string `json:"format"`
	Meta   string `json:"meta,omitempty"`
}

type cachedImg struct {
	Dimensions string `json:"dimensions"`
	OCR        bool   `json:"ocr,omitempty"`
}

func encodePage(page result.Page) ([]byte, error) {
	items := page.Items()
	cp := cachedPage{
		Items:  make([]cachedItem, 0, len(items)),
		Total:  page.Total(),
		TookNs: page.Took().Nanoseconds(),
	}

	for i := range items {
		c := &items[i]
		item := cachedItem{
			ID:         c.ID(),
			Kind:       string(c.Kind()),
			Title:      c.Title(),
			Snippet:    c.Snippet(),
			Relevance:  c.Relevance(),
			Timestamp:  c.Timestamp(),
			Author:     c.Author(),
			Rating:     c.Rating(),
			AIAnalyzed: c.AIAnalyzed(),
		}
		if d := c.DocumentInfo(); d != nil {
			item.Document = &cachedDoc{Format: d.Format, Meta: d.Meta}
		}
		if img := c.ImageInfo(); img != nil {
			item.Image = &cachedImg{Dimensions: img.Dimensions, OCR: img.OCR}
		}
		cp.Items = append(cp.Items, item)
	}

	return json.Marshal(cp)
}

func decodePage(data []byte) (result.Page, error) {
	var cp cachedPage
	if err := json.Unmarshal(data, &cp); err != nil {
		return result.Page{}, fmt.Errorf("unmarshal cached page: %w", err)
	}

	items := make([]candidate.Candidate, 0, len(cp.Items))
	for _, it := range cp.Items {
		c, err := candidate.New(it.ID, candidate.Kind(it.Kind), it.Title, it.Snippet, it.Relevance, it.Timestamp)
		if err != nil {
			return result.Page{}, fmt.Errorf("rebuild cached candidate %q: %w", it.ID, err)
		}
		c = c.WithAuthor(it.Author).WithRating(it.Rating).WithAIAnalyzed(it.AIAnalyzed)
		if it.Document != nil {
			c = c.WithDocumentInfo(it.Document.Format, it.Document.Meta)
		}
		if it.Image != nil {
			c = c.WithImageInfo(it.Image.Dimensions, it.Image.OCR)
		}
		items = append(items, c)
	}

	return result.New(items, cp.Total, time.Duration(cp.TookNs)), nil
}
