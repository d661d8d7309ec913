package chi

import (
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain/analytics"
	"github.com/deskhub-cloud/deskhub/internal/domain/currency"
	domdash "github.com/deskhub-cloud/deskhub/internal/domain/dashboard"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/result"
	healthuc "github.com/deskhub-cloud/deskhub/internal/usecase/health"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type searchItemResponse struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Title      string            `json:"title"`
	Snippet    string            `json:"snippet,omitempty"`
	Relevance  int               `json:"relevance"`
	Timestamp  int64             `json:"timestamp"`
	TimeLabel  string            `json:"time_label"`
	Author     string            `json:"author,omitempty"`
	Rating     float64           `json:"rating,omitempty"`
	AIAnalyzed bool              `json:"ai_analyzed"`
	Document   *documentResponse `json:"document,omitempty"`
	Image      *imageResponse    `json:"image,omitempty"`
}

type documentResponse struct {
	Format string `json:"format"`
	Meta   string `json:"meta,omitempty"`
}

type imageResponse struct {
	Dimensions string `json:"dimensions"`
	OCR        bool   `json:"ocr"`
}

type searchResponse struct {
	Items       []searchItemResponse `json:"items"`
	Total       int                  `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
	TookSeconds float64              `json:"took_seconds"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type analyticsPointResponse struct {
	Date           string  `json:"date"`
	Documents      int     `json:"documents"`
	AIOps          int     `json:"ai_ops"`
	TimeSavedHours int     `json:"time_saved_hours"`
	Accuracy       float64 `json:"accuracy"`
}

type categoryResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type heatmapCellResponse struct {
	Day   int `json:"day"`
	Hour  int `json:"hour"`
	Value int `json:"value"`
}

type analyticsResponse struct {
	PeriodDays int                      `json:"period_days"`
	Points     []analyticsPointResponse `json:"points"`
	ByTask     []categoryResponse       `json:"by_task"`
	Sources    []categoryResponse       `json:"sources"`
	Heatmap    []heatmapCellResponse    `json:"heatmap"`
}

type rateResponse struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
	Delta float64 `json:"delta"`
}

type ratesResponse struct {
	Base  string         `json:"base"`
	Rates []rateResponse `json:"rates"`
}

type convertRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type convertResponse struct {
	Available bool     `json:"available"`
	Result    *float64 `json:"result,omitempty"`
	CrossRate *float64 `json:"cross_rate,omitempty"`
}

type weatherResponse struct {
	City        string `json:"city"`
	TempC       int    `json:"temp_c"`
	Description string `json:"description"`
	WindKmh     int    `json:"wind_kmh"`
	Humidity    int    `json:"humidity"`
}

type eventResponse struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

type statsResponse struct {
	Documents      int     `json:"documents"`
	AIOps          int     `json:"ai_ops"`
	TimeSavedHours int     `json:"time_saved_hours"`
	Accuracy       float64 `json:"accuracy"`
}

type dashboardResponse struct {
	Weather weatherResponse      `json:"weather"`
	Rates   []rateResponse       `json:"rates"`
	Events  []eventResponse      `json:"events"`
	Items   []searchItemResponse `json:"items"`
	Stats   statsResponse        `json:"stats"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func candidateToResponse(c *candidate.Candidate, now time.Time) searchItemResponse {
	item := searchItemResponse{
		ID:         c.ID(),
		Type:       string(c.Kind()),
		Title:      c.Title(),
		Snippet:    c.Snippet(),
		Relevance:  c.Relevance(),
		Timestamp:  c.Timestamp(),
		TimeLabel:  candidate.FormatRelative(c.Time(), now),
		Author:     c.Author(),
		Rating:     c.Rating(),
		AIAnalyzed: c.AIAnalyzed(),
	}
	if d := c.DocumentInfo(); d != nil {
		item.Document = &documentResponse{Format: d.Format, Meta: d.Meta}
	}
	if img := c.ImageInfo(); img != nil {
		item.Image = &imageResponse{Dimensions: img.Dimensions, OCR: img.OCR}
	}
	return item
}

func pageToResponse(page *result.Page, pageNum, pageSize int, now time.Time) searchResponse {
	items := page.Items()
	resp := searchResponse{
		Items:       make([]searchItemResponse, 0, len(items)),
		Total:       page.Total(),
		Page:        pageNum,
		PageSize:    pageSize,
		TookSeconds: page.TookSeconds(),
	}
	for i := range items {
		resp.Items = append(resp.Items, candidateToResponse(&items[i], now))
	}
	return resp
}

func datasetToResponse(ds *analytics.Dataset, days int) analyticsResponse {
	resp := analyticsResponse{
		PeriodDays: days,
		Points:     make([]analyticsPointResponse, 0, len(ds.Points)),
		ByTask:     categoriesToResponse(ds.ByTask),
		Sources:    categoriesToResponse(ds.Sources),
		Heatmap:    make([]heatmapCellResponse, 0, len(ds.Heatmap)),
	}
	for _, p := range ds.Points {
		resp.Points = append(resp.Points, analyticsPointResponse{
			Date:           p.Date.Format("2006-01-02"),
			Documents:      p.Documents,
			AIOps:          p.AIOps,
			TimeSavedHours: p.TimeSavedHours,
			Accuracy:       p.Accuracy,
		})
	}
	for _, c := range ds.Heatmap {
		resp.Heatmap = append(resp.Heatmap, heatmapCellResponse{Day: c.Day, Hour: c.Hour, Value: c.Value})
	}
	return resp
}

func categoriesToResponse(cats []analytics.CategoryValue) []categoryResponse {
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryResponse{Name: c.Name, Value: c.Value})
	}
	return out
}

func tableToResponse(t *currency.Table) ratesResponse {
	rates := t.Rates()
	resp := ratesResponse{Base: t.Base(), Rates: make([]rateResponse, 0, len(rates))}
	for _, r := range rates {
		resp.Rates = append(resp.Rates, rateResponse{Code: r.Code(), Value: r.Value(), Delta: r.Delta()})
	}
	return resp
}

func summaryToResponse(sum *domdash.Summary, now time.Time) dashboardResponse {
	resp := dashboardResponse{
		Weather: weatherResponse{
			City:        sum.Weather.City,
			TempC:       sum.Weather.TempC,
			Description: sum.Weather.Description,
			WindKmh:     sum.Weather.WindKmh,
			Humidity:    sum.Weather.Humidity,
		},
		Rates:  make([]rateResponse, 0, len(sum.Rates)),
		Events: make([]eventResponse, 0, len(sum.Events)),
		Items:  make([]searchItemResponse, 0, len(sum.Items)),
		Stats: statsResponse{
			Documents:      sum.Stats.Documents,
			AIOps:          sum.Stats.AIOps,
			TimeSavedHours: sum.Stats.TimeSavedHours,
			Accuracy:       sum.Stats.AccuracyPercent,
		},
	}
	for _, r := range sum.Rates {
		resp.Rates = append(resp.Rates, rateResponse{Code: r.Code(), Value: r.Value(), Delta: r.Delta()})
	}
	for _, e := range sum.Events {
		resp.Events = append(resp.Events, eventResponse{Time: e.Time, Title: e.Title})
	}
	for i := range sum.Items {
		resp.Items = append(resp.Items, candidateToResponse(&sum.Items[i], now))
	}
	return resp
}

func reportToResponse(report healthuc.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return healthResponse{Status: string(report.Status), Checks: checks}
}
