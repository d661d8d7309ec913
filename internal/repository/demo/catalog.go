// Package demo holds the fixed in-memory demo data: the searchable
// candidate set, the autocomplete phrase catalog, the currency rate
// table and the dashboard odds and ends. There is no persistence behind
// it; candidates are rebuilt per call with timestamps relative to the
// injected clock.
package demo

import (
	"context"
	"math"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain"
	"github.com/deskhub-cloud/deskhub/internal/domain/currency"
	"github.com/deskhub-cloud/deskhub/internal/domain/dashboard"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
)

// Catalog serves the demo data set.
type Catalog struct {
	now func() time.Time
}

// New creates a demo catalog with the real clock.
func New() *Catalog {
	return &Catalog{now: time.Now}
}

// WithClock returns a copy using the given clock. For tests.
func (c *Catalog) WithClock(now func() time.Time) *Catalog {
	return &Catalog{now: now}
}

// Candidates returns the fixed six-record demo set. Timestamps are
// relative to the clock so recency facets behave like live data.
func (c *Catalog) Candidates(_ context.Context) ([]candidate.Candidate, error) {
	now := c.now()

	return []candidate.Candidate{
		candidate.MustNew(
			"doc-q3-2024", candidate.Document,
			"Квартальный финансовый отчет Q3 2024.docx",
			"Подробный анализ финансовых показателей за третий квартал 2024 года включая прибыль, убытки и прогнозы...",
			98, now.Add(-2*24*time.Hour).UnixMilli(),
		).WithAuthor("Анна Иванова").WithRating(4.8).WithAIAnalyzed(true).
			WithDocumentInfo("DOCX", "28 страниц • 5.2 MB"),

		candidate.MustNew(
			"img-showcase-2024", candidate.Image,
			"product-showcase-2024.jpg",
			"Изображение содержит: продукты, логотип компании, финансовые графики. Обнаружено 3 объекта...",
			95, now.Add(-7*24*time.Hour).UnixMilli(),
		).WithAuthor("Петр Смирнов").WithRating(4.6).WithAIAnalyzed(true).
			WithImageInfo("1920x1080", true),

		candidate.MustNew(
			"doc-plan-2025", candidate.Document,
			"Стратегический план 2025",
			"Ключевые инициативы и цели на 2025 год. Влияние на выручку и оптимизацию затрат...",
			92, now.Add(-5*time.Hour).UnixMilli(),
		).WithAuthor("Мария Козлова").WithRating(4.4).WithAIAnalyzed(true).
			WithDocumentInfo("PDF", "12 страниц • 2.1 MB"),

		candidate.MustNew(
			"img-team-photos", candidate.Image,
			"team-photos-august.webp",
			"Распознаны лица: 5. OCR: найдено 2 текста. Теги: команда, ивент, август.",
			88, now.Add(-10*24*time.Hour).UnixMilli(),
		).WithAuthor("Анна Иванова").WithRating(4.2).
			WithImageInfo("4032x3024", true),

		candidate.MustNew(
			"doc-contract-2024", candidate.Document,
			"Контракт №2024-458",
			"Юридическая проверка завершена. Извлечены ключевые действия и сроки исполнения.",
			90, now.Add(-36*time.Hour).UnixMilli(),
		).WithAuthor("Петр Смирнов").WithRating(4.9).WithAIAnalyzed(true).
			WithDocumentInfo("PDF", "12 страниц • 2.3 MB"),

		candidate.MustNew(
			"img-product-hero", candidate.Image,
			"product-hero-2024.avif",
			"DETR: 4 объекта, OCR: найден текст, Точность анализа: 96%",
			88, now.Add(-3*24*time.Hour).UnixMilli(),
		).WithAuthor("Анна Иванова").WithRating(4.7).WithAIAnalyzed(true).
			WithImageInfo("2560x1440", true),
	}, nil
}

// suggestions is the fixed autocomplete phrase catalog.
var suggestions = []string{
	"договоры 2024",
	"презентации клиентам",
	"финансовые отчеты",
	"изображения продуктов",
	"стратегический план 2025",
	"AI аналитика эффективности",
	"отчет о продажах",
	"перевод на английский",
}

// Suggestions returns the autocomplete phrase catalog in fixed order.
func (c *Catalog) Suggestions(_ context.Context) ([]string, error) {
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out, nil
}

// rateBand describes the jitter band of one demo currency.
type rateBand struct {
	code       string
	base       float64
	spread     float64
	valueScale float64 // rounding scale for value (100 -> 2 decimals)
	deltaBase  float64
	deltaSpan  float64
}

var rateBands = []rateBand{
	{"KGS", 0.98, 0.06, 100, -0.2, 0.5},
	{"USD", 88, 3, 100, 0.1, 0.8},
	{"EUR", 96, 3, 100, -0.3, 0.6},
	{"CNY", 12, 0.6, 100, -0.2, 0.5},
	{"KZT", 0.20, 0.02, 1000, -0.2, 0.5},
}

// Rates synthesizes the demo rate table in rubles per unit, with
// bounded jitter around yesterday's fixings.
func (c *Catalog) Rates(_ context.Context, rnd domain.Rand) (currency.Table, error) {
	rates := make([]currency.Rate, 0, len(rateBands)+1)

	base, err := currency.NewRate(currency.DefaultBase, 1, 0)
	if err != nil {
		return currency.Table{}, err
	}
	rates = append(rates, base)

	for _, b := range rateBands {
		value := roundTo(b.base+rnd.Float64()*b.spread, b.valueScale)
		delta := roundTo(b.deltaBase+rnd.Float64()*b.deltaSpan, 100)
		r, err := currency.NewRate(b.code, value, delta)
		if err != nil {
			return currency.Table{}, err
		}
		rates = append(rates, r)
	}

	return currency.NewTable(currency.DefaultBase, rates), nil
}

var weatherDescriptions = []string{"Ясно", "Переменная облачность", "Небольшой дождь"}

// Weather synthesizes the demo weather snapshot.
func (c *Catalog) Weather(_ context.Context, rnd domain.Rand) (dashboard.Weather, error) {
	return dashboard.Weather{
		City:        "Бишкек",
		TempC:       domain.IntBetween(rnd, 14, 22),
		Description: weatherDescriptions[rnd.IntN(len(weatherDescriptions))],
		WindKmh:     domain.IntBetween(rnd, 5, 18),
		Humidity:    domain.IntBetween(rnd, 40, 75),
	}, nil
}

// Events returns the fixed calendar of the day.
func (c *Catalog) Events(_ context.Context) ([]dashboard.Event, error) {
	return []dashboard.Event{
		{Time: "09:00", Title: "Планерка команды"},
		{Time: "14:30", Title: "Презентация клиенту"},
		{Time: "16:00", Title: "AI обучение"},
	}, nil
}

func roundTo(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}
