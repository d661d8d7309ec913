package dashboard

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain"
	"github.com/deskhub-cloud/deskhub/internal/domain/analytics"
	"github.com/deskhub-cloud/deskhub/internal/domain/currency"
	"github.com/deskhub-cloud/deskhub/internal/repository/demo"
)

type fixedRates struct {
	table currency.Table
	err   error
}

func (f *fixedRates) Rates(_ context.Context) (currency.Table, error) {
	return f.table, f.err
}

type fixedMetrics struct {
	ds  analytics.Dataset
	err error
}

func (f *fixedMetrics) Generate(_ context.Context, _ int) (analytics.Dataset, error) {
	return f.ds, f.err
}

func fixedClock() time.Time {
	return time.Date(2024, time.November, 12, 15, 0, 0, 0, time.UTC)
}

func testRand() domain.Rand {
	return rand.New(rand.NewPCG(3, 3))
}

func workingMetrics(t *testing.T) *fixedMetrics {
	t.Helper()
	return &fixedMetrics{ds: analytics.Dataset{Points: []analytics.Point{
		{Date: fixedClock().AddDate(0, 0, -1), Documents: 900, AIOps: 3000, TimeSavedHours: 100, Accuracy: 92.1},
		{Date: fixedClock(), Documents: 950, AIOps: 3100, TimeSavedHours: 104, Accuracy: 92.4},
	}}}
}

func demoRates(t *testing.T) *fixedRates {
	t.Helper()
	usd, err := currency.NewRate("USD", 88, 0.3)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	return &fixedRates{table: currency.NewTable(currency.DefaultBase, []currency.Rate{usd})}
}

func TestSummary(t *testing.T) {
	catalog := demo.New().WithClock(fixedClock)
	svc := New(catalog, demoRates(t), workingMetrics(t), testRand())

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Weather.City != "Бишкек" {
		t.Errorf("weather city = %q", sum.Weather.City)
	}
	if len(sum.Rates) != 2 {
		t.Errorf("rates = %d, want 2 (base + USD)", len(sum.Rates))
	}
	if len(sum.Events) != 3 {
		t.Errorf("events = %d, want 3", len(sum.Events))
	}

	// Top four records by relevance: 98, 95, 92, 90.
	wantIDs := []string{"doc-q3-2024", "img-showcase-2024", "doc-plan-2025", "doc-contract-2024"}
	if len(sum.Items) != len(wantIDs) {
		t.Fatalf("items = %d, want %d", len(sum.Items), len(wantIDs))
	}
	for i, id := range wantIDs {
		if sum.Items[i].ID() != id {
			t.Errorf("items[%d] = %s, want %s", i, sum.Items[i].ID(), id)
		}
	}

	// Stats come from the newest point.
	if sum.Stats.Documents != 950 || sum.Stats.AccuracyPercent != 92.4 {
		t.Errorf("stats = %+v", sum.Stats)
	}
}

func TestSummaryStatsFallback(t *testing.T) {
	catalog := demo.New().WithClock(fixedClock)

	for name, metrics := range map[string]*fixedMetrics{
		"provider error": {err: errors.New("synth down")},
		"empty series":   {},
	} {
		t.Run(name, func(t *testing.T) {
			svc := New(catalog, demoRates(t), metrics, testRand())
			sum, err := svc.Summary(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sum.Stats != fallbackStats {
				t.Errorf("stats = %+v, want fallback", sum.Stats)
			}
		})
	}
}

func TestSummaryRatesError(t *testing.T) {
	catalog := demo.New().WithClock(fixedClock)
	wantErr := errors.New("rates down")
	svc := New(catalog, &fixedRates{err: wantErr}, workingMetrics(t), testRand())

	if _, err := svc.Summary(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped %v", err, wantErr)
	}
}
