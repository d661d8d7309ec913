package demo

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain/currency"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/filter"
)

func fixedClock() time.Time {
	return time.Date(2024, time.November, 12, 15, 0, 0, 0, time.UTC)
}

func TestCandidates(t *testing.T) {
	cat := New().WithClock(fixedClock)

	cands, err := cat.Candidates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 6 {
		t.Fatalf("expected 6 candidates, got %d", len(cands))
	}

	byID := make(map[string]candidate.Candidate, len(cands))
	for _, c := range cands {
		byID[c.ID()] = c
	}

	top, ok := byID["doc-q3-2024"]
	if !ok {
		t.Fatal("doc-q3-2024 missing")
	}
	if top.Relevance() != 98 {
		t.Errorf("doc-q3-2024 relevance = %d, want 98", top.Relevance())
	}
	if got, want := top.Time(), fixedClock().Add(-48*time.Hour); !got.Equal(want) {
		t.Errorf("doc-q3-2024 timestamp = %v, want %v", got, want)
	}

	var docs, imgs int
	for _, c := range cands {
		switch c.Kind() {
		case candidate.Document:
			docs++
		case candidate.Image:
			imgs++
		}
	}
	if docs != 3 || imgs != 3 {
		t.Errorf("kind split = %d docs / %d imgs, want 3/3", docs, imgs)
	}
}

// The seven-day-old image must still pass the week facet: the boundary
// is inclusive.
func TestCandidatesWeekBoundary(t *testing.T) {
	cat := New().WithClock(fixedClock)

	cands, err := cat.Candidates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := filter.New(filter.TypeAll, filter.PeriodWeek, filter.AnyAuthor, false, false)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	var ids []string
	for _, c := range cands {
		if f.Matches(&c, fixedClock()) {
			ids = append(ids, c.ID())
		}
	}

	found := false
	for _, id := range ids {
		if id == "img-showcase-2024" {
			found = true
		}
	}
	if !found {
		t.Errorf("img-showcase-2024 (exactly 7 days old) not matched by week facet, got %v", ids)
	}
}

func TestSuggestions(t *testing.T) {
	got, err := New().Suggestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 phrases, got %d", len(got))
	}
	if got[0] != "договоры 2024" || got[7] != "перевод на английский" {
		t.Errorf("catalog order broken: first=%q last=%q", got[0], got[7])
	}

	// The returned slice is a copy; mutating it must not leak back.
	got[0] = "mutated"
	again, _ := New().Suggestions(context.Background())
	if again[0] != "договоры 2024" {
		t.Error("Suggestions returned a shared slice")
	}
}

func TestRates(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	table, err := New().Rates(context.Background(), rnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Base() != currency.DefaultBase {
		t.Errorf("base = %q, want RUB", table.Base())
	}
	if len(table.Rates()) != 6 {
		t.Fatalf("expected 6 rates, got %d", len(table.Rates()))
	}

	bounds := map[string][2]float64{
		"RUB": {1, 1},
		"KGS": {0.98, 1.04},
		"USD": {88, 91},
		"EUR": {96, 99},
		"CNY": {12, 12.6},
		"KZT": {0.20, 0.22},
	}
	for code, b := range bounds {
		r, ok := table.Lookup(code)
		if !ok {
			t.Errorf("rate %s missing", code)
			continue
		}
		if r.Value() < b[0] || r.Value() > b[1] {
			t.Errorf("%s value %v out of band [%v, %v]", code, r.Value(), b[0], b[1])
		}
	}

	if r, _ := table.Lookup("RUB"); r.Delta() != 0 {
		t.Errorf("base delta = %v, want 0", r.Delta())
	}
}

func TestWeather(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 7))

	w, err := New().Weather(context.Background(), rnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.City != "Бишкек" {
		t.Errorf("city = %q", w.City)
	}
	if w.TempC < 14 || w.TempC > 22 {
		t.Errorf("temp %d out of band", w.TempC)
	}
	if w.Humidity < 40 || w.Humidity > 75 {
		t.Errorf("humidity %d out of band", w.Humidity)
	}
	if w.Description == "" {
		t.Error("empty description")
	}
}

func TestEvents(t *testing.T) {
	events, err := New().Events(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Time != "09:00" || events[0].Title != "Планерка команды" {
		t.Errorf("first event = %+v", events[0])
	}
}
