package filter

import (
	"testing"
	"time"

	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
)

var testNow = time.Date(2024, 8, 20, 15, 30, 0, 0, time.UTC)

func doc(t *testing.T, ts time.Time) candidate.Candidate {
	t.Helper()
	return candidate.MustNew("doc-1", candidate.Document, "Отчет", "сниппет", 90, ts.UnixMilli()).
		WithAuthor("Анна Иванова").
		WithRating(4.8).
		WithAIAnalyzed(true)
}

func img(t *testing.T) candidate.Candidate {
	t.Helper()
	return candidate.MustNew("img-1", candidate.Image, "photo.jpg", "", 80, testNow.UnixMilli()).
		WithAuthor("Петр Смирнов").
		WithRating(4.2)
}

func mustNew(t *testing.T, ct ContentType, p Period, author string, analysis, rating bool) Filters {
	t.Helper()
	f, err := New(ct, p, author, analysis, rating)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	return f
}

func TestNew_Defaults(t *testing.T) {
	f, err := New("", "", "", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ContentType() != TypeAll || f.Period() != PeriodAll || f.Author() != AnyAuthor {
		t.Errorf("empty facets should fall back to all-pass: %+v", f)
	}
	if f != Default() {
		t.Error("New with empty facets should equal Default()")
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New("videos", PeriodAll, AnyAuthor, false, false); err == nil {
		t.Error("expected error for unknown content type")
	}
	if _, err := New(TypeAll, "year", AnyAuthor, false, false); err == nil {
		t.Error("expected error for unknown period")
	}
}

func TestMatches_ContentType(t *testing.T) {
	d := doc(t, testNow)
	i := img(t)

	docsOnly := mustNew(t, TypeDocuments, PeriodAll, AnyAuthor, false, false)
	imagesOnly := mustNew(t, TypeImages, PeriodAll, AnyAuthor, false, false)

	if !docsOnly.Matches(&d, testNow) || docsOnly.Matches(&i, testNow) {
		t.Error("documents facet should pass only documents")
	}
	if imagesOnly.Matches(&d, testNow) || !imagesOnly.Matches(&i, testNow) {
		t.Error("images facet should pass only images")
	}
}

func TestMatches_AuthorCaseInsensitive(t *testing.T) {
	d := doc(t, testNow)
	f := mustNew(t, TypeAll, PeriodAll, "анна иванова", false, false)
	if !f.Matches(&d, testNow) {
		t.Error("author match must be case-insensitive")
	}
	other := mustNew(t, TypeAll, PeriodAll, "Мария Козлова", false, false)
	if other.Matches(&d, testNow) {
		t.Error("different author must not match")
	}
}

func TestMatches_AnalysisAndRating(t *testing.T) {
	d := doc(t, testNow) // analyzed, rating 4.8
	i := img(t)          // not analyzed, rating 4.2

	analysis := mustNew(t, TypeAll, PeriodAll, AnyAuthor, true, false)
	if !analysis.Matches(&d, testNow) || analysis.Matches(&i, testNow) {
		t.Error("withAnalysis facet mismatch")
	}

	rating := mustNew(t, TypeAll, PeriodAll, AnyAuthor, false, true)
	if !rating.Matches(&d, testNow) || rating.Matches(&i, testNow) {
		t.Error("highRating facet mismatch")
	}
}

func TestMatches_Periods(t *testing.T) {
	cases := []struct {
		name   string
		period Period
		ts     time.Time
		want   bool
	}{
		{"today passes same day", PeriodToday, testNow.Add(-2 * time.Hour), true},
		{"today rejects yesterday", PeriodToday, testNow.Add(-24 * time.Hour), false},
		{"week passes 6 days", PeriodWeek, testNow.AddDate(0, 0, -6), true},
		{"week rejects 8 days", PeriodWeek, testNow.AddDate(0, 0, -8), false},
		{"month passes 20 days", PeriodMonth, testNow.AddDate(0, 0, -20), true},
		{"month rejects 40 days", PeriodMonth, testNow.AddDate(0, 0, -40), false},
		{"all passes anything", PeriodAll, testNow.AddDate(-1, 0, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := doc(t, tc.ts)
			f := mustNew(t, TypeAll, tc.period, AnyAuthor, false, false)
			if got := f.Matches(&d, testNow); got != tc.want {
				t.Errorf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}
