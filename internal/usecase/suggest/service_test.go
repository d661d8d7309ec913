package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/deskhub-cloud/deskhub/internal/repository/demo"
)

type fakeCatalog struct {
	phrases []string
	err     error
}

func (f *fakeCatalog) Suggestions(_ context.Context) ([]string, error) {
	return f.phrases, f.err
}

func TestSuggestEmptyQuery(t *testing.T) {
	svc := New(demo.New())

	got, err := svc.Suggest(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != DefaultCount {
		t.Fatalf("got %d phrases, want %d", len(got), DefaultCount)
	}
	if got[0] != "договоры 2024" {
		t.Errorf("first = %q", got[0])
	}
	// The last two catalog phrases must not appear in the default set.
	for _, p := range got {
		if p == "отчет о продажах" || p == "перевод на английский" {
			t.Errorf("phrase %q beyond the default cut", p)
		}
	}
}

func TestSuggestSubstring(t *testing.T) {
	svc := New(demo.New())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"single match", "план", []string{"стратегический план 2025"}},
		{"case-insensitive", "ПЛАН", []string{"стратегический план 2025"}},
		{"mid-word", "глий", []string{"перевод на английский"}},
		{"multiple in catalog order", "отчет", []string{"финансовые отчеты", "отчет о продажах"}},
		{"no match", "xyz", []string{}},
		{"whitespace trimmed", "  план  ", []string{"стратегический план 2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Suggest(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSuggestCapsMatches(t *testing.T) {
	phrases := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		phrases = append(phrases, "отчет")
	}
	svc := New(&fakeCatalog{phrases: phrases})

	got, err := svc.Suggest(context.Background(), "отчет")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != MaxMatches {
		t.Errorf("got %d matches, want cap %d", len(got), MaxMatches)
	}
}

func TestSuggestCatalogError(t *testing.T) {
	wantErr := errors.New("catalog down")
	svc := New(&fakeCatalog{err: wantErr})

	_, err := svc.Suggest(context.Background(), "план")
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped %v", err, wantErr)
	}
}
