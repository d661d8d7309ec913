package currency

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/deskhub-cloud/deskhub/internal/domain"
	domcur "github.com/deskhub-cloud/deskhub/internal/domain/currency"
)

type fixedSource struct {
	table domcur.Table
	err   error
}

func (f *fixedSource) Rates(_ context.Context, _ domain.Rand) (domcur.Table, error) {
	return f.table, f.err
}

type zeroRand struct{}

func (zeroRand) IntN(int) int     { return 0 }
func (zeroRand) Float64() float64 { return 0 }

func mustRate(t *testing.T, code string, value float64) domcur.Rate {
	t.Helper()
	r, err := domcur.NewRate(code, value, 0)
	if err != nil {
		t.Fatalf("rate %s: %v", code, err)
	}
	return r
}

func demoTable(t *testing.T) domcur.Table {
	t.Helper()
	return domcur.NewTable(domcur.DefaultBase, []domcur.Rate{
		mustRate(t, "USD", 88),
		mustRate(t, "EUR", 96),
	})
}

func TestConvert(t *testing.T) {
	svc := New(&fixedSource{table: demoTable(t)}, zeroRand{})

	tests := []struct {
		name      string
		amount    string
		from, to  string
		want      float64
		wantCross float64
	}{
		{"usd to rub", "100", "USD", "RUB", 8800, 88},
		{"rub to usd", "88", "RUB", "USD", 1, 1.0 / 88},
		{"cross pair", "96", "EUR", "USD", 96 * 96 / 88, 96.0 / 88},
		{"comma separator", "2,5", "USD", "RUB", 220, 88},
		{"identity", "7", "USD", "USD", 7, 1},
		{"unknown code degrades to unit", "5", "XXX", "RUB", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := svc.Convert(context.Background(), tt.amount, tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !conv.Available() {
				t.Fatal("conversion unavailable")
			}
			if math.Abs(conv.Result()-tt.want) > 1e-9 {
				t.Errorf("result = %v, want %v", conv.Result(), tt.want)
			}
			if math.Abs(conv.CrossRate()-tt.wantCross) > 1e-9 {
				t.Errorf("cross rate = %v, want %v", conv.CrossRate(), tt.wantCross)
			}
		})
	}
}

func TestConvertUnparseableAmount(t *testing.T) {
	svc := New(&fixedSource{table: demoTable(t)}, zeroRand{})

	for _, amount := range []string{"", "abc", "1.2.3", "12,34,56"} {
		conv, err := svc.Convert(context.Background(), amount, "USD", "RUB")
		if err != nil {
			t.Fatalf("amount %q: unexpected error: %v", amount, err)
		}
		if conv.Available() {
			t.Errorf("amount %q: expected unavailable conversion", amount)
		}
	}
}

func TestRatesSourceError(t *testing.T) {
	wantErr := errors.New("rates down")
	svc := New(&fixedSource{err: wantErr}, zeroRand{})

	if _, err := svc.Rates(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Rates error = %v, want wrapped %v", err, wantErr)
	}
	if _, err := svc.Convert(context.Background(), "1", "USD", "RUB"); !errors.Is(err, wantErr) {
		t.Fatalf("Convert error = %v, want wrapped %v", err, wantErr)
	}
}
