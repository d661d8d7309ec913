// Package currency implements the multi-currency conversion engine over
// a table of rates expressed in a common base unit.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultBase is the base currency: every rate value is the amount of
// rubles per 1 unit of the rated currency.
const DefaultBase = "RUB"

// Rate is one row of a rate table.
type Rate struct {
	code  string
	value float64 // base units per 1 unit of code
	delta float64 // day-over-day change, percent
}

// NewRate validates and creates a rate.
func NewRate(code string, value, delta float64) (Rate, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Rate{}, fmt.Errorf("currency code is required")
	}
	if !(value > 0) || math.IsInf(value, 0) {
		return Rate{}, fmt.Errorf("rate value for %s must be a positive finite number, got %v", code, value)
	}
	return Rate{code: code, value: value, delta: delta}, nil
}

// Code returns the ISO-like currency code.
func (r Rate) Code() string { return r.code }

// Value returns base units per 1 unit of the currency.
func (r Rate) Value() float64 { return r.value }

// Delta returns the day-over-day change in percent.
func (r Rate) Delta() float64 { return r.delta }

// Table is a normalized rate table. Codes are unique; the base entry
// (value 1) always exists after NewTable.
type Table struct {
	base  string
	rates []Rate
	index map[string]Rate
}

// NewTable builds a table from rates, dropping duplicate codes (first
// entry wins) and synthesizing the base entry when absent.
func NewTable(base string, rates []Rate) Table {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = DefaultBase
	}

	t := Table{base: base, index: make(map[string]Rate, len(rates)+1)}
	for _, r := range rates {
		if _, dup := t.index[r.code]; dup {
			continue
		}
		t.index[r.code] = r
		t.rates = append(t.rates, r)
	}

	if _, ok := t.index[base]; !ok {
		baseRate := Rate{code: base, value: 1, delta: 0}
		t.index[base] = baseRate
		t.rates = append([]Rate{baseRate}, t.rates...)
	}

	return t
}

// Base returns the base currency code.
func (t *Table) Base() string { return t.base }

// Rates returns the table rows in order, base first when synthesized.
func (t *Table) Rates() []Rate { return t.rates }

// Lookup returns the rate for a code.
func (t *Table) Lookup(code string) (Rate, bool) {
	r, ok := t.index[strings.ToUpper(strings.TrimSpace(code))]
	return r, ok
}

// value resolves a code to its base-unit value, degrading to 1.0 for
// unknown codes so a conversion never fails.
func (t *Table) value(code string) float64 {
	if r, ok := t.Lookup(code); ok {
		return r.value
	}
	return 1.0
}

// ParseAmount parses a user-supplied amount accepting either a comma or
// a period as decimal separator. Unparseable input yields NaN.
func ParseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Conversion is the outcome of one convert call.
type Conversion struct {
	result    float64
	crossRate float64
}

// Result returns the converted amount.
func (c Conversion) Result() float64 { return c.result }

// CrossRate returns the price of 1 "from" unit expressed in "to" units.
func (c Conversion) CrossRate() float64 { return c.crossRate }

// Available reports whether the result is finite. Unparseable amounts
// surface here as unavailable rather than as an error.
func (c Conversion) Available() bool {
	return !math.IsNaN(c.result) && !math.IsInf(c.result, 0)
}

// Convert converts amount (as typed by the user) from one code to
// another through the common base. Unknown codes degrade to value 1.0.
func (t *Table) Convert(amount, from, to string) Conversion {
	amt := ParseAmount(amount)
	return t.ConvertValue(amt, from, to)
}

// ConvertValue converts a numeric amount between two codes.
func (t *Table) ConvertValue(amount float64, from, to string) Conversion {
	vFrom := t.value(from)
	vTo := t.value(to)
	return Conversion{
		result:    amount * vFrom / vTo,
		crossRate: vFrom / vTo,
	}
}

// Pair is the (from, to) selection of a converter.
type Pair struct {
	From string
	To   string
}

// Swap relabels the pair; no recomputation happens until the next convert.
func (p Pair) Swap() Pair {
	return Pair{From: p.To, To: p.From}
}
