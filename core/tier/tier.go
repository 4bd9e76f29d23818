// Package tier maps named growth tiers to compounding rates.
package tier

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"lpboost/internal/errors"
)

// Default tier rates, percent per LP step. Operators override these via
// config or a rate card.
const (
	DefaultLowRate  = 5.0
	DefaultMidRate  = 10.0
	DefaultHighRate = 20.0
)

// Rates is an immutable tier-name to growth-rate mapping
type Rates struct {
	rates map[string]decimal.Decimal
}

// Defaults returns the stock low/mid/high tiers
func Defaults() Rates {
	r, _ := FromMap(map[string]float64{
		"low":  DefaultLowRate,
		"mid":  DefaultMidRate,
		"high": DefaultHighRate,
	})
	return r
}

// FromMap builds Rates from a name->percent map. Names are normalized to
// lower case; negative rates are rejected.
func FromMap(m map[string]float64) (Rates, error) {
	rates := make(map[string]decimal.Decimal, len(m))
	for name, pct := range m {
		if pct < 0 {
			return Rates{}, errors.Newf(errors.TypeInput, "tier %q: growth rate must be non-negative, got %v", name, pct)
		}
		rates[Normalize(name)] = decimal.NewFromFloat(pct)
	}
	return Rates{rates: rates}, nil
}

// FromDecimals builds Rates from already-parsed decimal percentages
func FromDecimals(m map[string]decimal.Decimal) (Rates, error) {
	rates := make(map[string]decimal.Decimal, len(m))
	for name, pct := range m {
		if pct.IsNegative() {
			return Rates{}, errors.Newf(errors.TypeInput, "tier %q: growth rate must be non-negative, got %s", name, pct)
		}
		rates[Normalize(name)] = pct
	}
	return Rates{rates: rates}, nil
}

// Normalize returns the canonical form of a tier name: lower-cased and
// trimmed. Rates store and look up names in this form.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Rate looks up a tier by name. Unknown names are a usage error; there is
// no silent default.
func (r Rates) Rate(name string) (decimal.Decimal, error) {
	rate, ok := r.rates[Normalize(name)]
	if !ok {
		return decimal.Decimal{}, errors.Newf(errors.TypeInput, "unknown growth tier: %q", name)
	}
	return rate, nil
}

// Names returns the defined tier names, sorted
func (r Rates) Names() []string {
	names := make([]string, 0, len(r.rates))
	for name := range r.rates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a float copy of the rates for serialization
func (r Rates) Map() map[string]float64 {
	out := make(map[string]float64, len(r.rates))
	for name, rate := range r.rates {
		out[name] = rate.InexactFloat64()
	}
	return out
}

// Len returns the number of defined tiers
func (r Rates) Len() int {
	return len(r.rates)
}
