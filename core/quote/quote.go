// Package quote orchestrates gap calculation and price progression into a
// full boost quote.
// The package is ONLY responsible for composing the core calculators; it
// holds no pricing arithmetic of its own.
package quote

import (
	"github.com/shopspring/decimal"

	"lpboost/core/gap"
	"lpboost/core/ladder"
	"lpboost/core/progression"
	"lpboost/core/tier"
	"lpboost/internal/errors"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Request collects every input of a single quote computation. All inputs
// travel in this one immutable value; the engine keeps no ambient state.
type Request struct {
	// Current is the player's current ladder state
	Current ladder.State `json:"current"`

	// Target is the requested ladder state
	Target ladder.State `json:"target"`

	// BasePrice is the price of the first LP step, must be positive
	BasePrice decimal.Decimal `json:"base_price"`

	// Tier names the growth tier to apply
	Tier string `json:"tier"`

	// Rates is the tier-name to growth-rate mapping
	Rates tier.Rates `json:"-"`

	// Currency is the quote currency
	Currency Currency `json:"currency,omitempty"`
}

// Quote is the complete pricing result for one request.
// A non-forward request produces a Quote whose Gap is zero; callers check
// Forward() before rendering totals.
type Quote struct {
	// Gap is the LP distance from current to target
	Gap gap.Result `json:"gap"`

	// Tier is the normalized growth tier that was applied
	Tier string `json:"tier"`

	// Rate is the per-step growth percentage
	Rate decimal.Decimal `json:"rate"`

	// BasePrice is the request base price
	BasePrice decimal.Decimal `json:"base_price"`

	// ReferenceBase is the adjusted base derived from the reference path:
	// the final step price of a progression from the ladder floor to the
	// player's current standing
	ReferenceBase decimal.Decimal `json:"reference_base"`

	// StandardTotal is the client-path total using the request base price
	StandardTotal decimal.Decimal `json:"standard_total"`

	// AdjustedTotal is the client-path total using ReferenceBase
	AdjustedTotal decimal.Decimal `json:"adjusted_total"`

	// NextLPPrice is the marginal price of the single next LP
	NextLPPrice decimal.Decimal `json:"next_lp_price"`

	// StandardRows is the sampled progression table for the standard path
	StandardRows []progression.Row `json:"standard_rows,omitempty"`

	// AdjustedRows is the sampled progression table for the adjusted path
	AdjustedRows []progression.Row `json:"adjusted_rows,omitempty"`

	// Currency is the quote currency
	Currency Currency `json:"currency"`
}

// Forward reports whether the request asked for forward progress
func (q *Quote) Forward() bool {
	return q.Gap.Forward()
}

// Engine computes quotes. It is stateless and safe for concurrent use.
type Engine struct{}

// NewEngine creates a quote engine
func NewEngine() *Engine {
	return &Engine{}
}

// Quote prices a boost request.
//
// Path composition order matters: the reference path runs first, from the
// ladder floor to the current state, and its final step price becomes the
// base of the adjusted client path. Swapping which run feeds the other
// changes every downstream total.
func (e *Engine) Quote(req Request) (*Quote, error) {
	if !req.BasePrice.IsPositive() {
		return nil, errors.Newf(errors.TypeInput, "base price must be positive, got %s", req.BasePrice)
	}

	rates := req.Rates
	if rates.Len() == 0 {
		rates = tier.Defaults()
	}
	rate, err := rates.Rate(req.Tier)
	if err != nil {
		return nil, err
	}

	g, err := gap.Calculate(req.Current, req.Target)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = CurrencyUSD
	}

	q := &Quote{
		Gap:       g,
		Tier:      tier.Normalize(req.Tier),
		Rate:      rate,
		BasePrice: req.BasePrice,
		Currency:  currency,
	}
	if !g.Forward() {
		return q, nil
	}

	// Reference path: ladder floor to current standing. Only its final
	// step price is used, as the adjusted base for the client path.
	refGap, err := gap.Calculate(ladder.Floor(), req.Current)
	if err != nil {
		return nil, err
	}
	ref := progression.Run(req.BasePrice, refGap.Steps(), rate)
	q.ReferenceBase = ref.FinalStepPrice

	standard := progression.Run(req.BasePrice, g.Steps(), rate)
	q.StandardTotal = standard.TotalPrice
	q.StandardRows = standard.Rows

	adjusted := progression.Run(ref.FinalStepPrice, g.Steps(), rate)
	q.AdjustedTotal = adjusted.TotalPrice
	q.AdjustedRows = adjusted.Rows

	q.NextLPPrice = progression.NextStepPrice(req.BasePrice, int(req.Current.LP.IntPart()), rate)

	return q, nil
}
