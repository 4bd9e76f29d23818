// Package ratecard loads operator pricing rate cards from HCL.
//
// A rate card defines the base LP price, currency, and growth tiers:
//
//	base_price = 0.50
//	currency   = "USD"
//
//	tier "low"  { rate = 5.0 }
//	tier "mid"  { rate = 10.0 }
//	tier "high" { rate = 20.0 }
package ratecard

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"lpboost/core/tier"
	"lpboost/internal/errors"
)

// Card is a parsed rate card
type Card struct {
	// BasePrice is the price of the first LP step
	BasePrice decimal.Decimal

	// Currency is the quote currency code
	Currency string

	// Rates maps tier names to growth percentages
	Rates tier.Rates
}

type cardHCL struct {
	BasePrice *float64  `hcl:"base_price"`
	Currency  *string   `hcl:"currency"`
	Tiers     []tierHCL `hcl:"tier,block"`
}

type tierHCL struct {
	Name string  `hcl:"name,label"`
	Rate float64 `hcl:"rate"`
}

// Default returns a card with stock pricing
func Default() *Card {
	return &Card{
		BasePrice: decimal.NewFromFloat(0.50),
		Currency:  "USD",
		Rates:     tier.Defaults(),
	}
}

// Load reads and parses a rate card file. Missing attributes fall back to
// the stock defaults; a card with no tier blocks keeps the default tiers.
func Load(path string) (*Card, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to read rate card", err)
	}
	return Parse(src, path)
}

// Parse parses rate card source. filename is used for diagnostics only.
func Parse(src []byte, filename string) (*Card, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid rate card", diags)
	}

	var raw cardHCL
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Parsing("invalid rate card", diags)
	}

	card := Default()
	if raw.BasePrice != nil {
		card.BasePrice = decimal.NewFromFloat(*raw.BasePrice)
	}
	if !card.BasePrice.IsPositive() {
		return nil, errors.Newf(errors.TypeInput, "rate card base price must be positive, got %s", card.BasePrice)
	}
	if raw.Currency != nil {
		card.Currency = *raw.Currency
	}

	if len(raw.Tiers) > 0 {
		tiers := make(map[string]float64, len(raw.Tiers))
		for _, t := range raw.Tiers {
			if _, dup := tiers[t.Name]; dup {
				return nil, errors.Newf(errors.TypeParsing, "duplicate tier block: %q", t.Name)
			}
			tiers[t.Name] = t.Rate
		}
		rates, err := tier.FromMap(tiers)
		if err != nil {
			return nil, err
		}
		card.Rates = rates
	}

	return card, nil
}
