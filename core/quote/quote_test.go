package quote

import (
	"testing"

	"github.com/shopspring/decimal"

	"lpboost/core/gap"
	"lpboost/core/ladder"
	"lpboost/core/progression"
	"lpboost/internal/errors"
)

func state(t *testing.T, rank, div string, lp float64) ladder.State {
	t.Helper()
	s, err := ladder.ParseState(rank, div, decimal.NewFromFloat(lp))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestQuoteForwardRequest(t *testing.T) {
	engine := NewEngine()
	q, err := engine.Quote(Request{
		Current:   state(t, "Iron", "IV", 90),
		Target:    state(t, "Iron", "III", 10),
		BasePrice: decimal.RequireFromString("0.5"),
		Tier:      "mid",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !q.Forward() {
		t.Fatal("forward request reported as non-forward")
	}
	if !q.Gap.TotalLP.Equal(decimal.NewFromInt(20)) {
		t.Errorf("TotalLP = %s, want 20", q.Gap.TotalLP)
	}
	if !q.StandardTotal.IsPositive() {
		t.Errorf("StandardTotal = %s, want positive", q.StandardTotal)
	}
	if !q.AdjustedTotal.IsPositive() {
		t.Errorf("AdjustedTotal = %s, want positive", q.AdjustedTotal)
	}
	if q.Currency != CurrencyUSD {
		t.Errorf("Currency = %s, want USD", q.Currency)
	}
}

// TestQuoteChainingContract proves the adjusted path is exactly a
// progression run seeded with the reference path's final step price.
func TestQuoteChainingContract(t *testing.T) {
	engine := NewEngine()
	base := decimal.RequireFromString("0.5")

	req := Request{
		Current:   state(t, "Silver", "II", 40),
		Target:    state(t, "Gold", "IV", 25),
		BasePrice: base,
		Tier:      "high",
	}
	q, err := engine.Quote(req)
	if err != nil {
		t.Fatal(err)
	}

	// Reference path: ladder floor to the current standing.
	refGap, err := gap.Calculate(ladder.Floor(), req.Current)
	if err != nil {
		t.Fatal(err)
	}
	rate := decimal.NewFromInt(20)
	ref := progression.Run(base, refGap.Steps(), rate)

	if !q.ReferenceBase.Equal(ref.FinalStepPrice) {
		t.Errorf("ReferenceBase = %s, want %s", q.ReferenceBase, ref.FinalStepPrice)
	}

	want := progression.Run(ref.FinalStepPrice, q.Gap.Steps(), rate)
	if !q.AdjustedTotal.Equal(want.TotalPrice) {
		t.Errorf("AdjustedTotal = %s, want %s", q.AdjustedTotal, want.TotalPrice)
	}
}

// TestQuoteAtFloorAdjustedEqualsStandard proves the reference path is a
// no-op for a client starting at the bottom of the ladder.
func TestQuoteAtFloorAdjustedEqualsStandard(t *testing.T) {
	engine := NewEngine()
	q, err := engine.Quote(Request{
		Current:   ladder.Floor(),
		Target:    state(t, "Bronze", "IV", 0),
		BasePrice: decimal.RequireFromString("0.5"),
		Tier:      "low",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !q.ReferenceBase.Equal(q.BasePrice) {
		t.Errorf("ReferenceBase = %s, want base %s", q.ReferenceBase, q.BasePrice)
	}
	if !q.AdjustedTotal.Equal(q.StandardTotal) {
		t.Errorf("AdjustedTotal = %s, StandardTotal = %s, want equal", q.AdjustedTotal, q.StandardTotal)
	}
}

func TestQuoteNonForwardIsSentinel(t *testing.T) {
	engine := NewEngine()
	q, err := engine.Quote(Request{
		Current:   state(t, "Gold", "I", 50),
		Target:    state(t, "Silver", "IV", 0),
		BasePrice: decimal.RequireFromString("0.5"),
		Tier:      "mid",
	})
	if err != nil {
		t.Fatalf("non-forward request must not error: %v", err)
	}

	if q.Forward() {
		t.Error("non-forward request reported as forward")
	}
	if !q.StandardTotal.IsZero() || !q.AdjustedTotal.IsZero() {
		t.Errorf("totals = %s/%s, want zero", q.StandardTotal, q.AdjustedTotal)
	}
	if len(q.StandardRows) != 0 {
		t.Errorf("rows = %d, want none", len(q.StandardRows))
	}
}

// TestQuoteCarriesNormalizedTier proves the quote echoes the canonical
// tier name, not the raw request spelling.
func TestQuoteCarriesNormalizedTier(t *testing.T) {
	engine := NewEngine()
	q, err := engine.Quote(Request{
		Current:   state(t, "Iron", "IV", 0),
		Target:    state(t, "Bronze", "IV", 0),
		BasePrice: decimal.RequireFromString("0.5"),
		Tier:      "  MID ",
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.Tier != "mid" {
		t.Errorf("Tier = %q, want %q", q.Tier, "mid")
	}
}

func TestQuoteUnknownTierRejected(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Quote(Request{
		Current:   state(t, "Iron", "IV", 0),
		Target:    state(t, "Bronze", "IV", 0),
		BasePrice: decimal.RequireFromString("0.5"),
		Tier:      "ultra",
	})
	if err == nil {
		t.Fatal("unknown tier was accepted")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("error type = %v, want %v", errors.TypeOf(err), errors.TypeInput)
	}
}

func TestQuoteRequiresPositiveBasePrice(t *testing.T) {
	engine := NewEngine()
	for _, base := range []string{"0", "-1"} {
		_, err := engine.Quote(Request{
			Current:   state(t, "Iron", "IV", 0),
			Target:    state(t, "Bronze", "IV", 0),
			BasePrice: decimal.RequireFromString(base),
			Tier:      "mid",
		})
		if err == nil {
			t.Errorf("base price %s was accepted", base)
		}
	}
}

// TestQuoteNextLPPriceMatchesEngine proves the marginal price agrees with
// a full progression run of currentLP+1 steps.
func TestQuoteNextLPPriceMatchesEngine(t *testing.T) {
	engine := NewEngine()
	base := decimal.RequireFromString("0.5")
	q, err := engine.Quote(Request{
		Current:   state(t, "Gold", "II", 40),
		Target:    state(t, "Gold", "I", 0),
		BasePrice: base,
		Tier:      "mid",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := progression.Run(base, 41, decimal.NewFromInt(10)).FinalStepPrice
	if !q.NextLPPrice.Round(8).Equal(want.Round(8)) {
		t.Errorf("NextLPPrice = %s, want %s", q.NextLPPrice, want)
	}
}
