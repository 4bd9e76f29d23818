package tier

import (
	"testing"

	"github.com/shopspring/decimal"

	"lpboost/internal/errors"
)

func TestDefaults(t *testing.T) {
	rates := Defaults()

	cases := map[string]string{"low": "5", "mid": "10", "high": "20"}
	for name, want := range cases {
		got, err := rates.Rate(name)
		if err != nil {
			t.Fatalf("Rate(%q): %v", name, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("Rate(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestRateNormalizesName(t *testing.T) {
	rates := Defaults()
	got, err := rates.Rate("  HIGH ")
	if err != nil {
		t.Fatalf("Rate with unnormalized name: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Rate = %s, want 20", got)
	}
}

// TestUnknownTierFailsFast proves an unknown tier name is rejected, never
// silently defaulted.
func TestUnknownTierFailsFast(t *testing.T) {
	rates := Defaults()
	_, err := rates.Rate("turbo")
	if err == nil {
		t.Fatal("unknown tier name was accepted")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("error type = %v, want %v", errors.TypeOf(err), errors.TypeInput)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  HIGH ": "high",
		"Mid":     "mid",
		"low":     "low",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFromMapRejectsNegativeRate(t *testing.T) {
	_, err := FromMap(map[string]float64{"low": -1})
	if err == nil {
		t.Fatal("negative rate was accepted")
	}
}

func TestNamesSorted(t *testing.T) {
	rates, err := FromMap(map[string]float64{"Mid": 10, "low": 5, "HIGH": 20})
	if err != nil {
		t.Fatal(err)
	}
	names := rates.Names()
	want := []string{"high", "low", "mid"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
