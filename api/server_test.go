package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"lpboost/core/tier"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer("test", tier.Defaults())
}

func postQuote(t *testing.T, s *Server, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/quote", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandleQuote(t *testing.T) {
	s := newTestServer(t)
	rec := postQuote(t, s, QuoteRequest{
		Current:   StateInput{Rank: "Iron", Division: "IV", LP: 90},
		Target:    StateInput{Rank: "Iron", Division: "III", LP: 10},
		BasePrice: 0.5,
		Tier:      "mid",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Forward {
		t.Error("forward request reported as non-forward")
	}
	if !resp.Quote.Gap.TotalLP.Equal(decimal.NewFromInt(20)) {
		t.Errorf("TotalLP = %s, want 20", resp.Quote.Gap.TotalLP)
	}
	if resp.Metadata == nil || resp.Metadata.InputHash == "" {
		t.Error("missing response metadata")
	}
}

func TestHandleQuoteNonForward(t *testing.T) {
	s := newTestServer(t)
	rec := postQuote(t, s, QuoteRequest{
		Current:   StateInput{Rank: "Gold", Division: "I", LP: 50},
		Target:    StateInput{Rank: "Silver", Division: "IV", LP: 0},
		BasePrice: 0.5,
		Tier:      "mid",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (non-forward is not an error)", rec.Code)
	}
	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Forward {
		t.Error("non-forward request reported as forward")
	}
}

func TestHandleQuoteBadInputs(t *testing.T) {
	s := newTestServer(t)
	cases := []struct {
		name string
		req  QuoteRequest
	}{
		{"unknown rank", QuoteRequest{
			Current:   StateInput{Rank: "Wood", Division: "IV"},
			Target:    StateInput{Rank: "Iron", Division: "III"},
			BasePrice: 0.5, Tier: "mid",
		}},
		{"unknown division", QuoteRequest{
			Current:   StateInput{Rank: "Iron", Division: "V"},
			Target:    StateInput{Rank: "Iron", Division: "III"},
			BasePrice: 0.5, Tier: "mid",
		}},
		{"unknown tier", QuoteRequest{
			Current:   StateInput{Rank: "Iron", Division: "IV"},
			Target:    StateInput{Rank: "Iron", Division: "III"},
			BasePrice: 0.5, Tier: "turbo",
		}},
		{"non-positive base price", QuoteRequest{
			Current:   StateInput{Rank: "Iron", Division: "IV"},
			Target:    StateInput{Rank: "Iron", Division: "III"},
			BasePrice: 0, Tier: "mid",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postQuote(t, s, tc.req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body)
			}
		})
	}
}

func TestHandleQuoteInvalidJSON(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/quote", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleQuoteCustomRates(t *testing.T) {
	s := newTestServer(t)
	rec := postQuote(t, s, QuoteRequest{
		Current:   StateInput{Rank: "Iron", Division: "IV", LP: 0},
		Target:    StateInput{Rank: "Iron", Division: "III", LP: 0},
		BasePrice: 1,
		Tier:      "flash",
		Rates:     map[string]float64{"flash": 0},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	// Zero growth: 100 steps at exactly the base price.
	if !resp.Quote.StandardTotal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("StandardTotal = %s, want 100", resp.Quote.StandardTotal)
	}
}

func TestHandleLadder(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/ladder", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp LadderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 28 {
		t.Errorf("Count = %d, want 28", resp.Count)
	}
	if resp.Positions[0].Rank != "Iron" || resp.Positions[0].Division != "IV" {
		t.Errorf("first position = %+v, want Iron IV", resp.Positions[0])
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
