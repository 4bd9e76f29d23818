// Package api - request and response types
package api

import (
	"lpboost/core/quote"
)

// StateInput is a rank/division/LP triple as supplied by clients
type StateInput struct {
	Rank     string  `json:"rank"`
	Division string  `json:"division"`
	LP       float64 `json:"lp"`
}

// QuoteRequest is the body of POST /quote
type QuoteRequest struct {
	// Current is the player's current standing
	Current StateInput `json:"current"`

	// Target is the requested standing
	Target StateInput `json:"target"`

	// BasePrice is the price of the first LP step
	BasePrice float64 `json:"base_price"`

	// Tier names the growth tier to apply
	Tier string `json:"tier"`

	// Rates optionally overrides the configured tier rates
	Rates map[string]float64 `json:"rates,omitempty"`

	// Currency is the quote currency code
	Currency string `json:"currency,omitempty"`
}

// QuoteResponse is the body of a successful POST /quote
type QuoteResponse struct {
	// Quote is the computed quote; totals are zero when Forward is false
	Quote *quote.Quote `json:"quote"`

	// Forward reports whether the request asked for forward progress
	Forward bool `json:"forward"`

	// Metadata contains execution context
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata carries execution context for a response
type ResponseMetadata struct {
	// InputHash is a deterministic hash of the request
	InputHash string `json:"input_hash"`

	// EngineVersion is the quote engine version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the computation time in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// LadderResponse is the body of GET /ladder
type LadderResponse struct {
	Positions []LadderPosition `json:"positions"`
	Count     int              `json:"count"`
}

// LadderPosition is one rung of the ladder
type LadderPosition struct {
	Position int    `json:"position"`
	Rank     string `json:"rank"`
	Division string `json:"division"`
}

// TiersResponse is the body of GET /tiers
type TiersResponse struct {
	Tiers map[string]float64 `json:"tiers"`
}
