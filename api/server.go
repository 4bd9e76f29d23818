// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"lpboost/core/ladder"
	"lpboost/core/quote"
	"lpboost/core/tier"
	"lpboost/internal/errors"
	"lpboost/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *quote.Engine
	mux     *http.ServeMux
	version string
	rates   tier.Rates
}

// NewServer creates a new API server with the given default tier rates
func NewServer(version string, rates tier.Rates) *Server {
	if rates.Len() == 0 {
		rates = tier.Defaults()
	}

	s := &Server{
		engine:  quote.NewEngine(),
		mux:     http.NewServeMux(),
		version: version,
		rates:   rates,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoint
	s.mux.HandleFunc("POST /quote", s.handleQuote)

	// Supporting endpoints
	s.mux.HandleFunc("GET /ladder", s.handleLadder)
	s.mux.HandleFunc("GET /tiers", s.handleTiers)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	engineReq, err := s.buildRequest(&req)
	if err != nil {
		s.writeError(w, string(errors.TypeOf(err)), err.Error(), http.StatusBadRequest)
		return
	}

	// Execute engine (NO PRICING LOGIC HERE)
	q, err := s.engine.Quote(engineReq)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.IsType(err, errors.TypeInput) {
			status = http.StatusBadRequest
		}
		s.writeError(w, string(errors.TypeOf(err)), err.Error(), status)
		return
	}

	logging.Debug("quote computed",
		zap.String("current", engineReq.Current.String()),
		zap.String("target", engineReq.Target.String()),
		zap.Bool("forward", q.Forward()))

	s.writeJSON(w, &QuoteResponse{
		Quote:   q,
		Forward: q.Forward(),
		Metadata: &ResponseMetadata{
			InputHash:     computeInputHash(&req),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// buildRequest validates and converts an API request into an engine request
func (s *Server) buildRequest(req *QuoteRequest) (quote.Request, error) {
	current, err := ladder.ParseState(req.Current.Rank, req.Current.Division, decimal.NewFromFloat(req.Current.LP))
	if err != nil {
		return quote.Request{}, err
	}
	target, err := ladder.ParseState(req.Target.Rank, req.Target.Division, decimal.NewFromFloat(req.Target.LP))
	if err != nil {
		return quote.Request{}, err
	}

	rates := s.rates
	if len(req.Rates) > 0 {
		rates, err = tier.FromMap(req.Rates)
		if err != nil {
			return quote.Request{}, err
		}
	}

	return quote.Request{
		Current:   current,
		Target:    target,
		BasePrice: decimal.NewFromFloat(req.BasePrice),
		Tier:      req.Tier,
		Rates:     rates,
		Currency:  quote.Currency(req.Currency),
	}, nil
}

// handleLadder handles GET /ladder
func (s *Server) handleLadder(w http.ResponseWriter, r *http.Request) {
	resp := &LadderResponse{}
	for _, rank := range ladder.Ranks {
		for _, div := range ladder.Divisions {
			pos, _ := ladder.Position(rank, div)
			resp.Positions = append(resp.Positions, LadderPosition{
				Position: pos,
				Rank:     string(rank),
				Division: string(div),
			})
		}
	}
	resp.Count = len(resp.Positions)
	s.writeJSON(w, resp, http.StatusOK)
}

// handleTiers handles GET /tiers
func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, &TiersResponse{Tiers: s.rates.Map()}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "lpboost",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func computeInputHash(req *QuoteRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
