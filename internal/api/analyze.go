package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

const msgInvalidRequestBody = "invalid request body"

// AnalyzeRequest is the request body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	Query string `json:"query"`
}

// handleAnalyze runs a claim through the analyzer. The analyzer never fails,
// so the only error paths here are malformed request bodies and blank
// queries; the web form cannot submit either, but curl can.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		respondError(w, http.StatusUnprocessableEntity, "query is required")
		return
	}

	result := s.analyzer.Analyze(r.Context(), req.Query)
	respondJSON(w, http.StatusOK, result)
}
