package agent

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// QueryService is the orchestrator surface the handler depends on.
type QueryService interface {
	ProcessQuery(ctx context.Context, input string) domain.QueryResult
	ExecuteFullQuery(ctx context.Context, sql string, kw domain.Keywords, onProgress func(int)) domain.QueryResult
	ExampleQueries() []string
	PopularKeywords() domain.PopularKeywords
	DataStats() domain.DatasetStats
}

type Handler struct {
	service QueryService
}

func NewHandler(service QueryService) *Handler {
	return &Handler{service: service}
}

// ProcessQuery handles POST /agent/query: extract, compile, preview.
func (h *Handler) ProcessQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.service.ProcessQuery(ctx, req.Input)
	writeJSON(ctx, w, http.StatusOK, adapters.MapDomainResultToApi(result))
}

// ExecuteQuery handles POST /agent/execute: run a previewed query in full.
// Progress is a terminal affordance; the HTTP surface returns only the
// final result.
func (h *Handler) ExecuteQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	kw := adapters.MapApiKeywordsToDomain(req.Keywords)
	result := h.service.ExecuteFullQuery(ctx, req.SQL, kw, nil)
	writeJSON(ctx, w, http.StatusOK, adapters.MapDomainResultToApi(result))
}

// GetExamples handles GET /agent/examples.
func (h *Handler) GetExamples(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	popular := h.service.PopularKeywords()
	writeJSON(ctx, w, http.StatusOK, api.Examples{
		Queries:    h.service.ExampleQueries(),
		Brands:     popular.Brands,
		Categories: popular.Categories,
		Timeframes: popular.Timeframes,
	})
}

// GetDatasetStats handles GET /agent/dataset.
func (h *Handler) GetDatasetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, adapters.MapDomainStatsToApi(h.service.DataStats()))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	logger := zerolog.Ctx(ctx)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, map[string]string{"error": message})
}
