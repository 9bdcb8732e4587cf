package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/norsklab/norsk-api/internal/api/shared"
	"github.com/norsklab/norsk-api/internal/content"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/platform/logger"
	"github.com/norsklab/norsk-api/internal/service"
)

// ProgressHandler exposes the progress recorder. Outcomes are reported in
// the body as {success, reason}; anonymous callers get success false with
// reason "not_authenticated" rather than an HTTP error.
type ProgressHandler struct {
	progress service.ProgressService
	catalog  *content.Catalog
	logger   *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(progress service.ProgressService, catalog *content.Catalog, logger *slog.Logger) *ProgressHandler {
	if progress == nil {
		panic("progress service cannot be nil for ProgressHandler")
	}
	if catalog == nil {
		panic("catalog cannot be nil for ProgressHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for ProgressHandler")
	}
	return &ProgressHandler{
		progress: progress,
		catalog:  catalog,
		logger:   logger.With(slog.String("component", "progress_handler")),
	}
}

// RecordAttempt handles POST /api/progress/attempts.
func (h *ProgressHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	var req RecordAttemptRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res := h.progress.RecordAttempt(r.Context(), shared.IdentityFromContext(r.Context()), req.WordID, *req.Correct)

	resp := ProgressResponse{Success: res.Success()}
	if !resp.Success {
		resp.Reason = string(res.Status)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// WeakWords handles GET /api/progress/weak-words?limit=.
func (h *ProgressHandler) WeakWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			HandleAPIError(w, r, fmt.Errorf("%w: limit %q", domain.ErrValidation, raw), "")
			return
		}
		limit = n
	}

	res := h.progress.FetchWeakWords(r.Context(), shared.IdentityFromContext(r.Context()), limit)

	resp := WeakWordsResponse{Success: res.Success(), Words: []WeakWord{}}
	if !resp.Success {
		resp.Reason = string(res.Status)
		shared.RespondWithJSON(w, r, http.StatusOK, resp)
		return
	}

	for _, p := range res.Words {
		ww := WeakWord{
			WordID:          p.WordID,
			CorrectCount:    p.CorrectCount,
			IncorrectCount:  p.IncorrectCount,
			LastIncorrectAt: p.LastIncorrectAt,
		}
		if item, ok := h.catalog.Word(p.WordID); ok {
			ww.English = item.SourceText
			ww.Norwegian = item.TargetText
			ww.Level = item.Level
			ww.Category = item.Category
		}
		resp.Words = append(resp.Words, ww)
	}

	log.Debug("weak words fetched", slog.Int("count", len(resp.Words)))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
