package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/norsklab/norsk-api/internal/api/shared"
	"github.com/norsklab/norsk-api/internal/content"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/domain/quiz"
	"github.com/norsklab/norsk-api/internal/events"
	"github.com/norsklab/norsk-api/internal/platform/logger"
	"github.com/norsklab/norsk-api/internal/service"
)

// QuizHandler exposes the session engine over HTTP. The server keeps no
// session: clients send the state they were given and get the next one back.
type QuizHandler struct {
	catalog  *content.Catalog
	progress service.ProgressService
	emitter  events.EventEmitter
	logger   *slog.Logger

	// newSource returns the randomness for one transition. nil uses the
	// engine's time-seeded default.
	newSource func() quiz.RandomSource
}

// NewQuizHandler creates a QuizHandler. Graded answers are published on
// emitter for background recording.
func NewQuizHandler(
	catalog *content.Catalog,
	progress service.ProgressService,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *QuizHandler {
	if catalog == nil {
		panic("catalog cannot be nil for QuizHandler")
	}
	if progress == nil {
		panic("progress service cannot be nil for QuizHandler")
	}
	if emitter == nil {
		panic("emitter cannot be nil for QuizHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for QuizHandler")
	}
	return &QuizHandler{
		catalog:  catalog,
		progress: progress,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "quiz_handler")),
	}
}

func (h *QuizHandler) source() quiz.RandomSource {
	if h.newSource == nil {
		return nil
	}
	return h.newSource()
}

// Start handles POST /api/quiz/start.
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StartQuizRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var (
		pool []domain.VocabularyItem
		err  error
	)
	if req.Weak {
		pool, err = h.weakPool(r)
	} else {
		var level domain.Level
		level, err = domain.ParseLevel(req.Level)
		if err == nil {
			pool, err = h.catalog.WordsByLevel(level, req.Category)
		}
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start quiz")
		return
	}

	state, err := quiz.NewSession(pool, h.source())
	if err != nil {
		// Only reachable with an empty pool, which the lookups above reject.
		HandleAPIError(w, r, err, "Failed to start quiz")
		return
	}

	log.Debug("quiz started",
		slog.Bool("weak", req.Weak),
		slog.String("level", req.Level),
		slog.Int("pool", len(pool)))
	shared.RespondWithJSON(w, r, http.StatusOK, newQuizResponse(state))
}

// weakPool resolves the caller's weak words to vocabulary items.
func (h *QuizHandler) weakPool(r *http.Request) ([]domain.VocabularyItem, error) {
	identity := shared.IdentityFromContext(r.Context())
	if !identity.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	res := h.progress.FetchWeakWords(r.Context(), identity, service.MaxWeakWordsLimit)
	if !res.Success() {
		return nil, service.NewServiceError("fetch_weak_words", string(res.Status), nil)
	}

	items := service.WeakWordItems(h.catalog, res.Words)
	if len(items) == 0 {
		return nil, content.ErrNoItems
	}
	return items, nil
}

// Answer handles POST /api/quiz/answer. A graded answer is published as a
// WordAttempted event; publishing failures are logged and never fail the
// request.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AnswerRequest
	if !h.decodeState(w, r, &req, &req.State) {
		return
	}

	next, attempt := quiz.SubmitAnswer(req.State, req.Input)
	resp := newQuizResponse(next)
	resp.Attempt = attempt

	if attempt != nil {
		if item, ok := next.Current(); ok {
			resp.Expected = item.TargetText
		}

		event, err := events.NewWordAttemptedEvent(
			shared.IdentityFromContext(r.Context()), attempt.WordID, attempt.Correct, attempt.At)
		if err == nil {
			err = h.emitter.EmitEvent(r.Context(), event)
		}
		if err != nil {
			log.Warn("failed to publish attempt",
				slog.String("error", err.Error()),
				slog.String("word_id", attempt.WordID))
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Advance handles POST /api/quiz/advance. When the batch completes the
// response carries its summary.
func (h *QuizHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !h.decodeState(w, r, &req, &req.State) {
		return
	}

	next, err := quiz.Advance(req.State)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := newQuizResponse(next)
	if next.Phase == quiz.PhaseBatchComplete {
		summary, err := quiz.Summary(next)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		resp.Summary = &summary
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Continue handles POST /api/quiz/continue. When nothing is left to ask the
// response is {complete: true} with an idle state.
func (h *QuizHandler) Continue(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !h.decodeState(w, r, &req, &req.State) {
		return
	}

	next, err := quiz.Continue(req.State, h.source())
	if errors.Is(err, quiz.ErrEmptyPool) {
		resp := newQuizResponse(next)
		resp.Complete = true
		shared.RespondWithJSON(w, r, http.StatusOK, resp)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newQuizResponse(next))
}

// decodeState decodes req and validates the embedded state, writing an
// error response on failure.
func (h *QuizHandler) decodeState(w http.ResponseWriter, r *http.Request, req interface{}, state *quiz.SessionState) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	if err := state.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}

func newQuizResponse(state quiz.SessionState) QuizResponse {
	resp := QuizResponse{State: state}
	if item, ok := state.Current(); ok {
		resp.Current = &QuizItem{
			WordID:   item.ID,
			Prompt:   item.SourceText,
			Level:    item.Level,
			Category: item.Category,
			Position: state.Index + 1,
			Total:    len(state.Batch),
		}
	}
	return resp
}
