package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/norsklab/norsk-api/internal/api/shared"
	"github.com/norsklab/norsk-api/internal/content"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/platform/logger"
)

// ContentHandler serves the read-only vocabulary and grammar catalog.
type ContentHandler struct {
	catalog *content.Catalog
	logger  *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(catalog *content.Catalog, logger *slog.Logger) *ContentHandler {
	if catalog == nil {
		panic("catalog cannot be nil for ContentHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for ContentHandler")
	}
	return &ContentHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "content_handler")),
	}
}

// ListLevels handles GET /api/levels.
func (h *ContentHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.Levels())
}

// ListWords handles GET /api/levels/{level}/words. The optional category
// query parameter narrows the list.
func (h *ContentHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	level, ok := levelParam(w, r)
	if !ok {
		return
	}

	words, err := h.catalog.WordsByLevel(level, r.URL.Query().Get("category"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, WordsResponse{Level: level, Words: words})
}

// ListCategories handles GET /api/levels/{level}/categories.
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	level, ok := levelParam(w, r)
	if !ok {
		return
	}
	categories := h.catalog.Categories(level)
	if categories == nil {
		categories = []string{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{Level: level, Categories: categories})
}

// Flashcards handles GET /api/flashcards/{level}?direction=.
func (h *ContentHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	level, ok := levelParam(w, r)
	if !ok {
		return
	}
	dir, err := content.ParseDirection(r.URL.Query().Get("direction"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deck, err := content.NewDeck(h.catalog, level, dir)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("serving flashcards",
		slog.String("level", level.String()),
		slog.String("direction", string(dir)),
		slog.Int("cards", len(deck.Cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, deck)
}

// Grammar handles GET /api/grammar and GET /api/grammar/{level}.
func (h *ContentHandler) Grammar(w http.ResponseWriter, r *http.Request) {
	levels := domain.Levels()
	if chi.URLParam(r, "level") != "" {
		level, ok := levelParam(w, r)
		if !ok {
			return
		}
		levels = []domain.Level{level}
	}

	topics := []domain.GrammarTopic{}
	for _, l := range levels {
		topics = append(topics, h.catalog.GrammarTopics(l)...)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, GrammarResponse{Topics: topics})
}

// levelParam parses the {level} path parameter, writing a 400 on failure.
func levelParam(w http.ResponseWriter, r *http.Request) (domain.Level, bool) {
	level, err := domain.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", false
	}
	return level, true
}
