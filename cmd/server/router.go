package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/norsklab/norsk-api/internal/api"
	apiMiddleware "github.com/norsklab/norsk-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	contentHandler := api.NewContentHandler(app.catalog, app.logger)
	quizHandler := api.NewQuizHandler(app.catalog, app.progressService, app.eventEmitter, app.logger)
	progressHandler := api.NewProgressHandler(app.progressService, app.catalog, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/levels", contentHandler.ListLevels)
		r.Get("/levels/{level}/words", contentHandler.ListWords)
		r.Get("/levels/{level}/categories", contentHandler.ListCategories)
		r.Get("/flashcards/{level}", contentHandler.Flashcards)
		r.Get("/grammar", contentHandler.Grammar)
		r.Get("/grammar/{level}", contentHandler.Grammar)

		// Sign-in is optional; the identity decides whether attempts persist.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Identify)

			r.Post("/quiz/start", quizHandler.Start)
			r.Post("/quiz/answer", quizHandler.Answer)
			r.Post("/quiz/advance", quizHandler.Advance)
			r.Post("/quiz/continue", quizHandler.Continue)

			r.Post("/progress/attempts", progressHandler.RecordAttempt)
			r.Get("/progress/weak-words", progressHandler.WeakWords)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
