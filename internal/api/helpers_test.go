package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/norsklab/norsk-api/internal/api/shared"
	"github.com/norsklab/norsk-api/internal/content"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/domain/quiz"
	"github.com/norsklab/norsk-api/internal/events"
	"github.com/norsklab/norsk-api/internal/service"
	"github.com/norsklab/norsk-api/internal/testutils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	words := []domain.VocabularyItem{
		{ID: "a1-1", SourceText: "house", TargetText: "hus", Level: domain.LevelA1, Category: "home"},
		{ID: "a1-2", SourceText: "car", TargetText: "bil", Level: domain.LevelA1, Category: "transport"},
		{ID: "a1-3", SourceText: "cat", TargetText: "katt", Level: domain.LevelA1, Category: "animals"},
		{ID: "a2-1", SourceText: "to go", TargetText: "å gå", Level: domain.LevelA2, Category: "verbs"},
		{ID: "b1-1", SourceText: "blueberry", TargetText: "blåbær", Level: domain.LevelB1, Category: "food"},
	}
	grammar := []domain.GrammarTopic{
		{Level: domain.LevelA1, Title: "Nouns", Content: "en, ei, et"},
		{Level: domain.LevelB1, Title: "Passive", Content: "-s passive"},
	}
	c, err := content.NewCatalog(words, grammar)
	require.NoError(t, err)
	return c
}

// MockProgressService mocks service.ProgressService.
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) RecordAttempt(ctx context.Context, identity domain.Identity, wordID string, correct bool) service.RecordResult {
	args := m.Called(ctx, identity, wordID, correct)
	return args.Get(0).(service.RecordResult)
}

func (m *MockProgressService) RecordAttemptAt(ctx context.Context, identity domain.Identity, wordID string, correct bool, at time.Time) service.RecordResult {
	args := m.Called(ctx, identity, wordID, correct, at)
	return args.Get(0).(service.RecordResult)
}

func (m *MockProgressService) FetchWeakWords(ctx context.Context, identity domain.Identity, limit int) service.WeakWordsResult {
	args := m.Called(ctx, identity, limit)
	return args.Get(0).(service.WeakWordsResult)
}

// recordingEmitter keeps every emitted event.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.Event
	err    error
}

func (e *recordingEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return e.err
}

func (e *recordingEmitter) Events() []*events.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*events.Event(nil), e.events...)
}

// firstSource always picks index 0, so draws follow pool order.
type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

type handlerFixture struct {
	router   chi.Router
	progress *MockProgressService
	emitter  *recordingEmitter
	logs     *testutils.LogCapture
}

// newHandlerFixture mounts the handlers the way the server does, with the
// caller identity injected directly instead of through token validation.
func newHandlerFixture(t *testing.T, identity domain.Identity) *handlerFixture {
	t.Helper()
	catalog := testCatalog(t)
	progress := &MockProgressService{}
	emitter := &recordingEmitter{}
	logs := testutils.NewLogCapture()

	contentHandler := NewContentHandler(catalog, logs.Logger())
	quizHandler := NewQuizHandler(catalog, progress, emitter, logs.Logger())
	quizHandler.newSource = func() quiz.RandomSource { return firstSource{} }
	progressHandler := NewProgressHandler(progress, catalog, logs.Logger())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(shared.WithIdentity(req.Context(), identity)))
		})
	})
	r.Get("/api/levels", contentHandler.ListLevels)
	r.Get("/api/levels/{level}/words", contentHandler.ListWords)
	r.Get("/api/levels/{level}/categories", contentHandler.ListCategories)
	r.Get("/api/flashcards/{level}", contentHandler.Flashcards)
	r.Get("/api/grammar", contentHandler.Grammar)
	r.Get("/api/grammar/{level}", contentHandler.Grammar)
	r.Post("/api/quiz/start", quizHandler.Start)
	r.Post("/api/quiz/answer", quizHandler.Answer)
	r.Post("/api/quiz/advance", quizHandler.Advance)
	r.Post("/api/quiz/continue", quizHandler.Continue)
	r.Post("/api/progress/attempts", progressHandler.RecordAttempt)
	r.Get("/api/progress/weak-words", progressHandler.WeakWords)

	return &handlerFixture{router: r, progress: progress, emitter: emitter, logs: logs}
}

func (f *handlerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
