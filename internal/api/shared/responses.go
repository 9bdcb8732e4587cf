package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/norsklab/norsk-api/internal/platform/logger"
	"github.com/norsklab/norsk-api/internal/redact"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// ResponseOption adjusts how RespondWithErrorAndLog logs.
type ResponseOption func(*errorLog)

type errorLog struct {
	warnOnClientError bool
}

// WithElevatedLogLevel raises 4xx logging from DEBUG to WARN, for client
// errors worth noticing such as rejected tokens.
func WithElevatedLogLevel() ResponseOption {
	return func(l *errorLog) { l.warnOnClientError = true }
}

func (l errorLog) level(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	if l.warnOnClientError && status >= http.StatusBadRequest {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}

// RespondWithJSON encodes data as the response body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithError is RespondWithErrorAndLog without an underlying error.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorAndLog(w, r, status, message, nil)
}

// RespondWithErrorAndLog sends userMessage to the client and logs err
// (redacted) with the request's trace ID. The client never sees err.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	var l errorLog
	for _, opt := range opts {
		opt(&l)
	}

	ctx := r.Context()
	traceID := GetTraceID(ctx)
	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}
	logger.FromContext(ctx).LogAttrs(ctx, l.level(status), "API error response", attrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Error: userMessage, TraceID: traceID})
}
