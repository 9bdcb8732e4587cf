// Package shared holds request-scoped helpers used by both the handlers and
// the middleware: context keys, JSON decoding and response writing.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
)

// ContextKey is the type of context keys set by this package.
type ContextKey string

const (
	// IdentityContextKey holds the caller's domain.Identity.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// WithIdentity stores the caller identity in ctx.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

// IdentityFromContext returns the caller identity, or Anonymous when none
// was set.
func IdentityFromContext(ctx context.Context) domain.Identity {
	identity, ok := ctx.Value(IdentityContextKey).(domain.Identity)
	if !ok {
		return domain.Anonymous()
	}
	return identity
}

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if none is set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns 32 hex characters. If the system random source
// fails it falls back to a v4 UUID without dashes, which has the same shape.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return hex.EncodeToString(b)
}
