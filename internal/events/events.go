package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
)

// Event types
const (
	// WordAttempted is emitted once per graded quiz answer.
	WordAttempted = "word_attempted"
)

// Event is a notification published by one component for others to act on.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type selects which handlers act on the event
	Type string `json:"type"`

	// Payload contains the type-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent marshals payload and stamps the event with a fresh ID and the
// current time.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// WordAttemptedPayload carries one graded answer and who gave it.
// UserID is nil for anonymous callers.
type WordAttemptedPayload struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email,omitempty"`
	Name    string    `json:"name,omitempty"`
	WordID  string    `json:"word_id"`
	Correct bool      `json:"correct"`
	At      time.Time `json:"at"`
}

// NewWordAttemptedEvent builds a WordAttempted event for identity.
func NewWordAttemptedEvent(identity domain.Identity, wordID string, correct bool, at time.Time) (*Event, error) {
	p := WordAttemptedPayload{WordID: wordID, Correct: correct, At: at.UTC()}
	if id, ok := identity.UserID(); ok {
		p.UserID = id
		p.Email = identity.Email()
		p.Name = identity.Name()
	}
	return NewEvent(WordAttempted, p)
}

// Identity rebuilds the caller identity from the payload.
func (p WordAttemptedPayload) Identity() domain.Identity {
	if p.UserID == uuid.Nil {
		return domain.Anonymous()
	}
	return domain.Authenticated(p.UserID, p.Email, p.Name)
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *Event) error
}
