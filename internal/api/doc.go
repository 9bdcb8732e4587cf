// Package api provides the HTTP handlers: content browsing, flashcards,
// grammar, stateless quiz transitions and progress recording.
package api
