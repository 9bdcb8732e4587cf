// Package events decouples the code that observes quiz answers from the code
// that persists them.
//
// Handlers publish events through an EventEmitter without knowing which
// EventHandler implementations receive them. The only event today is
// WordAttempted, emitted for every graded answer and consumed by the task
// package, which records it in the background.
package events
