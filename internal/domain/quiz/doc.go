// Package quiz implements the test-mode session engine: batches of up to
// ten vocabulary items, typed answers checked against the Norwegian text,
// and missed items carried over to the front of the next batch.
//
// Every transition is a pure function taking and returning a SessionState,
// so callers own the state and can persist or transmit it freely. The
// package performs no I/O; attempts are reported back as AttemptEvent values
// for the caller to record.
package quiz
