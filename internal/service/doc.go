// Package service contains the application use cases. It orchestrates the
// store interfaces (internal/store) to record quiz attempts for signed-in
// learners and to report the words they struggle with.
//
// Services receive their dependencies through constructor injection and never
// depend on a specific database implementation. Recording is best effort:
// persistence failures are logged and reported as a status, never retried.
package service
