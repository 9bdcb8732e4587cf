// Package task runs background work off the request path. Graded quiz
// answers arrive as events, become RecordAttemptTasks on a bounded
// in-memory TaskQueue, and are executed by a WorkerPool.
package task
