// Package store defines the persistence interfaces for users and their
// per-word progress, the shared transaction helper, and the error values
// implementations map database failures onto. Business code depends on
// these interfaces only; the Postgres implementations live in
// internal/platform/postgres.
package store
