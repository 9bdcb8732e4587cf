// Package domain contains the core business entities, value objects, and
// domain logic of the application: vocabulary items and their levels, users,
// per-word progress records and the caller identity. It is independent of
// any specific infrastructure or delivery mechanism.
package domain
