// Package postgres provides PostgreSQL implementations of the store
// interfaces, the schema migrations embedded in the binary, and the mapping
// from PostgreSQL error codes to store errors. Connections go through
// database/sql with the pgx stdlib driver.
package postgres
