// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database: connection setup from the environment, schema
// migration, and per-test transactions that are always rolled back.
//
// Tests using this package should carry the integration build tag and are
// skipped when no database URL is configured:
//
//	//go:build integration
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			// ...
//		})
//	}
package testdb
