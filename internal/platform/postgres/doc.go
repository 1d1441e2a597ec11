// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, using the pgx driver through
// database/sql. Database errors are mapped onto the store error taxonomy
// so callers never see driver-level error types.
package postgres
