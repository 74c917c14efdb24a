// Package postgres implements the store interfaces using a PostgreSQL
// database accessed through database/sql with the pgx driver. Database
// errors are mapped onto the store package's sentinel errors so callers
// never see driver-specific types.
package postgres
