// Package postgres implements the store interfaces using PostgreSQL.
// Each store takes a store.DBTX, so the same code runs against a *sql.DB
// or a *sql.Tx. Job configurations are stored as JSONB.
package postgres
