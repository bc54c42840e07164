package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash BYTEA NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS loans (
		id           TEXT PRIMARY KEY,
		applicant_id TEXT NOT NULL,
		amount       TEXT NOT NULL,
		tenure       TEXT NOT NULL,
		income       TEXT NOT NULL,
		purpose      TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'Pending',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS loan_documents (
		id           TEXT PRIMARY KEY,
		loan_id      TEXT NOT NULL REFERENCES loans(id),
		bucket       TEXT NOT NULL,
		object_key   TEXT NOT NULL,
		file_name    TEXT NOT NULL,
		content_type TEXT NOT NULL,
		size_bytes   BIGINT NOT NULL,
		checksum     BYTEA NOT NULL,
		signature    BYTEA NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_loans_status ON loans(status)`,
	`CREATE INDEX IF NOT EXISTS idx_loan_documents_loan_id ON loan_documents(loan_id)`,
}

// Migrate applies the schema idempotently at startup. Email uniqueness
// lives in the users table constraint; that is the only cross-request
// consistency the store is asked to guarantee.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
