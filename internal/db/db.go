// Package db provides PostgreSQL persistence for jobs, resumes, and
// evaluation results. The store is an optional collaborator: every CLI
// path works without a database URL.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// schema is the bootstrap DDL. Statements are idempotent so EnsureSchema
// is safe to run on every start.
const schema = `
CREATE TABLE IF NOT EXISTS jobs (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title TEXT NOT NULL,
    company TEXT,
    location TEXT,
    description TEXT NOT NULL,
    required_skills JSONB,
    preferred_skills JSONB,
    experience_required INTEGER NOT NULL DEFAULT 0,
    education_required TEXT NOT NULL DEFAULT 'unknown',
    responsibilities JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS resumes (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    filename TEXT NOT NULL,
    candidate_name TEXT,
    candidate_email TEXT,
    extracted_text TEXT NOT NULL,
    skills JSONB,
    experience_section TEXT,
    education_section TEXT,
    uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS evaluations (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    job_id UUID NOT NULL REFERENCES jobs (id),
    resume_id UUID NOT NULL REFERENCES resumes (id),
    relevance_score DOUBLE PRECISION NOT NULL,
    hard_match_score DOUBLE PRECISION NOT NULL,
    semantic_match_score DOUBLE PRECISION NOT NULL,
    verdict TEXT NOT NULL,
    missing_skills JSONB,
    improvement_suggestions JSONB,
    evaluation_details JSONB,
    evaluated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_evaluations_job_id ON evaluations (job_id);
`

// EnsureSchema creates the tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
