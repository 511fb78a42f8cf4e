package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dedshivam/code4edutech/internal/types"
)

// SaveJob stores a job posting and returns its assigned ID.
func (db *DB) SaveJob(ctx context.Context, job *Job) (uuid.UUID, error) {
	requiredJSON, err := json.Marshal(job.Requirements.RequiredSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}
	preferredJSON, err := json.Marshal(job.Requirements.PreferredSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal preferred skills: %w", err)
	}
	responsibilitiesJSON, err := json.Marshal(job.Requirements.Responsibilities)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal responsibilities: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, description, required_skills,
		                   preferred_skills, experience_required, education_required,
		                   responsibilities)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		job.Title, job.Company, job.Location, job.Description, requiredJSON,
		preferredJSON, job.Requirements.ExperienceYears,
		job.Requirements.Education.String(), responsibilitiesJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job posting by ID. A missing job returns (nil, nil).
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	var job Job
	var requiredJSON, preferredJSON, responsibilitiesJSON []byte
	var education string

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, company, location, description, required_skills,
		        preferred_skills, experience_required, education_required,
		        responsibilities, created_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
		&requiredJSON, &preferredJSON, &job.Requirements.ExperienceYears,
		&education, &responsibilitiesJSON, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	job.Requirements.Education = types.ParseEducationLevel(education)
	if requiredJSON != nil {
		_ = json.Unmarshal(requiredJSON, &job.Requirements.RequiredSkills)
	}
	if preferredJSON != nil {
		_ = json.Unmarshal(preferredJSON, &job.Requirements.PreferredSkills)
	}
	if responsibilitiesJSON != nil {
		_ = json.Unmarshal(responsibilitiesJSON, &job.Requirements.Responsibilities)
	}

	return &job, nil
}

// ListJobs returns all stored jobs, newest first.
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, location, created_at
		 FROM jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}
