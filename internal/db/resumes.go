package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume stores a resume and returns its assigned ID.
func (db *DB) SaveResume(ctx context.Context, resume *Resume) (uuid.UUID, error) {
	skillsJSON, err := json.Marshal(resume.Skills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (filename, candidate_name, candidate_email,
		                      extracted_text, skills, experience_section,
		                      education_section)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		resume.Filename, resume.CandidateName, resume.CandidateEmail,
		resume.ExtractedText, skillsJSON, resume.ExperienceSection,
		resume.EducationSection,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. A missing resume returns (nil, nil).
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var resume Resume
	var skillsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, candidate_name, candidate_email, extracted_text,
		        skills, experience_section, education_section, uploaded_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.Filename, &resume.CandidateName,
		&resume.CandidateEmail, &resume.ExtractedText, &skillsJSON,
		&resume.ExperienceSection, &resume.EducationSection, &resume.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &resume.Skills)
	}

	return &resume, nil
}
