package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/dedshivam/code4edutech/internal/types"
)

// Job is a stored job posting with its parsed requirements.
type Job struct {
	ID           uuid.UUID             `json:"id"`
	Title        string                `json:"title"`
	Company      string                `json:"company,omitempty"`
	Location     string                `json:"location,omitempty"`
	Description  string                `json:"description"`
	Requirements types.JobRequirements `json:"requirements"`
	CreatedAt    time.Time             `json:"created_at"`
}

// Resume is a stored resume with its extracted attributes.
type Resume struct {
	ID                uuid.UUID `json:"id"`
	Filename          string    `json:"filename"`
	CandidateName     string    `json:"candidate_name,omitempty"`
	CandidateEmail    string    `json:"candidate_email,omitempty"`
	ExtractedText     string    `json:"extracted_text"`
	Skills            []string  `json:"skills,omitempty"`
	ExperienceSection string    `json:"experience_section,omitempty"`
	EducationSection  string    `json:"education_section,omitempty"`
	UploadedAt        time.Time `json:"uploaded_at"`
}

// Evaluation is a stored scoring outcome linking a resume to a job.
type Evaluation struct {
	ID          uuid.UUID              `json:"id"`
	JobID       uuid.UUID              `json:"job_id"`
	ResumeID    uuid.UUID              `json:"resume_id"`
	Result      types.EvaluationResult `json:"result"`
	EvaluatedAt time.Time              `json:"evaluated_at"`
}
