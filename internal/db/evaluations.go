package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dedshivam/code4edutech/internal/types"
)

// SaveEvaluation stores a scoring outcome and returns its assigned ID.
func (db *DB) SaveEvaluation(ctx context.Context, jobID, resumeID uuid.UUID, result *types.EvaluationResult) (uuid.UUID, error) {
	missingJSON, err := json.Marshal(result.MissingSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}
	suggestionsJSON, err := json.Marshal(result.ImprovementSuggestions)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	detailsJSON, err := json.Marshal(result.Details)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal evaluation details: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO evaluations (job_id, resume_id, relevance_score,
		                          hard_match_score, semantic_match_score,
		                          verdict, missing_skills,
		                          improvement_suggestions, evaluation_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		jobID, resumeID, result.RelevanceScore, result.HardMatchScore,
		result.SemanticMatchScore, string(result.Verdict), missingJSON,
		suggestionsJSON, detailsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return id, nil
}

// ListEvaluationsForJob returns every evaluation for a job, best first.
func (db *DB) ListEvaluationsForJob(ctx context.Context, jobID uuid.UUID) ([]Evaluation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, resume_id, relevance_score, hard_match_score,
		        semantic_match_score, verdict, missing_skills,
		        improvement_suggestions, evaluation_details, evaluated_at
		 FROM evaluations
		 WHERE job_id = $1
		 ORDER BY relevance_score DESC, evaluated_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []Evaluation
	for rows.Next() {
		var ev Evaluation
		var verdict string
		var missingJSON, suggestionsJSON, detailsJSON []byte

		err := rows.Scan(&ev.ID, &ev.JobID, &ev.ResumeID,
			&ev.Result.RelevanceScore, &ev.Result.HardMatchScore,
			&ev.Result.SemanticMatchScore, &verdict, &missingJSON,
			&suggestionsJSON, &detailsJSON, &ev.EvaluatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation row: %w", err)
		}

		ev.Result.Verdict = types.Verdict(verdict)
		if missingJSON != nil {
			_ = json.Unmarshal(missingJSON, &ev.Result.MissingSkills)
		}
		if suggestionsJSON != nil {
			_ = json.Unmarshal(suggestionsJSON, &ev.Result.ImprovementSuggestions)
		}
		if detailsJSON != nil {
			_ = json.Unmarshal(detailsJSON, &ev.Result.Details)
		}

		evaluations = append(evaluations, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read evaluation rows: %w", err)
	}
	return evaluations, nil
}
