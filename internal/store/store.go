// Package store provides PostgreSQL persistence for match results.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the match_results table if it does not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS match_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			resume_name TEXT NOT NULL,
			job_name TEXT NOT NULL,
			resume JSONB NOT NULL,
			job JSONB NOT NULL,
			result JSONB NOT NULL,
			overall_score INT NOT NULL,
			assessment TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create match_results table: %w", err)
	}
	return nil
}

// SaveMatch stores a scored match and returns its ID
func (s *Store) SaveMatch(ctx context.Context, resumeName, jobName string, resume *types.ResumeRecord, job *types.JDRecord, result *types.MatchResult) (uuid.UUID, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO match_results (resume_name, job_name, resume, job, result, overall_score, assessment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		resumeName, jobName, resumeJSON, jobJSON, resultJSON, result.OverallScore, result.Assessment.Label,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match: %w", err)
	}
	return id, nil
}

// MatchRecord is a stored match result
type MatchRecord struct {
	ID           uuid.UUID          `json:"id"`
	ResumeName   string             `json:"resume_name"`
	JobName      string             `json:"job_name"`
	Resume       types.ResumeRecord `json:"resume"`
	Job          types.JDRecord     `json:"job"`
	Result       types.MatchResult  `json:"result"`
	OverallScore int                `json:"overall_score"`
	Assessment   string             `json:"assessment"`
	CreatedAt    time.Time          `json:"created_at"`
}

// GetMatch retrieves a stored match by ID. Returns nil when not found.
func (s *Store) GetMatch(ctx context.Context, id uuid.UUID) (*MatchRecord, error) {
	var rec MatchRecord
	var resumeJSON, jobJSON, resultJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, resume_name, job_name, resume, job, result, overall_score, assessment, created_at
		 FROM match_results WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.ResumeName, &rec.JobName, &resumeJSON, &jobJSON, &resultJSON, &rec.OverallScore, &rec.Assessment, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if err := json.Unmarshal(resumeJSON, &rec.Resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	if err := json.Unmarshal(jobJSON, &rec.Job); err != nil {
		return nil, fmt.Errorf("failed to decode job: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &rec, nil
}

// MatchSummary is a lightweight view of a stored match for listing
type MatchSummary struct {
	ID           uuid.UUID `json:"id"`
	ResumeName   string    `json:"resume_name"`
	JobName      string    `json:"job_name"`
	OverallScore int       `json:"overall_score"`
	Assessment   string    `json:"assessment"`
	CreatedAt    time.Time `json:"created_at"`
}

// MatchFilters holds optional filters for listing matches
type MatchFilters struct {
	ResumeName string
	JobName    string
	MinScore   int
	Limit      int
}

// ListMatches retrieves stored matches with optional filters, best
// score first
func (s *Store) ListMatches(ctx context.Context, filters MatchFilters) ([]MatchSummary, error) {
	query, args := listQuery(filters)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchSummary
	for rows.Next() {
		var m MatchSummary
		if err := rows.Scan(&m.ID, &m.ResumeName, &m.JobName, &m.OverallScore, &m.Assessment, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func listQuery(filters MatchFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, resume_name, job_name, overall_score, assessment, created_at
		FROM match_results WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.ResumeName != "" {
		query += fmt.Sprintf(" AND resume_name ILIKE $%d", argNum)
		args = append(args, "%"+filters.ResumeName+"%")
		argNum++
	}
	if filters.JobName != "" {
		query += fmt.Sprintf(" AND job_name ILIKE $%d", argNum)
		args = append(args, "%"+filters.JobName+"%")
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY overall_score DESC, created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}

// DeleteMatch removes a stored match
func (s *Store) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM match_results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match not found: %s", id)
	}
	return nil
}
