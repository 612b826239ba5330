package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nworkman/resume-retool/internal/types"
)

// SaveReport stores the optimization report for a run as JSONB.
func (db *DB) SaveReport(ctx context.Context, runID uuid.UUID, report *types.OptimizationReport) error {
	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO optimization_reports (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves the optimization report for a run. Returns nil when no
// report is stored.
func (db *DB) GetReport(ctx context.Context, runID uuid.UUID) (*types.OptimizationReport, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM optimization_reports WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report types.OptimizationReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// SaveResumeText stores the rendered resume text for a run.
func (db *DB) SaveResumeText(ctx context.Context, runID uuid.UUID, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_artifacts (run_id, text_content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET text_content = $2, created_at = NOW()`,
		runID, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume text: %w", err)
	}
	return nil
}
