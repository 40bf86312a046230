package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
)

// AnalysisRepository persists computed Bayes factor analyses
type AnalysisRepository struct {
	db *sqlx.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *sqlx.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save stores an analysis record. The full record is kept as a JSON payload
// alongside the columns used for listing and filtering.
func (r *AnalysisRepository) Save(ctx context.Context, analysis *bayes.Analysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `
		INSERT INTO bayes_analyses (id, label, family, bayes_factor, favored, strength, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.ExecContext(ctx, query,
		analysis.ID.String(),
		analysis.Label,
		string(analysis.Result.H1.Family),
		analysis.Result.BayesFactor,
		string(analysis.Result.Favored),
		string(analysis.Result.Strength),
		payload,
		analysis.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// Get retrieves a single analysis by ID
func (r *AnalysisRepository) Get(ctx context.Context, id core.AnalysisID) (*bayes.Analysis, error) {
	query := `SELECT payload FROM bayes_analyses WHERE id = $1`

	var payload []byte
	if err := r.db.QueryRowContext(ctx, query, id.String()).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("analysis", id.String())
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis bayes.Analysis
	if err := json.Unmarshal(payload, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis payload: %w", err)
	}
	return &analysis, nil
}

// ListRecent returns the most recently computed analyses, newest first
func (r *AnalysisRepository) ListRecent(ctx context.Context, limit int) ([]*bayes.Analysis, error) {
	query := `
		SELECT payload FROM bayes_analyses
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*bayes.Analysis
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		var analysis bayes.Analysis
		if err := json.Unmarshal(payload, &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis payload: %w", err)
		}
		analyses = append(analyses, &analysis)
	}
	return analyses, rows.Err()
}
