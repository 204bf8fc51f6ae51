package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"biblio_reconciler/internal/domain"
)

type RunStateStore struct {
	db *sqlx.DB
}

func NewRunStateStore(db *sqlx.DB) *RunStateStore {
	return &RunStateStore{db: db}
}

func (s *RunStateStore) Get(ctx context.Context, sourceID string) (*domain.RunState, error) {
	var state domain.RunState
	query := `
		SELECT id, source_id, last_run_at, total_ingested
		FROM ingest_runs
		WHERE source_id = $1`

	err := s.db.GetContext(ctx, &state, query, sourceID)
	if err == sql.ErrNoRows {
		// Empty state for sources that never ran
		return &domain.RunState{
			SourceID:  sourceID,
			LastRunAt: time.Time{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RunStateStore) Update(ctx context.Context, state *domain.RunState) error {
	query := `
		INSERT INTO ingest_runs (source_id, last_run_at, total_ingested)
		VALUES ($1, $2, $3)
		ON CONFLICT (source_id) DO UPDATE SET
			last_run_at = EXCLUDED.last_run_at,
			total_ingested = EXCLUDED.total_ingested`

	_, err := s.db.ExecContext(ctx, query,
		state.SourceID,
		state.LastRunAt,
		state.TotalIngested,
	)
	return err
}
