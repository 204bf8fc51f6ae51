package domain

import "time"

// ReconcileStats holds statistics for one source stream within a run.
type ReconcileStats struct {
	SourceID  string
	Fetched   int
	Ingested  int
	Skipped   int
	Errors    int
	Published int
	Duration  time.Duration
}

// RunStats aggregates a full pipeline invocation across all sources.
type RunStats struct {
	Sources       []ReconcileStats
	SourcesFailed int
	Duration      time.Duration
}

// RunState tracks per-source ingestion totals across pipeline invocations.
type RunState struct {
	ID            int64     `db:"id"`
	SourceID      string    `db:"source_id"`
	LastRunAt     time.Time `db:"last_run_at"`
	TotalIngested int64     `db:"total_ingested"`
}
