package relational

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	SourceID   = "relational"
	SourceName = "Relational journal table"
)

// Config holds relational source configuration.
type Config struct {
	DSN   string
	Table string
}

// Source reads tuple-shaped rows out of a legacy relational table. Rows come
// back positional: title, DOI, author list, date string, ISSN, link,
// quartile label, journal descriptor, abstract.
type Source struct {
	db     *sqlx.DB
	table  string
	logger *slog.Logger
}

// New opens a lazy connection; a dead source database surfaces on the first
// fetch as a failed stream, not at startup.
func New(cfg Config, logger *slog.Logger) (*Source, error) {
	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open source database: %w", err)
	}

	return &Source{
		db:     db,
		table:  cfg.Table,
		logger: logger.With("source", SourceID),
	}, nil
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// Fetch returns every row of the table in primary-key order.
func (s *Source) Fetch(ctx context.Context) ([]any, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY 1", pq.QuoteIdentifier(s.table))

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	var records []any
	for rows.Next() {
		fields, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		// lib/pq hands text columns back as []byte
		for i, v := range fields {
			if b, ok := v.([]byte); ok {
				fields[i] = string(b)
			}
		}
		records = append(records, fields)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	s.logger.Debug("fetched rows", "count", len(records))

	return records, nil
}

func (s *Source) Close() error {
	return s.db.Close()
}
