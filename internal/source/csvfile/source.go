package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
)

const (
	SourceID   = "csv-file"
	SourceName = "CSV journal dataset"
)

// Config holds CSV-file source configuration.
type Config struct {
	Path string
}

// Source reads positional rows from a CSV file, in file order. The first row
// is a header and is dropped.
type Source struct {
	path   string
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		path:   cfg.Path,
		logger: logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

func (s *Source) Fetch(ctx context.Context) ([]any, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// rows may omit trailing optional fields
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	if len(rows) > 0 {
		rows = rows[1:]
	}

	records := make([]any, 0, len(rows))
	for _, row := range rows {
		records = append(records, row)
	}

	s.logger.Debug("read rows", "count", len(records))

	return records, nil
}
