package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

const (
	SourceID   = "json-file"
	SourceName = "JSON journal dataset"
)

// Config holds JSON-file source configuration.
type Config struct {
	Path string
}

// Source reads a JSON array of publication objects from disk, in file order.
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
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	s.logger.Debug("read records", "count", len(records))

	return records, nil
}
