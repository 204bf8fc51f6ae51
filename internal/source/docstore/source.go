package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	SourceID   = "document-store"
	SourceName = "MongoDB journal collection"
)

// Config holds document-store source configuration.
type Config struct {
	URI        string
	Database   string
	Collection string
}

// Source reads the raw journal documents out of a MongoDB collection. The
// documents already carry the Title/DOI/Authors shape, so downstream
// normalization passes them through as structured records.
type Source struct {
	client     *mongo.Client
	database   string
	collection string
	logger     *slog.Logger
}

// New connects a client. Connection errors do not surface here; they show up
// on the first fetch and are handled as a failed stream.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Source, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return &Source{
		client:     client,
		database:   cfg.Database,
		collection: cfg.Collection,
		logger:     logger.With("source", SourceID),
	}, nil
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// Fetch returns every document of the collection in natural order.
func (s *Source) Fetch(ctx context.Context) ([]any, error) {
	cursor, err := s.client.Database(s.database).Collection(s.collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}
	defer cursor.Close(ctx)

	var records []any
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		records = append(records, plain(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	s.logger.Debug("fetched documents", "count", len(records))

	return records, nil
}

func (s *Source) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// plain strips the BSON types so the normalizer sees ordinary maps and
// slices. Object identifiers become their hex string, matching what the
// downstream schema expects.
func plain(v any) any {
	switch val := v.(type) {
	case bson.M:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[k] = plain(item)
		}
		return m
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.A:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = plain(item)
		}
		return items
	case primitive.ObjectID:
		return val.Hex()
	default:
		return v
	}
}
