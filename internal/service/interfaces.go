package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"biblio_reconciler/internal/domain"
)

type AuthorStore interface {
	ResolveOrCreate(ctx context.Context, name string) (int64, error)
}

type JournalStore interface {
	ResolveOrCreate(ctx context.Context, journal *domain.Journal) (int64, error)
}

type QuartileStore interface {
	Upsert(ctx context.Context, journalID int64, year, quartile string) error
}

type PublicationStore interface {
	Insert(ctx context.Context, pub *domain.Publication) (int64, error)
}

type RunStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.RunState, error)
	Update(ctx context.Context, state *domain.RunState) error
}

// Source produces one ordered stream of raw heterogeneous records. How the
// stream is obtained (query, file read) is the adapter's concern; the
// pipeline inspects each record structurally and never trusts the source
// kind.
type Source interface {
	ID() string
	Name() string
	Fetch(ctx context.Context) ([]any, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, pub *domain.Publication, sourceID string) error
	Close() error
}
