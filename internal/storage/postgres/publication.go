package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"biblio_reconciler/internal/domain"
)

type PublicationStore struct {
	db *sqlx.DB
}

func NewPublicationStore(db *sqlx.DB) *PublicationStore {
	return &PublicationStore{db: db}
}

// Insert appends one publication row. There is no existence check and no
// update path: re-running the pipeline over the same input duplicates
// publications while authors and journals stay deduplicated.
func (s *PublicationStore) Insert(ctx context.Context, pub *domain.Publication) (int64, error) {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO Publications (Title, DOI, PublicationDate, Link, Abstract, JournalID, Quartils)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING PublicationID`

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		pub.Title,
		pub.DOI,
		pub.Date,
		pub.Link,
		pub.Abstract,
		pub.JournalID,
		pub.Quartile,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// CountByJournal reports how many publications reference a journal.
func (s *PublicationStore) CountByJournal(ctx context.Context, journalID int64) (int, error) {
	exec := GetExecutor(ctx, s.db)

	var count int
	err := exec.QueryRowxContext(ctx,
		"SELECT COUNT(*) FROM Publications WHERE JournalID = $1",
		journalID,
	).Scan(&count)
	return count, err
}
