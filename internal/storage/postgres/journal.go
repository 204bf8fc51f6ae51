package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"biblio_reconciler/internal/domain"
)

type JournalStore struct {
	db *sqlx.DB
}

func NewJournalStore(db *sqlx.DB) *JournalStore {
	return &JournalStore{db: db}
}

// ResolveOrCreate returns the identifier for a journal by canonical name,
// inserting it on first encounter. Metadata is first-writer-wins: when the
// name already exists the conflict clause drops the new ISSN and status and
// the existing identifier is selected instead.
func (s *JournalStore) ResolveOrCreate(ctx context.Context, journal *domain.Journal) (int64, error) {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO Journal (JournalMain, ISSN, Quartils)
		VALUES ($1, $2, $3)
		ON CONFLICT (JournalMain) DO NOTHING
		RETURNING JournalID`

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		journal.Name,
		journal.ISSN,
		journal.Status,
	).Scan(&id)

	if err == sql.ErrNoRows {
		err = exec.QueryRowxContext(ctx,
			"SELECT JournalID FROM Journal WHERE JournalMain = $1",
			journal.Name,
		).Scan(&id)
	}

	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByName fetches a journal row by canonical name.
func (s *JournalStore) GetByName(ctx context.Context, name string) (*domain.Journal, error) {
	exec := GetExecutor(ctx, s.db)

	var journal domain.Journal
	err := exec.QueryRowxContext(ctx,
		"SELECT JournalID, JournalMain, ISSN, Quartils FROM Journal WHERE JournalMain = $1",
		name,
	).Scan(&journal.ID, &journal.Name, &journal.ISSN, &journal.Status)
	if err != nil {
		return nil, err
	}
	return &journal, nil
}
