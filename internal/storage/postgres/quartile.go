package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"biblio_reconciler/internal/domain"
)

type QuartileStore struct {
	db *sqlx.DB
}

func NewQuartileStore(db *sqlx.DB) *QuartileStore {
	return &QuartileStore{db: db}
}

// Upsert writes one (journal, year) quartile association. Re-insertion for
// the same key overwrites the label, never duplicates.
func (s *QuartileStore) Upsert(ctx context.Context, journalID int64, year, quartile string) error {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO Quartils (annee, quartil, id_journal)
		VALUES ($1, $2, $3)
		ON CONFLICT (id_journal, annee) DO UPDATE SET quartil = EXCLUDED.quartil`

	_, err := exec.ExecContext(ctx, query, year, quartile, journalID)
	return err
}

// GetByJournal returns a journal's quartile history ordered by year.
func (s *QuartileStore) GetByJournal(ctx context.Context, journalID int64) ([]domain.QuartileRecord, error) {
	exec := GetExecutor(ctx, s.db)

	rows, err := exec.QueryxContext(ctx,
		"SELECT QuartilID, annee, quartil, id_journal FROM Quartils WHERE id_journal = $1 ORDER BY annee",
		journalID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.QuartileRecord
	for rows.Next() {
		var rec domain.QuartileRecord
		if err := rows.Scan(&rec.ID, &rec.Year, &rec.Quartile, &rec.JournalID); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
