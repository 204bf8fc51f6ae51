package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type AuthorStore struct {
	db *sqlx.DB
}

func NewAuthorStore(db *sqlx.DB) *AuthorStore {
	return &AuthorStore{db: db}
}

// ResolveOrCreate returns the identifier for an author name, inserting the
// row on first encounter. The unique constraint on AuthorName plus the
// conflict clause make concurrent resolutions of the same new name converge
// on one row: the loser's insert returns no row and falls back to a select
// of the winner.
func (s *AuthorStore) ResolveOrCreate(ctx context.Context, name string) (int64, error) {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO Authors (AuthorName, Affiliation, Country)
		VALUES ($1, NULL, NULL)
		ON CONFLICT (AuthorName) DO NOTHING
		RETURNING AuthorID`

	var id int64
	err := exec.QueryRowxContext(ctx, query, name).Scan(&id)

	if err == sql.ErrNoRows {
		err = exec.QueryRowxContext(ctx,
			"SELECT AuthorID FROM Authors WHERE AuthorName = $1",
			name,
		).Scan(&id)
	}

	if err != nil {
		return 0, err
	}

	return id, nil
}
