// README: Wallet store backed by PostgreSQL (read-only for quoting).
package wallet

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Balance returns the wallet balance; the second return is false when the
// user has no wallet row.
func (s *Store) Balance(ctx context.Context, userID types.ID) (float64, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT amount_balance FROM user_wallets
		WHERE user_id = $1`, string(userID),
	)
	var balance float64
	err := row.Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return balance, true, nil
}
