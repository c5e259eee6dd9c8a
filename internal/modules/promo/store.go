// README: Promo store backed by PostgreSQL; code lookup, allow-list, usage ledger.
package promo

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// FindByCode returns every promo row matching the code within the service
// location. Eligibility filtering (expiry, active, transport scope) happens in
// the service so the mode branch stays explicit and testable.
func (s *Store) FindByCode(ctx context.Context, code string, serviceLocationID types.ID) ([]Promo, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, code, service_location_id, discount_percent, maximum_discount_amount,
		       minimum_trip_amount, "from", "to", active, transport_type, uses_per_user,
		       promo_code_users_available
		FROM promos
		WHERE code = $1 AND service_location_id = $2`,
		code, string(serviceLocationID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []Promo
	for rows.Next() {
		var p Promo
		var from sql.NullTime
		var restricted sql.NullString
		if err := rows.Scan(
			&p.ID, &p.Code, &p.ServiceLocationID, &p.DiscountPercent, &p.MaximumDiscountAmount,
			&p.MinimumTripAmount, &from, &p.To, &p.Active, &p.TransportType, &p.UsesPerUser,
			&restricted,
		); err != nil {
			return nil, err
		}
		if from.Valid {
			t := from.Time
			p.From = &t
		}
		p.RestrictedToListedUsers = restricted.String == "yes"
		promos = append(promos, p)
	}
	return promos, rows.Err()
}

// IsUserListed reports whether the user has an allow-list row for the promo
// within the service location.
func (s *Store) IsUserListed(ctx context.Context, promoID, userID, serviceLocationID types.ID) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM promo_code_users
			WHERE promo_code_id = $1 AND user_id = $2 AND service_location_id = $3
		)`,
		string(promoID), string(userID), string(serviceLocationID),
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UsageCount counts prior redemptions of the promo by the user.
func (s *Store) UsageCount(ctx context.Context, promoID, userID types.ID) (int, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM promo_users
		WHERE promo_code_id = $1 AND user_id = $2`,
		string(promoID), string(userID),
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
