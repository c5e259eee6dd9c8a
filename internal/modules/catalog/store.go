// README: Catalog store backed by PostgreSQL (read-only lookups for quoting).
package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch/internal/types"
)

var ErrNotFound = errors.New("package type not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListPackages(ctx context.Context) ([]PackageType, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, short_description
		FROM package_types
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []PackageType
	for rows.Next() {
		var p PackageType
		var desc, short sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &desc, &short); err != nil {
			return nil, err
		}
		p.Description = desc.String
		p.ShortDescription = short.String
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (s *Store) GetPackage(ctx context.Context, id types.ID) (*PackageType, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, description, short_description
		FROM package_types
		WHERE id = $1`, string(id),
	)
	var p PackageType
	var desc, short sql.NullString
	err := row.Scan(&p.ID, &p.Name, &desc, &short)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Description = desc.String
	p.ShortDescription = short.String
	return &p, nil
}

// PriceRange returns the min/max base price across the zone's vehicle types
// offering the package. The second return is false when no price row exists;
// callers treat that as "package unavailable in zone", not as an error.
func (s *Store) PriceRange(ctx context.Context, zoneID, packageTypeID types.ID) (PriceRange, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT MIN(p.base_price), MAX(p.base_price)
		FROM zone_type_package_prices p
		JOIN zone_types zt ON zt.id = p.zone_type_id
		WHERE zt.zone_id = $1 AND p.package_type_id = $2`,
		string(zoneID), string(packageTypeID),
	)
	var min, max sql.NullFloat64
	if err := row.Scan(&min, &max); err != nil {
		return PriceRange{}, false, err
	}
	if !min.Valid || !max.Valid {
		return PriceRange{}, false, nil
	}
	return PriceRange{Min: min.Float64, Max: max.Float64}, true, nil
}

// PricesForPackage returns every vehicle type in the zone that has a price row
// for the package. Types without a price row are excluded by the inner join.
func (s *Store) PricesForPackage(ctx context.Context, zoneID, packageTypeID types.ID) ([]TypePrice, error) {
	rows, err := s.db.Query(ctx, `
		SELECT zt.id, zt.zone_id, zt.type_id, zt.vehicle_type_name, zt.icon, zt.payment_type,
		       vt.capacity, vt.description, vt.short_description, vt.supported_vehicles,
		       p.base_price, p.distance_price_per_km, p.time_price_per_min, p.free_distance, p.free_min
		FROM zone_types zt
		JOIN vehicle_types vt ON vt.id = zt.type_id
		JOIN zone_type_package_prices p ON p.zone_type_id = zt.id
		WHERE zt.zone_id = $1 AND p.package_type_id = $2
		ORDER BY zt.id`,
		string(zoneID), string(packageTypeID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TypePrice
	for rows.Next() {
		var tp TypePrice
		var icon, desc, short, supported sql.NullString
		if err := rows.Scan(
			&tp.Type.ID, &tp.Type.ZoneID, &tp.Type.TypeID, &tp.Type.Name, &icon, &tp.Type.PaymentType,
			&tp.Type.Capacity, &desc, &short, &supported,
			&tp.Price.BasePrice, &tp.Price.DistancePricePerKm, &tp.Price.TimePricePerMin,
			&tp.Price.FreeDistance, &tp.Price.FreeMin,
		); err != nil {
			return nil, err
		}
		tp.Type.Icon = icon.String
		tp.Type.VehicleDescription = desc.String
		tp.Type.VehicleShortDescription = short.String
		tp.Type.SupportedVehicles = supported.String
		tp.Price.ZoneTypeID = tp.Type.ID
		tp.Price.PackageTypeID = packageTypeID
		result = append(result, tp)
	}
	return result, rows.Err()
}
