// README: Zone store backed by PostgreSQL with a Redis resolve cache.
package zone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"dispatch/internal/types"
)

const (
	resolveKeyPrefix = "zone:resolve:%s"
	// resolveTTL bounds staleness when zone boundaries are redrawn in admin.
	resolveTTL = 10 * time.Minute
)

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

const zoneColumns = `
	z.id, z.name, z.service_location_id, z.default_vehicle_type, z.unit, z.coordinates,
	sl.currency_symbol, sl.currency_code`

// ListActive returns every active zone with its boundary and currency data.
func (s *Store) ListActive(ctx context.Context) ([]Zone, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+zoneColumns+`
		FROM zones z
		JOIN service_locations sl ON sl.id = z.service_location_id
		WHERE z.active`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, *z)
	}
	return zones, rows.Err()
}

// Get returns the zone by id; the second return is false when it does not exist.
func (s *Store) Get(ctx context.Context, id types.ID) (*Zone, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+zoneColumns+`
		FROM zones z
		JOIN service_locations sl ON sl.id = z.service_location_id
		WHERE z.id = $1 AND z.active`, string(id),
	)
	z, err := scanZone(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return z, true, nil
}

// CachedZoneID looks up a previously resolved zone id for a coordinate.
func (s *Store) CachedZoneID(ctx context.Context, p types.Point) (types.ID, bool, error) {
	val, err := s.redis.Get(ctx, resolveKey(p)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return types.ID(val), true, nil
}

// CacheZoneID records a resolved coordinate → zone id mapping.
func (s *Store) CacheZoneID(ctx context.Context, p types.Point, id types.ID) error {
	return s.redis.Set(ctx, resolveKey(p), string(id), resolveTTL).Err()
}

// resolveKey rounds coordinates to 4 decimal places (~11m) so nearby pickups
// share a cache entry.
func resolveKey(p types.Point) string {
	return fmt.Sprintf(resolveKeyPrefix, fmt.Sprintf("%.4f:%.4f", p.Lat, p.Lng))
}

func scanZone(row pgx.Row) (*Zone, error) {
	var z Zone
	var raw []byte
	if err := row.Scan(
		&z.ID, &z.Name, &z.ServiceLocationID, &z.DefaultVehicleType, &z.Unit, &raw,
		&z.CurrencySymbol, &z.CurrencyCode,
	); err != nil {
		return nil, err
	}
	boundary, err := decodeBoundary(raw)
	if err != nil {
		return nil, fmt.Errorf("zone %s boundary: %w", z.ID, err)
	}
	z.Boundary = boundary
	return &z, nil
}

// decodeBoundary parses the stored JSON vertex list ([[lng, lat], ...]).
func decodeBoundary(raw []byte) ([]types.Point, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var pairs [][]float64
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, err
	}
	points := make([]types.Point, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, errors.New("vertex is not a [lng, lat] pair")
		}
		points = append(points, types.Point{Lat: pair[1], Lng: pair[0]})
	}
	return points, nil
}
