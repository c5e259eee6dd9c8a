// README: Zone resolver; maps pickup coordinates to the enclosing service zone.
package zone

import (
	"context"

	"dispatch/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Resolve returns the zone containing p, or false when no active zone does.
// Cache errors degrade to a direct lookup; a quote must not fail because
// Redis is down.
func (s *Service) Resolve(ctx context.Context, p types.Point) (*Zone, bool, error) {
	if id, hit, err := s.store.CachedZoneID(ctx, p); err == nil && hit {
		z, ok, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, false, err
		}
		if ok && containsPoint(z.Boundary, p) {
			return z, true, nil
		}
		// Stale entry (zone deleted or redrawn); fall through to a full scan.
	}

	zones, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range zones {
		if containsPoint(zones[i].Boundary, p) {
			_ = s.store.CacheZoneID(ctx, p, zones[i].ID)
			return &zones[i], true, nil
		}
	}
	return nil, false, nil
}
