// README: Promo validator; mode-branched eligibility checks over the store.
package promo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/config"
	"dispatch/internal/types"
)

// ErrInvalid is the single rejection for every promo failure: unknown code,
// wrong scope, wrong transport type, inactive, expired, not on the allow-list,
// usage exceeded. Collapsing these is deliberate so clients cannot probe which
// codes exist.
var ErrInvalid = errors.New("provided promo code expired or invalid")

// Source is the read surface the validator needs; implemented by *Store.
type Source interface {
	FindByCode(ctx context.Context, code string, serviceLocationID types.ID) ([]Promo, error)
	IsUserListed(ctx context.Context, promoID, userID, serviceLocationID types.ID) (bool, error)
	UsageCount(ctx context.Context, promoID, userID types.ID) (int, error)
}

type Service struct {
	source Source
	mode   config.AppMode
}

// NewService builds a validator for the given deployment mode. The mode is
// fixed at construction rather than read per call.
func NewService(source Source, mode config.AppMode) *Service {
	return &Service{source: source, mode: mode}
}

// Validate checks a promo code for the user within a service location.
// An empty code is not an error: it returns (nil, nil), meaning "no promo".
// Every failure path returns ErrInvalid. Validation is read-only; redemption
// is recorded at booking time, not here.
func (s *Service) Validate(ctx context.Context, code string, serviceLocationID types.ID, transportType TransportType, userID types.ID) (*Promo, error) {
	if code == "" {
		return nil, nil
	}

	candidates, err := s.source.FindByCode(ctx, code, serviceLocationID)
	if err != nil {
		return nil, err
	}

	match := s.pickEligible(candidates, time.Now(), transportType)
	if match == nil {
		return nil, ErrInvalid
	}

	if match.RestrictedToListedUsers {
		listed, err := s.source.IsUserListed(ctx, match.ID, userID, serviceLocationID)
		if err != nil {
			return nil, err
		}
		if !listed {
			return nil, ErrInvalid
		}
	}

	used, err := s.source.UsageCount(ctx, match.ID, userID)
	if err != nil {
		return nil, err
	}
	if used >= match.UsesPerUser {
		return nil, ErrInvalid
	}

	return match, nil
}

// pickEligible returns the first candidate passing the mode's checks.
// Taxi/delivery deployments check only expiry; transport deployments also
// require the active flag and a transport-type match.
func (s *Service) pickEligible(candidates []Promo, now time.Time, transportType TransportType) *Promo {
	today := startOfDay(now)
	for i := range candidates {
		p := &candidates[i]
		if !p.To.After(today) {
			continue
		}
		if s.mode.TransportScoped() {
			if !p.Active || !p.appliesToTransport(transportType) {
				continue
			}
		}
		return p
	}
	return nil
}

// startOfDay truncates to midnight: the expiry bound compares against the
// current date, so a promo stays valid through its final day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
