// README: Promo code model and transport-type scope.
package promo

import (
	"time"

	"dispatch/internal/types"
)

// TransportType scopes a promo to taxi rides, deliveries, or both.
type TransportType string

const (
	TransportTaxi     TransportType = "taxi"
	TransportDelivery TransportType = "delivery"
	TransportBoth     TransportType = "both"
)

// Promo is a discount code scoped to a service location. Codes are not unique
// across service locations, so lookups always carry the location id.
type Promo struct {
	ID                types.ID
	Code              string
	ServiceLocationID types.ID
	DiscountPercent   float64
	// MaximumDiscountAmount caps the computed discount; 0 means uncapped.
	MaximumDiscountAmount float64
	// MinimumTripAmount must be strictly below the base price for the
	// discount to apply.
	MinimumTripAmount float64
	From              *time.Time
	To                time.Time
	Active            bool
	TransportType     TransportType
	UsesPerUser       int
	// RestrictedToListedUsers gates the promo behind the per-user allow-list.
	RestrictedToListedUsers bool
}

// appliesToTransport reports whether the promo covers the caller's transport type.
func (p *Promo) appliesToTransport(t TransportType) bool {
	return p.TransportType == TransportBoth || p.TransportType == t
}
