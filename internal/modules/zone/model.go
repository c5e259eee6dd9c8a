// README: Service zone with its boundary polygon and owning service location.
package zone

import "dispatch/internal/types"

// Zone is a geographic service area inside a service location. Vehicle types
// and package prices are scoped to a zone; currency comes from the service
// location that owns it.
type Zone struct {
	ID                 types.ID
	Name               string
	ServiceLocationID  types.ID
	DefaultVehicleType types.ID
	// Unit is the distance unit flag: 1 means kilometers, anything else miles.
	Unit           int
	Boundary       []types.Point
	CurrencySymbol string
	CurrencyCode   string
}

// UnitInWords returns the human label mobile clients display for the unit flag.
func (z *Zone) UnitInWords() string {
	if z.Unit == 1 {
		return "Km"
	}
	return "Miles"
}
