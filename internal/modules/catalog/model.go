// README: Pricing catalog reference data: packages, zone vehicle types, price rows.
package catalog

import "dispatch/internal/types"

// PackageType is a ride/delivery product category (e.g. "Standard", "Express").
type PackageType struct {
	ID               types.ID
	Name             string
	Description      string
	ShortDescription string
}

// ZoneType is a vehicle-type offering scoped to one zone.
type ZoneType struct {
	ID          types.ID
	ZoneID      types.ID
	TypeID      types.ID // vehicle type id
	Name        string
	Icon        string
	PaymentType string

	// Denormalised from the vehicle type row.
	Capacity                int
	VehicleDescription      string
	VehicleShortDescription string
	SupportedVehicles       string
}

// PackagePrice holds the fare parameters for one (zone type, package type)
// pair. At most one row exists per pair.
type PackagePrice struct {
	ZoneTypeID         types.ID
	PackageTypeID      types.ID
	BasePrice          float64
	DistancePricePerKm float64
	TimePricePerMin    float64
	FreeDistance       float64
	FreeMin            float64
}

// TypePrice pairs a zone type with its price row for a package.
type TypePrice struct {
	Type  ZoneType
	Price PackagePrice
}

// PriceRange is the min/max base price across a zone's vehicle types.
type PriceRange struct {
	Min float64
	Max float64
}
