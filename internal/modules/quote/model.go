// README: Fare quote request/response shapes; field names are the mobile client contract.
package quote

import "dispatch/internal/types"

// Request carries the caller-supplied quote parameters. Pickup and Dropoff are
// optional; when present both coordinates were supplied. TransportType only
// matters in transport-scoped deployments.
type Request struct {
	PackageTypeID types.ID
	Pickup        *types.Point
	Dropoff       *types.Point
	PromoCode     string
	TransportType string
}

// Caller is the authenticated user the quote is built for.
type Caller struct {
	UserID types.ID
	Role   types.Role
}

// Summary is the package-level part of a quote. Currency and price range are
// present only when a pickup coordinate resolved to a zone.
type Summary struct {
	ID                types.ID `json:"id"`
	PackageName       string   `json:"package_name"`
	Description       string   `json:"description"`
	ShortDescription  string   `json:"short_description"`
	UserWalletBalance float64  `json:"user_wallet_balance"`
	Currency          string   `json:"currency,omitempty"`
	CurrencyName      string   `json:"currency_name,omitempty"`
	MinPrice          *float64 `json:"min_price,omitempty"`
	MaxPrice          *float64 `json:"max_price,omitempty"`
}

// TypeQuote is one vehicle type's fare quote within the resolved zone.
type TypeQuote struct {
	ZoneTypeID         types.ID  `json:"zone_type_id"`
	TypeID             types.ID  `json:"type_id"`
	Name               string    `json:"name"`
	Icon               string    `json:"icon"`
	Capacity           int       `json:"capacity"`
	Currency           string    `json:"currency"`
	Unit               int       `json:"unit"`
	UnitInWords        string    `json:"unit_in_words"`
	DistancePricePerKm float64   `json:"distance_price_per_km"`
	TimePricePerMin    float64   `json:"time_price_per_min"`
	FreeDistance       float64   `json:"free_distance"`
	FreeMin            float64   `json:"free_min"`
	PaymentType        string    `json:"payment_type"`
	FareAmount         float64   `json:"fare_amount"`
	Description        string    `json:"description"`
	ShortDescription   string    `json:"short_description"`
	SupportedVehicles  string    `json:"supported_vehicles"`
	IsDefault          bool      `json:"is_default"`
	DiscountedTotal    float64   `json:"discounted_total"`
	HasDiscount        bool      `json:"has_discount"`
	PromocodeID        *types.ID `json:"promocode_id"`
	UserWalletBalance  float64   `json:"user_wallet_balance"`
	EstimatedTotal     *float64  `json:"estimated_total,omitempty"`
}

// Result is a full quote: summary plus the per-vehicle-type enumeration.
type Result struct {
	Summary
	TypesWithPrice []TypeQuote `json:"types_with_price"`
}
