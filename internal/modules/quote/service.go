// README: Fare quote builder; orchestrates zone, catalog, promo, wallet, and routes.
package quote

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/modules/catalog"
	"dispatch/internal/modules/promo"
	"dispatch/internal/modules/zone"
	"dispatch/internal/types"
)

// ErrZoneUnavailable means no service zone encloses the pickup coordinate.
// The summary path tolerates an unresolved zone; the vehicle-type enumeration
// does not.
var ErrZoneUnavailable = errors.New("service not available at this location")

var ErrBadRequest = errors.New("bad request")

type ZoneResolver interface {
	Resolve(ctx context.Context, p types.Point) (*zone.Zone, bool, error)
}

type Catalog interface {
	ListPackages(ctx context.Context) ([]catalog.PackageType, error)
	GetPackage(ctx context.Context, id types.ID) (*catalog.PackageType, error)
	PriceRange(ctx context.Context, zoneID, packageTypeID types.ID) (catalog.PriceRange, bool, error)
	PricesForPackage(ctx context.Context, zoneID, packageTypeID types.ID) ([]catalog.TypePrice, error)
}

type PromoValidator interface {
	Validate(ctx context.Context, code string, serviceLocationID types.ID, transportType promo.TransportType, userID types.ID) (*promo.Promo, error)
}

type WalletReader interface {
	BalanceFor(ctx context.Context, userID types.ID, role types.Role) (float64, error)
}

// RouteEstimator returns driving distance and duration between two points.
type RouteEstimator interface {
	Estimate(ctx context.Context, origin, destination types.Point) (km float64, duration time.Duration, err error)
}

type Service struct {
	zones   ZoneResolver
	catalog Catalog
	promos  PromoValidator
	wallets WalletReader
	routes  RouteEstimator // optional; nil disables upfront totals
}

func NewService(zones ZoneResolver, catalog Catalog, promos PromoValidator, wallets WalletReader, routes RouteEstimator) *Service {
	return &Service{
		zones:   zones,
		catalog: catalog,
		promos:  promos,
		wallets: wallets,
		routes:  routes,
	}
}

// BuildQuote produces the full quote for one package: the summary plus one
// record per vehicle type offering the package in the pickup zone.
//
// Without pickup coordinates the quote is summary-only and the enumeration is
// not attempted. With them, the zone must resolve or the whole operation fails
// with ErrZoneUnavailable. A supplied promo code is validated once against the
// zone's service location and then applied to each vehicle type independently;
// an invalid code fails the whole request.
func (s *Service) BuildQuote(ctx context.Context, req Request, caller Caller) (*Result, error) {
	if req.PackageTypeID == "" {
		return nil, ErrBadRequest
	}

	pkg, err := s.catalog.GetPackage(ctx, req.PackageTypeID)
	if err != nil {
		return nil, err
	}
	balance, err := s.wallets.BalanceFor(ctx, caller.UserID, caller.Role)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Summary: Summary{
			ID:                pkg.ID,
			PackageName:       pkg.Name,
			Description:       pkg.Description,
			ShortDescription:  pkg.ShortDescription,
			UserWalletBalance: balance,
		},
		TypesWithPrice: []TypeQuote{},
	}
	if req.Pickup == nil {
		return res, nil
	}

	z, ok, err := s.zones.Resolve(ctx, *req.Pickup)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrZoneUnavailable
	}

	res.Currency = z.CurrencySymbol
	res.CurrencyName = z.CurrencyCode
	if r, found, err := s.catalog.PriceRange(ctx, z.ID, pkg.ID); err != nil {
		return nil, err
	} else if found {
		min, max := r.Min, r.Max
		res.MinPrice = &min
		res.MaxPrice = &max
	}

	// Validate once per quote; ApplyDiscount runs once per vehicle type below.
	var applied *promo.Promo
	if req.PromoCode != "" {
		applied, err = s.promos.Validate(ctx, req.PromoCode, z.ServiceLocationID, promo.TransportType(req.TransportType), caller.UserID)
		if err != nil {
			return nil, err
		}
	}

	km, mins, haveRoute := s.routeEstimate(ctx, req)

	prices, err := s.catalog.PricesForPackage(ctx, z.ID, pkg.ID)
	if err != nil {
		return nil, err
	}
	for _, tp := range prices {
		q := TypeQuote{
			ZoneTypeID:         tp.Type.ID,
			TypeID:             tp.Type.TypeID,
			Name:               tp.Type.Name,
			Icon:               tp.Type.Icon,
			Capacity:           tp.Type.Capacity,
			Currency:           z.CurrencySymbol,
			Unit:               z.Unit,
			UnitInWords:        z.UnitInWords(),
			DistancePricePerKm: tp.Price.DistancePricePerKm,
			TimePricePerMin:    tp.Price.TimePricePerMin,
			FreeDistance:       tp.Price.FreeDistance,
			FreeMin:            tp.Price.FreeMin,
			PaymentType:        tp.Type.PaymentType,
			FareAmount:         tp.Price.BasePrice,
			Description:        tp.Type.VehicleDescription,
			ShortDescription:   tp.Type.VehicleShortDescription,
			SupportedVehicles:  tp.Type.SupportedVehicles,
			IsDefault:          tp.Type.TypeID == z.DefaultVehicleType,
			UserWalletBalance:  balance,
		}
		if out := promo.ApplyDiscount(applied, tp.Price.BasePrice); out.Applied {
			q.DiscountedTotal = out.Total
			q.HasDiscount = true
			id := applied.ID
			q.PromocodeID = &id
		}
		if haveRoute {
			total := upfrontTotal(tp.Price, km, mins)
			q.EstimatedTotal = &total
		}
		res.TypesWithPrice = append(res.TypesWithPrice, q)
	}
	return res, nil
}

// PackageSummaries lists every package with summary-level pricing. Unlike
// BuildQuote, an unresolved zone is not an error here: the summaries simply
// omit currency and price range.
func (s *Service) PackageSummaries(ctx context.Context, pickup *types.Point, caller Caller) ([]Summary, error) {
	packages, err := s.catalog.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := s.wallets.BalanceFor(ctx, caller.UserID, caller.Role)
	if err != nil {
		return nil, err
	}

	var z *zone.Zone
	if pickup != nil {
		resolved, ok, err := s.zones.Resolve(ctx, *pickup)
		if err != nil {
			return nil, err
		}
		if ok {
			z = resolved
		}
	}

	summaries := make([]Summary, 0, len(packages))
	for _, pkg := range packages {
		sum := Summary{
			ID:                pkg.ID,
			PackageName:       pkg.Name,
			Description:       pkg.Description,
			ShortDescription:  pkg.ShortDescription,
			UserWalletBalance: balance,
		}
		if z != nil {
			sum.Currency = z.CurrencySymbol
			sum.CurrencyName = z.CurrencyCode
			if r, found, err := s.catalog.PriceRange(ctx, z.ID, pkg.ID); err != nil {
				return nil, err
			} else if found {
				min, max := r.Min, r.Max
				sum.MinPrice = &min
				sum.MaxPrice = &max
			}
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// routeEstimate fetches driving distance/duration for upfront totals. Estimate
// failures degrade to a quote without totals; a Maps outage must not block
// quoting.
func (s *Service) routeEstimate(ctx context.Context, req Request) (km, mins float64, ok bool) {
	if s.routes == nil || req.Pickup == nil || req.Dropoff == nil {
		return 0, 0, false
	}
	km, dur, err := s.routes.Estimate(ctx, *req.Pickup, *req.Dropoff)
	if err != nil {
		return 0, 0, false
	}
	return km, dur.Minutes(), true
}

// upfrontTotal projects a trip total from the price row's per-distance and
// per-time rates, net of the free allowances. The promo discount applies to
// the base fare only, so the two never mix.
func upfrontTotal(p catalog.PackagePrice, km, mins float64) float64 {
	total := p.BasePrice
	if extra := km - p.FreeDistance; extra > 0 {
		total += extra * p.DistancePricePerKm
	}
	if extra := mins - p.FreeMin; extra > 0 {
		total += extra * p.TimePricePerMin
	}
	return total
}
