// README: Quote handler; builds fare quotes for the authenticated caller.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatch/internal/http/middleware"
	"dispatch/internal/modules/quote"
	"dispatch/internal/types"
)

type QuoteHandler struct {
	quotes *quote.Service
}

func NewQuoteHandler(quotes *quote.Service) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

type quoteReq struct {
	PackageTypeID string   `json:"package_type_id"`
	PickLat       *float64 `json:"pick_lat"`
	PickLng       *float64 `json:"pick_lng"`
	DropLat       *float64 `json:"drop_lat"`
	DropLng       *float64 `json:"drop_lng"`
	PromoCode     string   `json:"promo_code"`
	TransportType string   `json:"transport_type"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.PackageTypeID == "" {
		writeError(c, http.StatusBadRequest, "missing package_type_id")
		return
	}
	pickup, ok := pointPair(req.PickLat, req.PickLng)
	if !ok {
		writeError(c, http.StatusBadRequest, "pick_lat and pick_lng must be provided together")
		return
	}
	dropoff, ok := pointPair(req.DropLat, req.DropLng)
	if !ok {
		writeError(c, http.StatusBadRequest, "drop_lat and drop_lng must be provided together")
		return
	}

	res, err := h.quotes.BuildQuote(c.Request.Context(), quote.Request{
		PackageTypeID: types.ID(req.PackageTypeID),
		Pickup:        pickup,
		Dropoff:       dropoff,
		PromoCode:     req.PromoCode,
		TransportType: req.TransportType,
	}, callerFrom(c))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// pointPair returns the point when both coordinates are present, nil when both
// are absent, and ok=false when only one was supplied.
func pointPair(lat, lng *float64) (*types.Point, bool) {
	switch {
	case lat == nil && lng == nil:
		return nil, true
	case lat != nil && lng != nil:
		return &types.Point{Lat: *lat, Lng: *lng}, true
	default:
		return nil, false
	}
}

func callerFrom(c *gin.Context) quote.Caller {
	return quote.Caller{
		UserID: types.ID(middleware.CallerUID(c)),
		Role:   types.Role(middleware.CallerRole(c)),
	}
}
