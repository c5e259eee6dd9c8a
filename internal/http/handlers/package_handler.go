// README: Package listing handler with optional zone-scoped price ranges.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dispatch/internal/modules/quote"
	"dispatch/internal/types"
)

type PackageHandler struct {
	quotes *quote.Service
}

func NewPackageHandler(quotes *quote.Service) *PackageHandler {
	return &PackageHandler{quotes: quotes}
}

func (h *PackageHandler) List(c *gin.Context) {
	pickup, ok := queryPoint(c, "pick_lat", "pick_lng")
	if !ok {
		writeError(c, http.StatusBadRequest, "pick_lat and pick_lng must be valid and provided together")
		return
	}

	summaries, err := h.quotes.PackageSummaries(c.Request.Context(), pickup, callerFrom(c))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"packages": summaries})
}

func queryPoint(c *gin.Context, latKey, lngKey string) (*types.Point, bool) {
	latStr, lngStr := c.Query(latKey), c.Query(lngKey)
	if latStr == "" && lngStr == "" {
		return nil, true
	}
	if latStr == "" || lngStr == "" {
		return nil, false
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, false
	}
	return &types.Point{Lat: lat, Lng: lng}, true
}
