// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatch/internal/modules/catalog"
	"dispatch/internal/modules/promo"
	"dispatch/internal/modules/quote"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeQuoteError maps quoting failures to their fixed user-facing messages.
// Promo failures stay undifferentiated on purpose.
func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, promo.ErrInvalid):
		writeError(c, http.StatusBadRequest, "provided promo code expired or invalid")
	case errors.Is(err, quote.ErrZoneUnavailable):
		writeError(c, http.StatusUnprocessableEntity, "Service not available at this location")
	case errors.Is(err, quote.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
