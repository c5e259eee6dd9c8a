// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dispatch/internal/http/handlers"
	"dispatch/internal/http/middleware"
	"dispatch/internal/infra"
	"dispatch/internal/modules/quote"
)

func NewRouter(verifier infra.TokenVerifier, quotes *quote.Service) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(verifier))

	quoteHandler := handlers.NewQuoteHandler(quotes)
	api.POST("/quotes", quoteHandler.Create)

	packageHandler := handlers.NewPackageHandler(quotes)
	api.GET("/packages", packageHandler.List)

	return r
}
