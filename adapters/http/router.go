package http

import (
	"github.com/gin-gonic/gin"

	"github.com/hanntran/folio-forge/pkg/logger"
)

// NewRouter wires the HTTP surface. Shared by cmd/server and handler tests.
func NewRouter(h *PortfolioHandler, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/feed", h.Feed)

		portfolios := api.Group("/portfolios")
		{
			portfolios.POST("", h.GeneratePortfolio)
			portfolios.POST("/:id", h.UpdatePortfolio)
		}
	}

	router.GET("/p/:id", h.ViewPortfolio)
	router.GET("/image/:id", h.ProfileImage)

	return router
}
