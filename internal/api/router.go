package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all API routes registered. When
// staticDir is non-empty the built UI bundle is served from it, with an
// index.html fallback for client-side routes.
func NewRouter(h *Handler, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/portfolio", h.GetPortfolio)
		api.POST("/portfolio", h.AddStock)
		api.DELETE("/portfolio/:symbol", h.RemoveStock)
		api.GET("/growth", h.GetGrowth)
		api.GET("/search", h.Search)
		api.GET("/health", h.Health)
	}

	if staticDir != "" {
		r.Static("/assets", filepath.Join(staticDir, "assets"))
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
		r.NoRoute(func(c *gin.Context) {
			c.File(filepath.Join(staticDir, "index.html"))
		})
	} else {
		r.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	}

	return r
}
