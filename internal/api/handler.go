package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"stockboard/internal/market"
	"stockboard/internal/portfolio"
	"stockboard/internal/quote"
)

// Service is the portfolio surface the handlers depend on.
type Service interface {
	View(ctx context.Context, r quote.Range) ([]quote.Quote, error)
	GrowthView(ctx context.Context) ([]quote.Quote, error)
	Add(ctx context.Context, symbol string) (*quote.Quote, error)
	Remove(ctx context.Context, symbol string) error
	Search(ctx context.Context, query string) (market.SearchResult, error)
}

// Pinger reports backing-storage health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the HTTP handlers for the dashboard API.
type Handler struct {
	svc     Service
	pinger  Pinger
	started time.Time
}

func NewHandler(svc Service, pinger Pinger) *Handler {
	return &Handler{svc: svc, pinger: pinger, started: time.Now()}
}

type addRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

// GetPortfolio handles GET /api/portfolio?range=R.
func (h *Handler) GetPortfolio(c *gin.Context) {
	r := quote.Range(c.DefaultQuery("range", string(quote.Range1d)))

	quotes, err := h.svc.View(c.Request.Context(), r)
	if err != nil {
		log.Printf("[ERROR] portfolio view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// AddStock handles POST /api/portfolio.
func (h *Handler) AddStock(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Symbol is required"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	q, err := h.svc.Add(c.Request.Context(), req.Symbol)
	if err != nil {
		if errors.Is(err, portfolio.ErrInvalidSymbol) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid stock symbol"})
			return
		}
		log.Printf("[ERROR] add stock %s: %v", req.Symbol, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

// RemoveStock handles DELETE /api/portfolio/:symbol. Removing an absent
// symbol still succeeds.
func (h *Handler) RemoveStock(c *gin.Context) {
	symbol := c.Param("symbol")

	if err := h.svc.Remove(c.Request.Context(), symbol); err != nil {
		log.Printf("[ERROR] remove stock %s: %v", symbol, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetGrowth handles GET /api/growth.
func (h *Handler) GetGrowth(c *gin.Context) {
	quotes, err := h.svc.GrowthView(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] growth view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// Search handles GET /api/search?q=Q.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query required"})
		return
	}

	res, err := h.svc.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, market.ErrNoMatch) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No results found"})
			return
		}
		log.Printf("[ERROR] search %q: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
