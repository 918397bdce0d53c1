package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/park-booking-service/internal/cache"
)

type HealthHandler struct {
	pool  *pgxpool.Pool
	cache cache.QuoteCache
}

func NewHealthHandler(pool *pgxpool.Pool, quoteCache cache.QuoteCache) *HealthHandler {
	if quoteCache == nil {
		quoteCache = cache.Noop{}
	}
	return &HealthHandler{pool: pool, cache: quoteCache}
}

func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	if err := h.pool.Ping(c.Request.Context()); err != nil {
		dbStatus = "disconnected"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbStatus,
		})
		return
	}

	// A cache outage degrades quote latency only.
	cacheStatus := "connected"
	if err := h.cache.Ping(c.Request.Context()); err != nil {
		cacheStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
