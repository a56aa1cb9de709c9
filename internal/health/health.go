package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves liveness and metrics endpoints.
type Handler struct {
	service  string
	gatherer prometheus.Gatherer
}

// NewHandler creates a new Handler. A nil gatherer disables /metrics.
func NewHandler(service string, gatherer prometheus.Gatherer) *Handler {
	return &Handler{service: service, gatherer: gatherer}
}

// RegisterRoutes registers GET /health and, when enabled, GET /metrics.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	if h.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.service,
	})
}
