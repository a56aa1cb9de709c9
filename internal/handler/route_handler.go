package handler

import (
	"net/http"

	"github.com/Kilat-Pet-Delivery/service-routing/internal/application"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/domain/route"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/response"
	"github.com/gin-gonic/gin"
)

// EstimationPath is the route estimation endpoint.
const EstimationPath = "/get-route-estimation"

// RouteHandler handles HTTP requests for route estimation.
type RouteHandler struct {
	service *application.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *application.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers the route estimation endpoint on the given router group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST(EstimationPath, h.EstimateRoute)
}

// EstimateRoute handles POST /get-route-estimation.
func (h *RouteHandler) EstimateRoute(c *gin.Context) {
	var req application.EstimateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that cannot be read as the expected object carries no usable endpoints.
		response.BadRequest(c, route.MissingEndpointsMessage)
		return
	}

	payload, err := h.service.EstimateRoute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.RawJSON(c, http.StatusOK, payload)
}
