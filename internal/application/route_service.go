package application

import (
	"context"
	"encoding/json"

	"github.com/Kilat-Pet-Delivery/service-routing/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/domain/route"
	"go.uber.org/zap"
)

// UpstreamFailureMessage prefixes every error caused by the directions provider.
const UpstreamFailureMessage = "Failed to retrieve route estimations"

// EstimateRouteRequest holds the data needed to estimate a route.
// Mode is a pointer so an absent field can be told apart from an empty one.
type EstimateRouteRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Mode        *string `json:"mode"`
}

// RouteService is the application service relaying route estimations to the directions provider.
type RouteService struct {
	provider route.DirectionsProvider
	logger   *zap.Logger
}

// NewRouteService creates a new RouteService.
func NewRouteService(provider route.DirectionsProvider, logger *zap.Logger) *RouteService {
	return &RouteService{
		provider: provider,
		logger:   logger,
	}
}

// EstimateRoute validates req and returns the provider's payload unchanged.
// It makes exactly one provider call for a valid request and none otherwise.
func (s *RouteService) EstimateRoute(ctx context.Context, req EstimateRouteRequest) (json.RawMessage, error) {
	routeReq, err := route.NewRouteRequest(req.Origin, req.Destination, req.Mode)
	if err != nil {
		return nil, err
	}

	payload, err := s.provider.Directions(ctx, routeReq)
	if err != nil {
		s.logger.Warn("directions provider call failed",
			zap.String("mode", routeReq.Mode),
			zap.Error(err),
		)
		return nil, domain.NewUpstreamError(UpstreamFailureMessage, err)
	}

	s.logger.Debug("route estimation relayed",
		zap.String("mode", routeReq.Mode),
		zap.Int("bytes", len(payload)),
	)
	return payload, nil
}
