package route

import "github.com/Kilat-Pet-Delivery/service-routing/internal/domain"

// DefaultMode is the travel mode used when the caller does not choose one.
const DefaultMode = "driving"

// MissingEndpointsMessage is the validation message for a request lacking origin or destination.
const MissingEndpointsMessage = "Origin and Destination are required"

// RouteRequest is a value object describing one route estimation.
// Mode is forwarded as-is; the provider decides what it accepts.
type RouteRequest struct {
	Origin      string
	Destination string
	Mode        string
}

// NewRouteRequest validates the endpoints and applies the default mode when
// mode is nil.
func NewRouteRequest(origin, destination string, mode *string) (RouteRequest, error) {
	if origin == "" || destination == "" {
		return RouteRequest{}, domain.NewValidationError(MissingEndpointsMessage)
	}

	m := DefaultMode
	if mode != nil {
		m = *mode
	}

	return RouteRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        m,
	}, nil
}
