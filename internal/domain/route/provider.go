package route

import (
	"context"
	"encoding/json"
)

// DirectionsProvider defines the contract for the external directions service.
type DirectionsProvider interface {
	// Directions returns the provider's raw response body for req.
	Directions(ctx context.Context, req RouteRequest) (json.RawMessage, error)
}
