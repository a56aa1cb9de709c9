package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Kilat-Pet-Delivery/service-routing/internal/domain/route"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/metrics"
)

const redacted = "REDACTED"

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	kind := "Unexpected Status"
	switch {
	case e.StatusCode >= 400 && e.StatusCode < 500:
		kind = "Client Error"
	case e.StatusCode >= 500:
		kind = "Server Error"
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, kind, http.StatusText(e.StatusCode))
}

// ErrInvalidPayload is returned when the provider's body is not valid JSON.
var ErrInvalidPayload = errors.New("upstream response is not valid JSON")

// GoogleClient calls the Google Maps Directions API and returns its body untouched.
type GoogleClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	metrics    *metrics.Metrics
}

// NewGoogleClient creates a GoogleClient. A zero timeout leaves the transport default in place.
func NewGoogleClient(baseURL, apiKey string, timeout time.Duration, m *metrics.Metrics) *GoogleClient {
	return &GoogleClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		metrics:    m,
	}
}

// Directions issues one GET to the directions endpoint for req.
func (c *GoogleClient) Directions(ctx context.Context, req route.RouteRequest) (json.RawMessage, error) {
	start := time.Now()
	body, err := c.do(ctx, req)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
	}
	c.metrics.ObserveUpstream(outcome, time.Since(start))

	return body, err
}

func (c *GoogleClient) do(ctx context.Context, req route.RouteRequest) (json.RawMessage, error) {
	endpoint, err := c.buildURL(req, c.apiKey)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, c.redact(err, req)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.redact(err, req)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidPayload
	}

	return json.RawMessage(body), nil
}

func (c *GoogleClient) buildURL(req route.RouteRequest, key string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid directions URL: %w", err)
	}

	q := u.Query()
	q.Set("origin", req.Origin)
	q.Set("destination", req.Destination)
	q.Set("mode", req.Mode)
	q.Set("key", key)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// redact replaces the request URL inside transport errors so the credential
// never reaches logs or callers.
func (c *GoogleClient) redact(err error, req route.RouteRequest) error {
	var uErr *url.Error
	if errors.As(err, &uErr) {
		if safe, buildErr := c.buildURL(req, redacted); buildErr == nil {
			uErr.URL = safe
		}
	}
	return err
}
