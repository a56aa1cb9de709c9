//go:build integration

package main_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Kilat-Pet-Delivery/service-routing/internal/application"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/directions"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/handler"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/health"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/metrics"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "integration-key"

// fakeDirections is a stand-in for the Google Directions API that records every call.
type fakeDirections struct {
	Server *httptest.Server

	mu      sync.Mutex
	status  int
	body    string
	delay   time.Duration
	queries []url.Values
}

// routingStack holds a wired-up routing service behind a real HTTP listener.
type routingStack struct {
	Server  *httptest.Server
	Metrics *metrics.Metrics
}

// setupFakeDirections starts a fake provider answering status with body.
func setupFakeDirections(t *testing.T, status int, body string) *fakeDirections {
	t.Helper()
	f := &fakeDirections{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.queries = append(f.queries, r.URL.Query())
		status, body, delay := f.status, f.body, f.delay
		f.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.Server.Close)
	return f
}

func (f *fakeDirections) setDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *fakeDirections) calls() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]url.Values, len(f.queries))
	copy(out, f.queries)
	return out
}

// setupRoutingStack wires the service the same way cmd/server does.
func setupRoutingStack(t *testing.T, directionsURL string, timeout time.Duration) *routingStack {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()

	m := metrics.New()
	provider := directions.NewGoogleClient(directionsURL, testAPIKey, timeout, m)
	svc := application.NewRouteService(provider, logger)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	health.NewHandler("service-routing", m.Registry).RegisterRoutes(router)
	handler.NewRouteHandler(svc).RegisterRoutes(&router.RouterGroup)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &routingStack{Server: srv, Metrics: m}
}

// postEstimation sends body to the estimation endpoint.
func postEstimation(t *testing.T, stack *routingStack, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(stack.Server.URL+handler.EstimationPath, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
