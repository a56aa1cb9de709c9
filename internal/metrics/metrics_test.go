package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTP(t *testing.T) {
	m := New()

	m.ObserveHTTP("POST", "/get-route-estimation", 200, 10*time.Millisecond)
	m.ObserveHTTP("POST", "/get-route-estimation", 200, 20*time.Millisecond)
	m.ObserveHTTP("POST", "/get-route-estimation", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/get-route-estimation", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/get-route-estimation", "400")))
}

func TestObserveUpstream(t *testing.T) {
	m := New()

	m.ObserveUpstream(OutcomeSuccess, time.Second)
	m.ObserveUpstream(OutcomeError, time.Second)
	m.ObserveUpstream(OutcomeError, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues(OutcomeError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
		m.ObserveUpstream(OutcomeSuccess, time.Millisecond)
	})
}
