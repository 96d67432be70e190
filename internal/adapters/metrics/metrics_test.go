package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestMetrics_Observe(t *testing.T) {
	m := New()
	m.ObserveProjection("ok")
	m.ObserveProjection("ok")
	m.ObserveProjection("rejected")
	m.ObserveRequest("GET /public/events", http.StatusOK, 0.01)
	m.ObserveRateLimited()

	body := scrape(t, m)
	assert.Contains(t, body, `eventhub_public_events_projected_total{outcome="ok"} 2`)
	assert.Contains(t, body, `eventhub_public_events_projected_total{outcome="rejected"} 1`)
	assert.Contains(t, body, `eventhub_http_requests_total{route="GET /public/events",status="200"} 1`)
	assert.Contains(t, body, `eventhub_http_request_duration_seconds_count{route="GET /public/events"} 1`)
	assert.Contains(t, body, `eventhub_public_rate_limited_total 1`)
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveProjection("ok")

	assert.NotContains(t, scrape(t, b), `outcome="ok"`)
}
