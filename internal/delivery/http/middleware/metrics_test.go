package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	route  string
	status int
}

type fakeRequestObserver struct{ seen []recordedRequest }

func (f *fakeRequestObserver) ObserveRequest(route string, status int, _ float64) {
	f.seen = append(f.seen, recordedRequest{route, status})
}

func TestMetrics_RouteLabel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /public/events/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	obs := &fakeRequestObserver{}
	handler := Metrics(obs, mux)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://test/public/events/a--b", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://test/nowhere", nil))

	require.Len(t, obs.seen, 2)
	assert.Equal(t, recordedRequest{"GET /public/events/{slug}", http.StatusNotFound}, obs.seen[0])
	assert.Equal(t, recordedRequest{"unmatched", http.StatusNotFound}, obs.seen[1])
}
