package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsLabelsUseRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Metrics)
	router.Delete("/v1/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	before := testutil.CollectAndCount(httpRequests)
	for _, path := range []string{"/v1/things/a", "/v1/things/b", "/v1/things/c"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("DELETE", path, nil))
	}
	after := testutil.CollectAndCount(httpRequests)

	// Distinct ids must share one series keyed by the route pattern.
	if after-before > 1 {
		t.Fatalf("distinct ids minted %d new series, want at most 1", after-before)
	}
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("DELETE", "/v1/things/{id}", "204")); got < 3 {
		t.Fatalf("route-pattern series count = %v, want >= 3", got)
	}
}

func TestMetricsUnmatchedPathsShareOneSeries(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Metrics)
	router.Get("/known", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	before := testutil.CollectAndCount(httpRequests)
	for _, path := range []string{"/probe/1", "/probe/2", "/probe/3"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
	}
	after := testutil.CollectAndCount(httpRequests)

	if after-before > 1 {
		t.Fatalf("probed 404 paths minted %d new series, want at most 1", after-before)
	}
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")); got < 3 {
		t.Fatalf("unmatched series count = %v, want >= 3", got)
	}
}
