package observability_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"uni_advisor/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample per family so they show up in the output
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveRecommendation("favorable")
	observability.ObserveScoringFailure()
	observability.ObservePrediction(true)
	observability.ObserveStore("filter_programs", nil, time.Millisecond)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{
		"uniadvisor_http_requests_total",
		`uniadvisor_recommendations_total{label="favorable"}`,
		"uniadvisor_scoring_failures_total",
		`uniadvisor_classifier_predictions_total{label="positive"}`,
		`uniadvisor_store_queries_total{op="filter_programs",result="none"}`,
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestLabelErr(t *testing.T) {
	if got := observability.LabelErr(nil); got != "none" {
		t.Fatalf("nil error label: %q", got)
	}
	if got := observability.LabelErr(errors.New("x")); got != "*errors.errorString" {
		t.Fatalf("error label: %q", got)
	}
}
