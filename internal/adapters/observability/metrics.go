package observability

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "uniadvisor", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "uniadvisor", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	StoreQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "uniadvisor", Name: "store_queries_total", Help: "Catalog store queries."},
		[]string{"op", "result"},
	)
	StoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "uniadvisor", Name: "store_query_duration_seconds",
			Help:    "Catalog store query duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "uniadvisor", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	Recommendations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "uniadvisor", Name: "recommendations_total", Help: "Recommendations by verdict."},
		[]string{"label"}, // favorable|unfavorable|neutral|no_reviews
	)
	ScoringFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "uniadvisor", Name: "scoring_failures_total", Help: "Reviews scored 0 after an analyzer failure."},
	)
	ClassifierPredictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "uniadvisor", Name: "classifier_predictions_total", Help: "Classifier predictions."},
		[]string{"label"}, // positive|negative
	)
)

// Serve exposes reg on a dedicated listener. An empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, StoreQueries, StoreLatency, CacheEvents,
		Recommendations, ScoringFailures, ClassifierPredictions)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveStore(op string, err error, dur time.Duration) {
	StoreQueries.WithLabelValues(op, LabelErr(err)).Inc()
	StoreLatency.WithLabelValues(op).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveRecommendation(label string) { Recommendations.WithLabelValues(label).Inc() }

func ObserveScoringFailure() { ScoringFailures.Inc() }

func ObservePrediction(positive bool) {
	if positive {
		ClassifierPredictions.WithLabelValues("positive").Inc()
		return
	}
	ClassifierPredictions.WithLabelValues("negative").Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
