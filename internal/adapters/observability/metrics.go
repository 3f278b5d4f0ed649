package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stays", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stays", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ModelRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stays", Name: "model_requests_total", Help: "Outbound model calls."},
		[]string{"model", "outcome"}, // outcome: ok|unauthorized|rate_limited|timeout|upstream
	)
	ModelLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stays", Name: "model_request_duration_seconds",
			Help:    "Outbound model call duration seconds.",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"model"},
	)
	ParseRetries = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "stays", Name: "parse_retries_total", Help: "Search attempts reissued after malformed model output."},
	)
	DroppedListings = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "stays", Name: "dropped_listings_total", Help: "Listings rejected for missing or invalid fields."},
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

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
	reg.MustRegister(HTTPRequests, HTTPLatency, ModelRequests, ModelLatency, ParseRetries, DroppedListings)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveModel(model, outcome string, dur time.Duration) {
	ModelRequests.WithLabelValues(model, outcome).Inc()
	ModelLatency.WithLabelValues(model).Observe(dur.Seconds())
}

func ObserveParseRetry() { ParseRetries.Inc() }

func ObserveDroppedListings(n int) { DroppedListings.Add(float64(n)) }
