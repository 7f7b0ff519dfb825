package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"MarketTerminal/internal/logger"
)

var (
	RefreshCycles = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "terminal_refresh_cycles_total",
			Help: "Completed fetch and render cycles",
		})
	BatchFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terminal_fetch_batch_failures_total",
			Help: "Upstream batches abandoned because of an error",
		},
		[]string{"source"},
	)
	FetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "terminal_fetch_duration_seconds",
			Help:    "Time spent fetching one upstream batch",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)
	QuotesDisplayed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "terminal_quotes_displayed",
			Help: "Rows shown in the most recent frame",
		})
)

func init() {
	prometheus.MustRegister(RefreshCycles, BatchFailures, FetchDuration, QuotesDisplayed)
}

// Router exposes the default registry on /metrics.
func Router() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Serve runs the metrics listener until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Log.Info("metrics server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
