package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                        sync.Once
	metricsRouter               *chi.Mux
	eligibilityCheckDuration    *prometheus.HistogramVec
	claimFetchDuration          *prometheus.HistogramVec
	referralEventsCounter       *prometheus.CounterVec
	malformedEventCounter       prometheus.Counter
	activeSubscriptionsGauge    prometheus.Gauge
	notificationErrorCounter    *prometheus.CounterVec
	historicalReplayDuration    *prometheus.HistogramVec
	dbLatency                   *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	eligibilityCheckDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eligibility_check_duration_seconds",
			Help:    "Histogram of eligibility check durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	claimFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "claim_shard_fetch_duration_seconds",
			Help:    "Histogram of claim shard fetch durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	referralEventsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "referral_events_total",
			Help: "The total number of referral events handled, split by outcome.",
		},
		[]string{"outcome"},
	)

	malformedEventCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "malformed_referral_events_total",
			Help: "The total number of referral logs dropped as malformed.",
		},
	)

	activeSubscriptionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_referral_subscriptions",
			Help: "Number of accounts with an active referral subscription.",
		},
	)

	notificationErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_error_total",
			Help: "The total number of errors when publishing outbound notifications.",
		},
		[]string{"kind"},
	)

	historicalReplayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "historical_replay_duration_seconds",
			Help:    "Histogram of per-account historical replay durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		eligibilityCheckDuration,
		claimFetchDuration,
		referralEventsCounter,
		malformedEventCounter,
		activeSubscriptionsGauge,
		notificationErrorCounter,
		historicalReplayDuration,
		dbLatency,
	)
}

func outcomeLabel(failure bool) string {
	if failure {
		return Error.String()
	}
	return Success.String()
}

func RecordEligibilityCheckDuration(d time.Duration, failure bool) {
	if eligibilityCheckDuration == nil {
		return
	}
	eligibilityCheckDuration.WithLabelValues(outcomeLabel(failure)).Observe(d.Seconds())
}

func RecordClaimFetchDuration(d time.Duration, failure bool) {
	if claimFetchDuration == nil {
		return
	}
	claimFetchDuration.WithLabelValues(outcomeLabel(failure)).Observe(d.Seconds())
}

func IncReferralEvents(outcome string) {
	if referralEventsCounter == nil {
		return
	}
	referralEventsCounter.WithLabelValues(outcome).Inc()
}

func IncMalformedEvents() {
	if malformedEventCounter == nil {
		return
	}
	malformedEventCounter.Inc()
}

func RecordActiveSubscriptions(count int) {
	if activeSubscriptionsGauge == nil {
		return
	}
	activeSubscriptionsGauge.Set(float64(count))
}

func IncNotificationErrors(kind string) {
	if notificationErrorCounter == nil {
		return
	}
	notificationErrorCounter.WithLabelValues(kind).Inc()
}

func RecordHistoricalReplayDuration(d time.Duration, failure bool) {
	if historicalReplayDuration == nil {
		return
	}
	historicalReplayDuration.WithLabelValues(outcomeLabel(failure)).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	if dbLatency == nil {
		return
	}
	dbLatency.WithLabelValues(method, outcomeLabel(failure)).Observe(d.Seconds())
}
