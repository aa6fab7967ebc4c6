// Package metrics holds the Prometheus collectors for the assessment service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Assessment lifecycle
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "compass_sessions_started_total",
			Help: "Total number of assessment sessions started",
		},
	)

	SessionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "compass_sessions_completed_total",
			Help: "Total number of assessment sessions finished with recommendations",
		},
	)

	AnswersRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_answers_total",
			Help: "Total number of submitted answers by question kind and outcome",
		},
		[]string{"kind", "outcome"}, // outcome: accepted, invalid, rejected
	)

	UndoTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "compass_undo_total",
			Help: "Total number of answers reverted",
		},
	)

	CorruptResumes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "compass_corrupt_resume_total",
			Help: "Total number of resumes that dropped stored answers",
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compass_recommendation_duration_seconds",
			Help:    "Time spent aggregating scores and matching courses",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "compass_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	// WebSocket metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "compass_websocket_connections",
			Help: "Current number of open websocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_websocket_messages_sent_total",
			Help: "Total number of websocket events delivered",
		},
		[]string{"type"},
	)
)

// Answer outcomes
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
)

// RecordAnswer counts one submitted answer
func RecordAnswer(kind, outcome string) {
	if kind == "" {
		kind = "unknown"
	}
	AnswersRecorded.WithLabelValues(kind, outcome).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveRecommendation records how long a finish took to score and match
func ObserveRecommendation(start time.Time) {
	RecommendationDuration.Observe(time.Since(start).Seconds())
}
