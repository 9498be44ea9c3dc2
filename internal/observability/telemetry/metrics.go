package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	ActiveParkingSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "drivelink_active_parking_sessions",
		Help: "Number of parking sessions currently active",
	})

	ParkingSessionsStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drivelink_parking_sessions_started_total",
		Help: "Total parking sessions started",
	})

	FinesPaidTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drivelink_fines_paid_total",
		Help: "Total fines paid through the simulated payment flow",
	})

	FinesAppealedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drivelink_fines_appealed_total",
		Help: "Total fine appeals submitted",
	})

	AssistantRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drivelink_assistant_requests_total",
		Help: "Total chat requests handled by the diagnostics assistant",
	})

	AssistantLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "drivelink_assistant_latency_seconds",
		Help:    "End-to-end latency of assistant replies, including the simulated thinking delay",
		Buckets: prometheus.DefBuckets,
	})
)
