package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// operationTotal counts facade calls by entity, action and result
	operationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "expedientes_operation_total",
		Help: "Total facade operations by entity, action and result",
	}, []string{"entity", "action", "result"})

	// operationDuration tracks end-to-end facade latency including the simulated wait
	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "expedientes_operation_duration_seconds",
		Help:    "Facade operation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	}, []string{"entity", "action"})

	// simulatedLatency tracks the delay drawn by RandomTransport
	simulatedLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "expedientes_simulated_latency_seconds",
		Help:    "Simulated transport latency in seconds",
		Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.8, 1},
	}, []string{"entity", "action"})

	// simulatedFailures counts injected ErrConnection failures
	simulatedFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "expedientes_simulated_failures_total",
		Help: "Total simulated connection failures",
	}, []string{"entity", "action"})
)
