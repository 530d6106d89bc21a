// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics defines the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "project_ascent"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	// FlowInvocationsTotal counts completed flows by outcome: "ok",
	// "invalid", or the model error kind.
	FlowInvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "flow",
			Name:      "invocations_total",
			Help:      "Total number of assistant flow invocations",
		},
		[]string{"flow", "outcome"},
	)

	FlowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "flow",
			Name:      "duration_seconds",
			Help:      "Assistant flow duration in seconds, retries included",
			Buckets:   []float64{.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"flow"},
	)

	FlowAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "flow",
			Name:      "attempts_total",
			Help:      "Total number of model invocation attempts",
		},
		[]string{"flow"},
	)

	InFlightRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_rejected_total",
			Help:      "Submissions rejected because the same form was already in flight",
		},
		[]string{"form"},
	)
)
