// Package metrics provides Prometheus metrics for the HacNet API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by method, path and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hacknet",
		Name:      "http_requests_total",
		Help:      "HTTP requests processed, labeled by method, path and status.",
	}, []string{"method", "path", "status"})

	// MatchRequests counts ranking requests by outcome: ranked, entitlement,
	// unavailable, malformed.
	MatchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hacknet",
		Name:      "match_requests_total",
		Help:      "Ranking requests sent through the recommendation bridge, by outcome.",
	}, []string{"outcome"})

	// MatchLatency observes the round trip to the ranking engine.
	MatchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hacknet",
		Name:      "match_latency_seconds",
		Help:      "Latency of ranking engine round trips.",
		Buckets:   prometheus.DefBuckets,
	})

	// JoinRequests counts membership requests by outcome: created, duplicate,
	// self_host.
	JoinRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hacknet",
		Name:      "join_requests_total",
		Help:      "Team join requests, by outcome.",
	}, []string{"outcome"})

	// WorkspaceConnections gauges live websocket connections per workspace.
	WorkspaceConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hacknet",
		Name:      "workspace_connections",
		Help:      "Currently open team workspace connections.",
	})
)
