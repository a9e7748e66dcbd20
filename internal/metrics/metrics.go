// Package metrics defines the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequests counts recommendation passes by outcome.
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	// CacheLookups counts recommendation cache lookups by result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_cache_lookups_total",
			Help: "Total number of cache lookups by result",
		},
		[]string{"result"},
	)

	// SkillMatchTotal counts skill-match evaluations by source path.
	SkillMatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_match_evaluations_total",
			Help: "Total number of skill-match evaluations by source (ai or fallback)",
		},
		[]string{"source"},
	)

	// ScoringDuration observes the duration of full catalog scoring passes.
	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "recommendation_scoring_duration_seconds",
			Help: "Duration of catalog scoring passes in seconds",
		},
	)
)
