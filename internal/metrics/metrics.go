// Package metrics provides Prometheus metrics for the newsroom service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsroom"

var (
	// FeaturedSaves counts featured list writes by outcome (ok, conflict, rejected, error).
	FeaturedSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "featured_saves_total",
			Help:      "Total number of featured news list writes",
		},
		[]string{"result"},
	)

	// UploadAttempts counts object storage put attempts by result.
	UploadAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_attempts_total",
			Help:      "Total number of object storage upload attempts",
		},
		[]string{"result"},
	)

	// UploadFallbacks counts uploads that ended with the placeholder URL.
	UploadFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_fallbacks_total",
			Help:      "Total number of uploads replaced by the placeholder image",
		},
	)

	// BannerEvents counts tracked banner impressions and clicks.
	BannerEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "banner_events_total",
			Help:      "Total number of tracked banner events",
		},
		[]string{"event"},
	)

	// DegradedReads counts public reads answered with empty or default data after a failure.
	DegradedReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_reads_total",
			Help:      "Total number of public reads served from fallback values",
		},
		[]string{"source"},
	)
)
