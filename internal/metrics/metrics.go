// Package metrics defines the Prometheus collectors exported by ShelfView.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTotal counts HTTP requests by method, route pattern and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelfview_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	// RequestDuration is the latency of HTTP requests.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shelfview_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	// DeriveTotal counts pipeline derivations by cache outcome (hit, miss, off).
	DeriveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelfview_derive_total",
			Help: "Total number of filter/sort derivations",
		},
		[]string{"cache"},
	)
	// ViewsActive is the number of live paginated views.
	ViewsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shelfview_views_active",
			Help: "Number of active paginated views",
		},
	)
)
