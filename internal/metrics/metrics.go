// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration observes request latency by method, route and
	// status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ovation_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// BookingsTotal counts booking attempts by outcome.
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ovation_bookings_total",
			Help: "Booking attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// SeatsSold counts seats claimed by committed bookings.
	SeatsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ovation_seats_sold_total",
			Help: "Seats claimed by committed bookings.",
		},
	)
)
