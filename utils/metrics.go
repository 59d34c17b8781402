package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricPrinterSyncCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printfarm_printer_sync_total",
			Help: "Number of Moonraker synchronisations, by outcome",
		},
		[]string{"outcome"},
	)

	MetricPrinterSyncLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "printfarm_printer_sync_duration_seconds",
			Help:    "Duration of a Moonraker synchronisation",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"},
	)

	MetricTimelineSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "printfarm_timeline_subscribers",
			Help: "Number of live timeline websocket subscribers",
		},
	)

	MetricRateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "printfarm_rate_limited_requests_total",
			Help: "Number of requests rejected by the rate limiter",
		},
	)
)
