package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	TradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trades_total",
			Help: "Total executed trades",
		},
		[]string{"side"}, // buy|sell
	)
	TradesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trades_failed_total",
			Help: "Total rejected or failed trades",
		},
	)

	QuoteLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_lookups_total",
			Help: "Total quote lookups by result",
		},
		[]string{"result"}, // ok|not_found|error
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(TradesTotal)
	prometheus.MustRegister(TradesFailed)
	prometheus.MustRegister(QuoteLookups)
	prometheus.MustRegister(WorkerQueueDepth)
}
