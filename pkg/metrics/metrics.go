package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	ScrapesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrape_requests_total",
			Help: "Total number of scrape requests by provider variant and outcome",
		},
		[]string{"variant", "outcome"},
	)
	LeadsScrapedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_scraped_total",
			Help: "Total number of leads produced across all scrapes",
		},
	)
	MalformedRecordsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "malformed_place_records_total",
			Help: "Total number of place records skipped during normalization",
		},
	)
	ProviderErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "places_provider_errors_total",
			Help: "Total number of failed calls to the places provider",
		},
		[]string{"variant", "operation"},
	)
	ScrapeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scrape_duration_seconds",
			Help:    "End-to-end duration of one scrape in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)
)

func Init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(ScrapesTotal)
	prometheus.MustRegister(LeadsScrapedTotal)
	prometheus.MustRegister(MalformedRecordsTotal)
	prometheus.MustRegister(ProviderErrorsTotal)
	prometheus.MustRegister(ScrapeDuration)
}
