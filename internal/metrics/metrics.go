// Package metrics exposes Prometheus counters for catalog browsing and HTTP traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookshelf_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookshelf_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookshelf_searches_total",
		Help: "Catalog searches by outcome",
	}, []string{"outcome"})

	ShowMoreTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshelf_show_more_total",
		Help: "Show more actions that revealed another page",
	})

	DetailLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookshelf_detail_lookups_total",
		Help: "Book detail lookups by result",
	}, []string{"result"})

	ThemeAppliedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookshelf_theme_applied_total",
		Help: "Theme applications by resulting theme",
	}, []string{"theme"})

	CatalogBooks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookshelf_catalog_books",
		Help: "Number of books in the loaded catalog",
	})
)

// Outcome and result label values.
const (
	OutcomeResults   = "results"
	OutcomeNoResults = "no_results"
	ResultFound      = "found"
	ResultNotFound   = "not_found"
)

// ObserveSearch records one search and whether it matched anything.
func ObserveSearch(matched int) {
	if matched == 0 {
		SearchesTotal.WithLabelValues(OutcomeNoResults).Inc()
		return
	}
	SearchesTotal.WithLabelValues(OutcomeResults).Inc()
}

// ObserveDetail records one detail lookup.
func ObserveDetail(found bool) {
	if found {
		DetailLookupsTotal.WithLabelValues(ResultFound).Inc()
		return
	}
	DetailLookupsTotal.WithLabelValues(ResultNotFound).Inc()
}

// ObserveTheme records the theme that ended up applied.
func ObserveTheme(name string) {
	ThemeAppliedTotal.WithLabelValues(name).Inc()
}
