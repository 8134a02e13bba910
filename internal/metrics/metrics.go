// Package metrics defines the Prometheus instrumentation for the portal
// data pipeline and its HTTP facade. All metrics register against a
// caller-provided registry so tests can use isolated registries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Data quality metrics
	DataQualityIssues *prometheus.CounterVec

	// Source load metrics
	SourceLoadsTotal *prometheus.CounterVec

	// Query metrics
	QueryRequestsTotal   *prometheus.CounterVec
	QueryDurationSeconds *prometheus.HistogramVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Link QA gauges, refreshed on every data load
	LinkRecords         prometheus.Gauge
	LinkInvalidURLs     prometheus.Gauge
	LinkEmptyCodes      prometheus.Gauge
	LinkWarnings        prometheus.Gauge
	LinkUnresolvedUnits prometheus.Gauge

	// Catalog gauges
	CatalogCourses prometheus.Gauge
	CatalogSkipped prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		DataQualityIssues: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_data_quality_issues_total",
				Help: "Total number of record-level data quality issues detected",
			},
			[]string{"issue_type"}, // issue_type: invalid_url, empty_code, unit_title_mismatch, unresolved_unit, missing_name
		),

		SourceLoadsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_source_loads_total",
				Help: "Total number of data source load attempts by source and outcome",
			},
			[]string{"source", "status"}, // status: success, error, empty
		),

		QueryRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_query_requests_total",
				Help: "Total number of query requests by endpoint",
			},
			[]string{"endpoint"}, // endpoint: courses, links, availability, qa
		),

		QueryDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_query_duration_seconds",
				Help:    "Query handling duration in seconds by endpoint",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}, // in-memory queries are sub-millisecond
			},
			[]string{"endpoint"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_http_errors_total",
				Help: "Total HTTP errors by type and endpoint",
			},
			[]string{"error_type", "endpoint"}, // error_type: bad_request, not_found, internal
		),

		LinkRecords: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "portal_link_records",
			Help: "Number of normalized link records after deduplication",
		}),
		LinkInvalidURLs: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "portal_link_invalid_urls",
			Help: "Number of link records without a valid wizard URL",
		}),
		LinkEmptyCodes: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "portal_link_empty_codes",
			Help: "Number of link records without a process code",
		}),
		LinkWarnings: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "portal_link_warnings",
			Help: "Number of link records whose title diverges from the resolved unit",
		}),
		LinkUnresolvedUnits: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "portal_link_unresolved_units",
			Help: "Number of link records whose unit fell back to a literal key",
		}),

		CatalogCourses: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "portal_catalog_courses",
			Help: "Number of distinct courses in the built catalog",
		}),
		CatalogSkipped: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "portal_catalog_skipped_items",
			Help: "Number of malformed source items skipped during the catalog build",
		}),
	}

	return m
}

// RecordDataQualityIssue records one record-level data quality issue
func (m *Metrics) RecordDataQualityIssue(issueType string) {
	m.DataQualityIssues.WithLabelValues(issueType).Inc()
}

// RecordSourceLoad records one data source load attempt
func (m *Metrics) RecordSourceLoad(source, status string) {
	m.SourceLoadsTotal.WithLabelValues(source, status).Inc()
}

// RecordQuery records a query request with its duration in seconds
func (m *Metrics) RecordQuery(endpoint string, duration float64) {
	m.QueryRequestsTotal.WithLabelValues(endpoint).Inc()
	m.QueryDurationSeconds.WithLabelValues(endpoint).Observe(duration)
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, endpoint string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}

// SetLinkQA refreshes the link QA gauges from the latest report counters
func (m *Metrics) SetLinkQA(total, invalidURLs, emptyCodes, warnings, unresolvedUnits int) {
	m.LinkRecords.Set(float64(total))
	m.LinkInvalidURLs.Set(float64(invalidURLs))
	m.LinkEmptyCodes.Set(float64(emptyCodes))
	m.LinkWarnings.Set(float64(warnings))
	m.LinkUnresolvedUnits.Set(float64(unresolvedUnits))
}

// SetCatalogStats refreshes the catalog gauges after a build
func (m *Metrics) SetCatalogStats(courses, skipped int) {
	m.CatalogCourses.Set(float64(courses))
	m.CatalogSkipped.Set(float64(skipped))
}
