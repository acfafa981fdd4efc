// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Record metrics
	TransfersRecorded    prometheus.Counter
	TransfersCategorized *prometheus.CounterVec
	RecordsStored        *prometheus.CounterVec
	RecordErrors         *prometheus.CounterVec

	// Report metrics
	ReportRunsTotal  *prometheus.CounterVec
	ReportDuration   prometheus.Histogram
	TimelineEvents   prometheus.Gauge
	TaxRowsGenerated prometheus.Gauge

	// Reconciliation metrics
	SnapshotsTaken         prometheus.Counter
	ReconciliationDrift    prometheus.Gauge
	ReconciliationVariance prometheus.Counter
	StakeAccountsParsed    prometheus.Counter
	StakeParseErrors       prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Health metrics
	LastSuccessfulReport   prometheus.Gauge
	LastSuccessfulSnapshot prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "validator_ledger"
	}

	return &Metrics{
		// Record metrics
		TransfersRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "transfers_recorded_total",
			Help:      "Total number of transfers recorded",
		}),
		TransfersCategorized: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "transfers_categorized_total",
			Help:      "Total number of transfers categorized by bucket",
		}, []string{"bucket"}),
		RecordsStored: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "stored_total",
			Help:      "Total number of records stored by kind",
		}, []string{"kind"}),
		RecordErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "errors_total",
			Help:      "Total number of record processing errors by kind",
		}, []string{"kind", "error_type"}),

		// Report metrics
		ReportRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "runs_total",
			Help:      "Total number of report runs by status",
		}, []string{"status"}),
		ReportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "duration_seconds",
			Help:      "Report generation duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		}),
		TimelineEvents: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "timeline_events",
			Help:      "Number of events in the last generated timeline",
		}),
		TaxRowsGenerated: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "tax_rows",
			Help:      "Number of rows in the last generated tax ledger",
		}),

		// Reconciliation metrics
		SnapshotsTaken: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "snapshots_total",
			Help:      "Total number of position snapshots taken",
		}),
		ReconciliationDrift: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "drift_lamports",
			Help:      "Signed drift between expected and actual holdings in lamports",
		}),
		ReconciliationVariance: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "variance_total",
			Help:      "Total number of snapshots that exceeded the drift tolerance",
		}),
		StakeAccountsParsed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "stake_accounts_parsed_total",
			Help:      "Total number of stake accounts parsed",
		}),
		StakeParseErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "stake_parse_errors_total",
			Help:      "Total number of stake account parse failures",
		}),

		// Database metrics
		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),

		// Health metrics
		LastSuccessfulReport: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_report_timestamp",
			Help:      "Unix timestamp of last successful report run",
		}),
		LastSuccessfulSnapshot: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_snapshot_timestamp",
			Help:      "Unix timestamp of last successful position snapshot",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordTransfer increments the transfers recorded counter.
func RecordTransfer() {
	DefaultMetrics.TransfersRecorded.Inc()
}

// RecordCategorized increments the per-bucket categorization counter.
func RecordCategorized(bucket string, count int) {
	DefaultMetrics.TransfersCategorized.WithLabelValues(bucket).Add(float64(count))
}

// RecordStored increments the stored-records counter for a record kind.
func RecordStored(kind string) {
	DefaultMetrics.RecordsStored.WithLabelValues(kind).Inc()
}

// RecordError records a record processing error.
func RecordError(kind, errorType string) {
	DefaultMetrics.RecordErrors.WithLabelValues(kind, errorType).Inc()
}

// RecordReportRun records a report run and its output sizes.
func RecordReportRun(status string, durationSeconds float64, timelineEvents, taxRows int) {
	DefaultMetrics.ReportRunsTotal.WithLabelValues(status).Inc()
	DefaultMetrics.ReportDuration.Observe(durationSeconds)
	DefaultMetrics.TimelineEvents.Set(float64(timelineEvents))
	DefaultMetrics.TaxRowsGenerated.Set(float64(taxRows))
}

// RecordSnapshot records a reconciliation snapshot outcome.
func RecordSnapshot(driftLamports int64, withinTolerance bool) {
	DefaultMetrics.SnapshotsTaken.Inc()
	DefaultMetrics.ReconciliationDrift.Set(float64(driftLamports))
	if !withinTolerance {
		DefaultMetrics.ReconciliationVariance.Inc()
	}
}

// RecordStakeParsed increments the stake accounts parsed counter.
func RecordStakeParsed() {
	DefaultMetrics.StakeAccountsParsed.Inc()
}

// RecordStakeParseError increments the stake parse error counter.
func RecordStakeParseError() {
	DefaultMetrics.StakeParseErrors.Inc()
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
	}
}
