package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Payout Metrics
	BatchesUploaded *prometheus.CounterVec
	RowsIngested    *prometheus.CounterVec
	BatchDecisions  *prometheus.CounterVec
	LineOutcomes    *prometheus.CounterVec
	WalletBalance   *prometheus.GaugeVec
	BalanceSyncs    *prometheus.CounterVec

	// Gateway Metrics
	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec

	// Database Metrics
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec
	DBQueriesTotal     *prometheus.CounterVec
	DBConnectionErrors prometheus.Counter

	// System Metrics
	ServiceUptime    prometheus.Gauge
	ServiceVersion   *prometheus.GaugeVec
	Goroutines       prometheus.Gauge
	MemoryUsageBytes *prometheus.GaugeVec

	// Validation Metrics
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payout_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "payout_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		HTTPResponseSizeBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payout_http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes",
				Buckets: []float64{100, 1000, 10_000, 100_000, 1_000_000},
			},
			[]string{"method", "path", "status_code"},
		),

		BatchesUploaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_batches_uploaded_total",
				Help: "Total number of bulk payout uploads by result",
			},
			[]string{"result"},
		),
		RowsIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_rows_ingested_total",
				Help: "Spreadsheet rows processed during ingestion by outcome",
			},
			[]string{"outcome"},
		),
		BatchDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_batch_decisions_total",
				Help: "Operator accept or deny decisions",
			},
			[]string{"decision"},
		),
		LineOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_line_outcomes_total",
				Help: "Terminal statuses reached by batch line items",
			},
			[]string{"status"},
		),
		WalletBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "payout_wallet_balance",
				Help: "Last known wallet balance per member",
			},
			[]string{"member_id"},
		),
		BalanceSyncs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_balance_sync_total",
				Help: "Gateway balance synchronisation runs by status",
			},
			[]string{"status"},
		),

		GatewayRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_gateway_requests_total",
				Help: "Total number of payment gateway calls",
			},
			[]string{"method", "status"},
		),
		GatewayRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payout_gateway_request_duration_seconds",
				Help:    "Duration of payment gateway calls in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method"},
		),

		DBConnectionsInUse: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "payout_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "payout_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payout_db_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation", "table"},
		),
		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table", "status"},
		),
		DBConnectionErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "payout_db_connection_errors_total",
				Help: "Total number of database connection errors",
			},
		),

		ServiceUptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "payout_service_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
		ServiceVersion: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "payout_service_version_info",
				Help: "Service version information (labels: version, commit, build_date)",
			},
			[]string{"version", "commit", "build_date"},
		),
		Goroutines: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "payout_goroutines",
				Help: "Number of goroutines currently running",
			},
		),
		MemoryUsageBytes: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "payout_memory_usage_bytes",
				Help: "Memory usage in bytes",
			},
			[]string{"type"},
		),

		ValidationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_validation_errors_total",
				Help: "Total number of validation errors",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payout_validation_duration_seconds",
				Help:    "Duration of validation operations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"endpoint"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration, responseSize int) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
	m.HTTPResponseSizeBytes.WithLabelValues(method, path, statusCode).Observe(float64(responseSize))
}

func (m *Metrics) RecordBatchUploaded(result string) {
	m.BatchesUploaded.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordRowIngested(outcome string) {
	m.RowsIngested.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordBatchDecision(decision string) {
	m.BatchDecisions.WithLabelValues(decision).Inc()
}

func (m *Metrics) RecordLineOutcome(status string) {
	m.LineOutcomes.WithLabelValues(status).Inc()
}

func (m *Metrics) UpdateWalletBalance(memberID string, balance decimal.Decimal) {
	m.WalletBalance.WithLabelValues(memberID).Set(balance.InexactFloat64())
}

func (m *Metrics) RecordBalanceSync(status string) {
	m.BalanceSyncs.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordGatewayRequest(method, status string, duration time.Duration) {
	m.GatewayRequestsTotal.WithLabelValues(method, status).Inc()
	m.GatewayRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBConnectionError() {
	m.DBConnectionErrors.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(endpoint string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// UpdateSystemMetrics updates system-level metrics (goroutines, uptime, memory).
func (m *Metrics) UpdateSystemMetrics(uptime time.Duration, memStats *runtime.MemStats) {
	m.ServiceUptime.Set(uptime.Seconds())
	m.Goroutines.Set(float64(runtime.NumGoroutine()))

	m.MemoryUsageBytes.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	m.MemoryUsageBytes.WithLabelValues("sys").Set(float64(memStats.Sys))
	m.MemoryUsageBytes.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
	m.MemoryUsageBytes.WithLabelValues("heap_sys").Set(float64(memStats.HeapSys))
}

func (m *Metrics) SetServiceVersion(version, commit, buildDate string) {
	m.ServiceVersion.WithLabelValues(version, commit, buildDate).Set(1)
}
