package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// KindGauge is the ledger state of one account kind at the time of sampling.
type KindGauge struct {
	Kind    string
	Count   int
	Balance float64
}

type MetricsCollector struct {
	registry          *prometheus.Registry
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	ledgerAccounts    *prometheus.GaugeVec
	ledgerBalance     *prometheus.GaugeVec
	logger            *slog.Logger
}

func NewMetricsCollector(logger *slog.Logger) *MetricsCollector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &MetricsCollector{
		registry: registry,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "teller_operations_total",
			Help: "Teller operations by outcome",
		}, []string{"operation", "outcome"}),
		operationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "teller_operation_duration_seconds",
			Help:    "Time taken to answer a teller operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		ledgerAccounts: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ledger_accounts",
			Help: "Accounts held in the ledger, open or closed",
		}, []string{"kind"}),
		ledgerBalance: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ledger_balance_total",
			Help: "Sum of balances held in the ledger",
		}, []string{"kind"}),
		logger: logger,
	}
}

func (m *MetricsCollector) RecordOperation(operation string, success bool, duration time.Duration) {
	outcome := OutcomeSuccess
	if !success {
		outcome = OutcomeRejected
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *MetricsCollector) UpdateLedger(gauges []KindGauge) {
	for _, g := range gauges {
		m.ledgerAccounts.WithLabelValues(g.Kind).Set(float64(g.Count))
		m.ledgerBalance.WithLabelValues(g.Kind).Set(g.Balance)
	}
}

func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

func (m *MetricsCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *MetricsCollector) StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.GetHandler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		m.logger.Info("Starting metrics server", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("Metrics server failed", slog.String("error", err.Error()))
		}
	}()

	return server
}

func (m *MetricsCollector) Shutdown(ctx context.Context) error {
	m.logger.InfoContext(ctx, "Metrics collector shutdown complete")
	return nil
}
