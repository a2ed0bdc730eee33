// Package metrics exposes ledger counters to prometheus. When disabled every
// recorder is a no-op and nothing listens.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
)

type Recorder interface {
	Outcome(operation string, err error)
	WarningsSent(flag models.WarningFlag, n int)
	IncomePaid(balances int64)
	CommandHandled(command string, took time.Duration)
}

type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	warnings   *prometheus.CounterVec
	income     prometheus.Counter
	commands   *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry, or returns a no-op
// recorder when disabled.
func New(enabled bool) Recorder {
	if !enabled {
		return noopMetrics{}
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rolekeeper_operations_total",
			Help: "Ledger operations by outcome: ok, refused or error",
		}, []string{"operation", "outcome"}),
		warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rolekeeper_deadline_warnings_total",
			Help: "Deadline warnings flagged by window",
		}, []string{"window"}),
		income: factory.NewCounter(prometheus.CounterOpts{
			Name: "rolekeeper_income_balances_total",
			Help: "Balances credited by the income tick",
		}),
		commands: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rolekeeper_command_duration_seconds",
			Help:    "Slash command handling time",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
	}
}

func (m *Metrics) Outcome(operation string, err error) {
	m.operations.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) WarningsSent(flag models.WarningFlag, n int) {
	m.warnings.WithLabelValues(string(flag)).Add(float64(n))
}

func (m *Metrics) IncomePaid(balances int64) {
	m.income.Add(float64(balances))
}

func (m *Metrics) CommandHandled(command string, took time.Duration) {
	m.commands.WithLabelValues(command).Observe(took.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case roles.IsPolicy(err):
		return "refused"
	default:
		return "error"
	}
}

// Serve exposes /metrics on addr until ctx is done. It does nothing for the
// no-op recorder.
func Serve(ctx context.Context, recorder Recorder, addr string) {
	m, ok := recorder.(*Metrics)
	if !ok {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Serving metrics", slog.String("type", "sys"), slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Metrics server failed", slog.String("type", "error"), slog.Any("error", err))
	}
}

type noopMetrics struct{}

func (noopMetrics) Outcome(string, error)                {}
func (noopMetrics) WarningsSent(models.WarningFlag, int) {}
func (noopMetrics) IncomePaid(int64)                     {}
func (noopMetrics) CommandHandled(string, time.Duration) {}
