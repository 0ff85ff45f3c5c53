package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records template resolution metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: methods must return quickly and must not block resolution.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordApply records one template substitution with its resolver
	// duration.
	RecordApply(ctx context.Context, token string, duration time.Duration)

	// RecordLogin records a connector login attempt and its outcome.
	RecordLogin(ctx context.Context, connector string, duration time.Duration, err error)
}

type otelMetrics struct {
	applyCount    metric.Int64Counter
	applyDuration metric.Float64Histogram
	loginCount    metric.Int64Counter
	loginErrors   metric.Int64Counter
	loginDuration metric.Float64Histogram
}

// NewMetrics creates a Metrics instance recording through the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	applyCount, err := meter.Int64Counter(
		"template.apply.total",
		metric.WithDescription("Total number of template substitutions"),
		metric.WithUnit("{substitution}"),
	)
	if err != nil {
		return nil, err
	}

	applyDuration, err := meter.Float64Histogram(
		"template.apply.duration_ms",
		metric.WithDescription("Template resolver duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	loginCount, err := meter.Int64Counter(
		"connector.login.total",
		metric.WithDescription("Total number of connector login attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	loginErrors, err := meter.Int64Counter(
		"connector.login.errors",
		metric.WithDescription("Total number of failed connector login attempts"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	loginDuration, err := meter.Float64Histogram(
		"connector.login.duration_ms",
		metric.WithDescription("Connector login duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		applyCount:    applyCount,
		applyDuration: applyDuration,
		loginCount:    loginCount,
		loginErrors:   loginErrors,
		loginDuration: loginDuration,
	}, nil
}

func (m *otelMetrics) RecordApply(ctx context.Context, token string, duration time.Duration) {
	opt := metric.WithAttributes(attribute.String("template.token", token))
	m.applyCount.Add(ctx, 1, opt)
	m.applyDuration.Record(ctx, float64(duration.Milliseconds()), opt)
}

func (m *otelMetrics) RecordLogin(ctx context.Context, connector string, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("connector.name", connector))
	m.loginCount.Add(ctx, 1, opt)
	if err != nil {
		m.loginErrors.Add(ctx, 1, opt)
	}
	m.loginDuration.Record(ctx, float64(duration.Milliseconds()), opt)
}

// nopMetrics records nothing.
type nopMetrics struct{}

func (nopMetrics) RecordApply(context.Context, string, time.Duration)        {}
func (nopMetrics) RecordLogin(context.Context, string, time.Duration, error) {}

// NopMetrics returns a Metrics implementation that records nothing.
func NopMetrics() Metrics {
	return nopMetrics{}
}
