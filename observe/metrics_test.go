package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	// Recording must be safe regardless of outcome.
	ctx := context.Background()
	m.RecordApply(ctx, "DATE", time.Millisecond)
	m.RecordLogin(ctx, "gcapi", 10*time.Millisecond, nil)
	m.RecordLogin(ctx, "gcapi", 10*time.Millisecond, errors.New("boom"))
}

func TestNopMetrics(t *testing.T) {
	m := NopMetrics()
	m.RecordApply(context.Background(), "DATE", time.Millisecond)
	m.RecordLogin(context.Background(), "gcapi", time.Millisecond, nil)
}
