// Package observe holds the OpenTelemetry instruments recorded by the game
// engine. Tests should build a [Metrics] from their own
// [metric.MeterProvider]; [DefaultMetrics] uses the global provider.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/tatianab/enterprise-empire"

// Metrics holds the metric instruments for the engine.
type Metrics struct {
	// TransitionsApplied counts committed transitions by name.
	TransitionsApplied metric.Int64Counter

	// TransitionsRejected counts transitions refused because of an invalid payload.
	TransitionsRejected metric.Int64Counter

	// Turn records the current turn after each commit.
	Turn metric.Int64Gauge

	// Cash records the company's cash after each commit.
	Cash metric.Float64Gauge
}

// NewMetrics creates the instruments using mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.TransitionsApplied, err = m.Int64Counter("empire.transitions.applied",
		metric.WithDescription("Total committed state transitions by transition name."),
	); err != nil {
		return nil, err
	}
	if met.TransitionsRejected, err = m.Int64Counter("empire.transitions.rejected",
		metric.WithDescription("Total rejected state transitions by transition name."),
	); err != nil {
		return nil, err
	}
	if met.Turn, err = m.Int64Gauge("empire.turn",
		metric.WithDescription("Current game turn."),
	); err != nil {
		return nil, err
	}
	if met.Cash, err = m.Float64Gauge("empire.cash",
		metric.WithDescription("Company cash after the last transition."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns a package-level [Metrics] built from
// [otel.GetMeterProvider]. Panics if instrument creation fails.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordApplied records a committed transition together with the resulting
// turn and cash.
func (m *Metrics) RecordApplied(ctx context.Context, transition string, turn int, cash float64) {
	m.TransitionsApplied.Add(ctx, 1, metric.WithAttributes(attribute.String("transition", transition)))
	m.Turn.Record(ctx, int64(turn))
	m.Cash.Record(ctx, cash)
}

// RecordRejected records a refused transition.
func (m *Metrics) RecordRejected(ctx context.Context, transition string) {
	m.TransitionsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("transition", transition)))
}
