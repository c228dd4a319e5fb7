package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const instrumentationScope = "github.com/jsamuelsen11/discovery-dashboard"

// Attribute keys shared by spans and metric data points.
var (
	AttrHTTPMethod       = attribute.Key("http.method")
	AttrHTTPStatus       = attribute.Key("http.status_code")
	AttrHTTPRoute        = attribute.Key("http.route")
	AttrPeerService      = attribute.Key("peer.service")
	AttrResult           = attribute.Key("result")
	AttrCompletionStatus = attribute.Key("completion.status")
	AttrSettingsTheme    = attribute.Key("settings.theme")
)

// Metrics holds the dashboard's instruments.
type Metrics struct {
	ServerRequestDuration  metric.Float64Histogram
	ServerRequestTotal     metric.Int64Counter
	ClientRequestDuration  metric.Float64Histogram
	ClientRequestTotal     metric.Int64Counter
	CompletionCalculations metric.Int64Counter
	SettingsChanges        metric.Int64Counter
}

// NewMetrics registers the instruments on a meter from mp.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(instrumentationScope,
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)))

	var errs []error
	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		errs = append(errs, err)
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		errs = append(errs, err)
		return c
	}

	m := &Metrics{
		ServerRequestDuration: histogram("http.server.request.duration", "Duration of requests served by the dashboard"),
		ServerRequestTotal:    counter("http.server.request.total", "Requests served by the dashboard", "{request}"),
		ClientRequestDuration: histogram("http.client.request.duration", "Duration of calls to the discovery backend"),
		ClientRequestTotal:    counter("http.client.request.total", "Calls made to the discovery backend", "{request}"),
		CompletionCalculations: counter("completion.calculations",
			"Completion calculations by resulting status", "{calculation}"),
		SettingsChanges: counter("settings.changes", "Settings changes applied by the store", "{change}"),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordCompletion counts one completion calculation that produced status.
// It is a no-op on a nil *Metrics.
func (m *Metrics) RecordCompletion(ctx context.Context, status string) {
	if m == nil || m.CompletionCalculations == nil {
		return
	}
	m.CompletionCalculations.Add(ctx, 1, metric.WithAttributes(AttrCompletionStatus.String(status)))
}

// RecordSettingsChange counts one applied settings change. It is a no-op on
// a nil *Metrics.
func (m *Metrics) RecordSettingsChange(ctx context.Context, theme string) {
	if m == nil || m.SettingsChanges == nil {
		return
	}
	m.SettingsChanges.Add(ctx, 1, metric.WithAttributes(AttrSettingsTheme.String(theme)))
}
