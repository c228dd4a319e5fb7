package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/telemetry"
)

// Tracing tests replace the global TracerProvider and so do not run in parallel.

func installTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return recorder
}

func spanAttrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_SpanNamedByRoutePattern(t *testing.T) {
	recorder := installTracer(t)

	h := projectRoute(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, middleware.OpenTelemetry(nil))

	serve(h, http.MethodGet, "/api/v1/projects/17/completion")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET /api/v1/projects/{id}/completion", spans[0].Name())

	attrs := spanAttrs(spans[0].Attributes())
	assert.Equal(t, "GET", attrs["http.method"].AsString())
	assert.Equal(t, "/api/v1/projects/{id}/completion", attrs[telemetry.AttrHTTPRoute].AsString())
	assert.Equal(t, int64(http.StatusNotFound), attrs[telemetry.AttrHTTPStatus].AsInt64())
	assert.Equal(t, "17", attrs["discovery.project_id"].AsString())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code, "4xx is not a server error")
}

func TestOpenTelemetry_UnroutedRequestUsesPath(t *testing.T) {
	recorder := installTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	serve(h, http.MethodPost, "/api/v1/completion")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP POST /api/v1/completion", spans[0].Name())
	assert.Equal(t, int64(http.StatusOK), spanAttrs(spans[0].Attributes())[telemetry.AttrHTTPStatus].AsInt64())
}

func TestOpenTelemetry_ErrorStatusOn5xx(t *testing.T) {
	recorder := installTracer(t)

	h := projectRoute(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, middleware.OpenTelemetry(nil))

	serve(h, http.MethodGet, "/api/v1/projects/1/completion")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	recorder := installTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	serve(h, http.MethodGet, "/api/v1/projects",
		"Traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, traceID, spans[0].SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent().SpanID().String())
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "discovery-dashboard-test")
	require.NoError(t, err)

	h := projectRoute(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}, middleware.OpenTelemetry(metrics))

	serve(h, http.MethodGet, "/api/v1/projects/5/completion")
	serve(h, http.MethodGet, "/api/v1/projects/6/completion")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	var total *metricdata.Sum[int64]
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http.server.request.total" {
				if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
					total = &sum
				}
			}
		}
	}
	require.NotNil(t, total, "http.server.request.total not recorded")
	require.Len(t, total.DataPoints, 1, "both project IDs should share one route series")

	dp := total.DataPoints[0]
	assert.Equal(t, int64(2), dp.Value)
	route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
	assert.Equal(t, "/api/v1/projects/{id}/completion", route.AsString())
	result, _ := dp.Attributes.Value(telemetry.AttrResult)
	assert.Equal(t, "error", result.AsString())
}
