package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"
)

func newRouter(mw ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(mw...)
	r.Get("/components/{name}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("component " + chi.URLParam(r, "name")))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return r
}

func serve(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := serve(h, http.MethodGet, "/", nil)
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	rec = serve(h, http.MethodGet, "/", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	serve(h, http.MethodGet, "/", http.Header{RequestIDHeader: {strings.Repeat("x", 200)}})
	assert.NotEqual(t, strings.Repeat("x", 200), seen, "oversized ids are replaced")

	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestAccessLog(t *testing.T) {
	buf := &bytes.Buffer{}
	log := zerolog.New(buf)

	h := newRouter(RequestID, AccessLog(log))
	serve(h, http.MethodGet, "/components/button", nil)
	serve(h, http.MethodGet, "/boom", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "/components/button", first["path"])
	assert.Equal(t, float64(200), first["status"])
	assert.Equal(t, float64(len("component button")), first["bytes"])
	assert.NotEmpty(t, first["request_id"])

	assert.Equal(t, "error", second["level"])
	assert.Equal(t, float64(500), second["status"])
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	require.NotNil(t, m.Counter)
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	require.NotNil(t, m.Gauge)
	return m.GetGauge().GetValue()
}

func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	require.True(t, ok, "observer %T is not a metric", o)
	var m dto.Metric
	require.NoError(t, metric.Write(&m))
	require.NotNil(t, m.Histogram)
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))

	h := newRouter(m.Handler)
	serve(h, http.MethodGet, "/components/button", nil)
	serve(h, http.MethodGet, "/components/hero", nil)
	serve(h, http.MethodGet, "/boom", nil)
	serve(h, http.MethodGet, "/missing", nil)

	assert.Equal(t, 2.0, counterValue(t, m.requestsTotal.WithLabelValues("/components/{name}", "GET", "200")))
	assert.Equal(t, 1.0, counterValue(t, m.requestsTotal.WithLabelValues("/boom", "GET", "500")))
	assert.Equal(t, 1.0, counterValue(t, m.requestsTotal.WithLabelValues("unmatched", "GET", "404")))
	assert.Equal(t, uint64(2), histogramCount(t, m.requestDuration.WithLabelValues("/components/{name}", "GET")))
	assert.Equal(t, 0.0, gaugeValue(t, m.inFlight))

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "test_http_requests_total")
}

func TestMetricsRecorders(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.ObserveRender("index", 5*time.Millisecond)
	m.SetReloadClients(3)
	m.RecordReload()
	m.RecordReload()

	assert.Equal(t, uint64(1), histogramCount(t, m.renderDuration.WithLabelValues("index")))
	assert.Equal(t, 3.0, gaugeValue(t, m.reloadClients))
	assert.Equal(t, 2.0, counterValue(t, m.reloadsTotal))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.ObserveRender("x", time.Second)
		nilMetrics.SetReloadClients(1)
		nilMetrics.RecordReload()
	})
}

// recordingSpan captures what the middleware sets on a span.
type recordingSpan struct {
	noop.Span
	name   string
	attrs  []attribute.KeyValue
	status codes.Code
	ended  bool
}

func (s *recordingSpan) SetName(name string) { s.name = name }
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) { s.attrs = append(s.attrs, kv...) }
func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }
func (s *recordingSpan) End(...trace.SpanEndOption) { s.ended = true }
func (s *recordingSpan) IsRecording() bool { return true }

func (s *recordingSpan) attr(key string) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

type recordingTracer struct {
	embedded.Tracer
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordingSpan{name: name, attrs: cfg.Attributes()}
	t.spans = append(t.spans, span)
	return trace.ContextWithSpan(ctx, span), span
}

type recordingProvider struct {
	embedded.TracerProvider
	tracer *recordingTracer
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return p.tracer
}

func TestOpenTelemetry(t *testing.T) {
	tracer := &recordingTracer{}
	var inHandler trace.Span

	r := chi.NewRouter()
	r.Use(RequestID, OpenTelemetry(WithTracerProvider(&recordingProvider{tracer: tracer})))
	r.Get("/components/{name}", func(w http.ResponseWriter, r *http.Request) {
		inHandler = SpanFromContext(r)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	serve(r, http.MethodGet, "/components/button?theme=dark", nil)
	serve(r, http.MethodGet, "/boom", nil)

	require.Len(t, tracer.spans, 2)

	ok := tracer.spans[0]
	assert.Equal(t, "GET /components/{name}", ok.name)
	assert.Same(t, ok, inHandler)
	assert.True(t, ok.ended)
	assert.Equal(t, codes.Ok, ok.status)
	target, found := ok.attr("http.target")
	require.True(t, found)
	assert.Equal(t, "/components/button?theme=dark", target.AsString())
	status, _ := ok.attr("http.status_code")
	assert.Equal(t, int64(200), status.AsInt64())
	_, found = ok.attr("daisy.request_id")
	assert.True(t, found)

	failed := tracer.spans[1]
	assert.Equal(t, codes.Error, failed.status)
}

func TestOpenTelemetryFilter(t *testing.T) {
	tracer := &recordingTracer{}
	h := newRouter(OpenTelemetry(
		WithTracerProvider(&recordingProvider{tracer: tracer}),
		WithFilter(func(r *http.Request) bool { return r.URL.Path != "/boom" }),
		WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))

	serve(h, http.MethodGet, "/boom", nil)
	assert.Empty(t, tracer.spans)

	serve(h, http.MethodGet, "/components/x", nil)
	require.Len(t, tracer.spans, 1)
	v, found := tracer.spans[0].attr("test.attr")
	require.True(t, found)
	assert.Equal(t, "ok", v.AsString())
}
