package otelhttpclient

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/goto/remark/pkg/opentelemetry/otelhttpclient"

// HTTPTransport traces outgoing requests and records their latency, labelled
// with the name of the collaborator being called.
type HTTPTransport struct {
	roundTripper http.RoundTripper
	name         string
	latency      metric.Float64Histogram
}

func NewHTTPTransport(baseTransport http.RoundTripper, name string) *HTTPTransport {
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}

	latency, err := otel.Meter(meterName).Float64Histogram(
		"remark.http.client.duration",
		metric.WithDescription("Duration of outbound HTTP requests"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		otel.Handle(err)
		latency = noop.Float64Histogram{}
	}

	return &HTTPTransport{
		roundTripper: otelhttp.NewTransport(baseTransport),
		name:         name,
		latency:      latency,
	}
}

func (t *HTTPTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.roundTripper.RoundTrip(req)

	attrs := []attribute.KeyValue{
		attribute.String("client", t.name),
		attribute.String("method", req.Method),
		attribute.String("host", req.URL.Host),
	}
	if resp != nil {
		attrs = append(attrs, attribute.Int("status_code", resp.StatusCode))
	}
	if err != nil {
		attrs = append(attrs, attribute.Bool("error", true))
	}
	t.latency.Record(req.Context(), float64(time.Since(start).Milliseconds()), metric.WithAttributes(attrs...))

	return resp, err
}
