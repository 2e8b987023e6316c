package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type httpInstruments struct {
	requests  metric.Int64Counter
	durations metric.Float64Histogram
}

func newHTTPInstruments(meterProvider metric.MeterProvider, namespace string) (*httpInstruments, error) {
	meter := meterProvider.Meter(namespace)

	requests, err := meter.Int64Counter(
		namespace+"_http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	durations, err := meter.Float64Histogram(
		namespace+"_http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &httpInstruments{requests: requests, durations: durations}, nil
}

// HTTPMetricsMiddleware counts and times requests labelled by method, route pattern
// and status code. Routes are reported as registered (/v1/customers/:id) so ids never
// become label values. If the instruments cannot be created the middleware only
// passes requests through.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	instruments, err := newHTTPInstruments(meterProvider, namespace)
	if err != nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", sanitizePath(c.FullPath())),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		)
		ctx := c.Request.Context()
		instruments.requests.Add(ctx, 1, attrs)
		instruments.durations.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

// sanitizePath maps unmatched requests (empty route) to "unknown".
func sanitizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}
