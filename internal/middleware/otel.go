package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

var (
	// 控制面 HTTP 指标
	httpServerRequestTotal   metric.Int64Counter
	httpServerDuration       metric.Float64Histogram
	httpServerActiveRequests metric.Int64UpDownCounter
)

// toValidUTF8 清洗请求里用户可控的字符串，非法 UTF-8 会让指标序列化失败
func toValidUTF8(val string) string {
	return strings.ToValidUTF8(val, "")
}

// initHTTPMetrics 初始化控制面 HTTP 指标
func initHTTPMetrics(meter metric.Meter) error {
	var err error

	httpServerRequestTotal, err = meter.Int64Counter(
		"http.server.requests.total",
		metric.WithDescription("Total number of control surface requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	httpServerDuration, err = meter.Float64Histogram(
		"http.server.duration",
		metric.WithDescription("Control surface request duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0),
	)
	if err != nil {
		return err
	}

	httpServerActiveRequests, err = meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight control surface requests"),
		metric.WithUnit("{request}"),
	)
	return err
}

// OpenTelemetryMiddleware 给每个控制面请求建 span 并记录 HTTP 指标
func OpenTelemetryMiddleware() app.HandlerFunc {
	tracer := otel.Tracer("companion-control")

	return func(ctx context.Context, c *app.RequestContext) {
		if httpServerRequestTotal == nil {
			c.Next(ctx)
			return
		}

		startTime := time.Now()
		httpServerActiveRequests.Add(ctx, 1)

		method := toValidUTF8(string(c.Method()))
		path := toValidUTF8(string(c.Path()))

		spanCtx, span := tracer.Start(ctx, method+" "+path, trace.WithAttributes(
			semconv.HTTPMethod(method),
			semconv.HTTPRoute(path),
		))
		defer span.End()

		if requestID := c.GetHeader("X-Request-Id"); len(requestID) > 0 {
			span.SetAttributes(attribute.String("http.request_id", toValidUTF8(string(requestID))))
		}

		c.Next(spanCtx)

		duration := time.Since(startTime).Seconds()
		statusCode := int(c.Response.StatusCode())

		span.SetAttributes(semconv.HTTPStatusCode(statusCode))
		if statusCode >= 400 {
			span.SetStatus(codes.Error, "HTTP error")
		} else {
			span.SetStatus(codes.Ok, "HTTP success")
		}

		labels := []attribute.KeyValue{
			semconv.HTTPMethod(method),
			semconv.HTTPRoute(path),
			semconv.HTTPStatusCode(statusCode),
		}
		httpServerRequestTotal.Add(ctx, 1, metric.WithAttributes(labels...))
		httpServerDuration.Record(ctx, duration, metric.WithAttributes(labels...))

		httpServerActiveRequests.Add(ctx, -1)
	}
}

// NewServerTracerConfig 创建 Hertz Server 的追踪配置
// 返回用于初始化 Hertz server 的配置选项和追踪中间件
func NewServerTracerConfig(opts ...hertztracing.Option) (config.Option, app.HandlerFunc) {
	tracer, cfg := hertztracing.NewServerTracer(opts...)
	return tracer, hertztracing.ServerMiddleware(cfg)
}
