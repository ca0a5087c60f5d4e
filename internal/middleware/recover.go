package middleware

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"HairJourneyCompanion/config"
	"HairJourneyCompanion/pkg/logger"
	"HairJourneyCompanion/pkg/response"
)

// RecoverMiddleware 捕获 handler panic，记录日志后返回统一 JSON 错误
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}) {
	stack := simplifyStack(debug.Stack())

	logger.Logger.Error("Panic recovered",
		zap.Any("panic", err),
		zap.String("method", string(c.Method())),
		zap.String("path", string(c.Path())),
		zap.String("stack", stack),
	)

	// 异常同步记到当前 span，方便和 trace 对上
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.RecordError(fmt.Errorf("panic: %v", err))
	}

	cause := fmt.Errorf("internal server error")
	if !config.Cfg.IsProduction() {
		cause = fmt.Errorf("panic: %v", err)
	}
	response.Error(ctx, c, cause)
}

// simplifyStack 去掉 runtime 帧，留业务帧
func simplifyStack(stack []byte) string {
	lines := strings.Split(string(stack), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, "runtime/") || strings.Contains(line, "runtime.") {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) > 16 {
		kept = kept[:16]
	}
	return strings.Join(kept, "\n")
}
