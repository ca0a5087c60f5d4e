package middleware

import (
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"HairJourneyCompanion/pkg/logger"
)

// Init 初始化所有中间件；目前只有 HTTP 指标需要前置初始化
func Init() error {
	meter := otel.GetMeterProvider().Meter("companion-control")
	if err := initHTTPMetrics(meter); err != nil {
		logger.Logger.Error("Failed to initialize HTTP metrics", zap.Error(err))
		return err
	}

	logger.Logger.Info("All middlewares initialized successfully")
	return nil
}
