package logger

import (
	"os"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzzap "github.com/hertz-contrib/logger/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"HairJourneyCompanion/config"
)

// Logger 默认是 nop，Init 之前的调用（含测试）安全无输出
var Logger = zap.NewNop()

// Init 初始化全局 zap logger，并接管 Hertz 的 hlog 输出
func Init() {
	level := zap.NewAtomicLevel()
	level.SetLevel(parseLevel(config.Cfg.LoggerLevel))

	hzLogger := hertzzap.NewLogger(
		hertzzap.WithCoreEnc(newEncoder()),
		hertzzap.WithCoreWs(newWriteSyncer()),
		hertzzap.WithCoreLevel(level),
		hertzzap.WithZapOptions(
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		),
	)
	hlog.SetLogger(hzLogger)
	hlog.SetLevel(toHlogLevel(level.Level()))

	Logger = hzLogger.Logger()
	Logger.Info("Logger initialized",
		zap.String("level", strings.ToUpper(config.Cfg.LoggerLevel)),
		zap.String("format", config.Cfg.LoggerFormat),
		zap.String("environment", config.Cfg.Environment),
	)
}

func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// 开发环境走彩色 console 输出，生产环境走 JSON
func newEncoder() zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	if config.Cfg.IsDevelopment() || strings.EqualFold(config.Cfg.LoggerFormat, "text") {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg)
	}

	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encCfg)
}

func newWriteSyncer() zapcore.WriteSyncer {
	if strings.EqualFold(config.Cfg.LoggerOutputPath, "stdout") {
		return zapcore.AddSync(os.Stdout)
	}

	file, err := os.OpenFile(config.Cfg.LoggerOutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		panic("failed to open log file: " + err.Error())
	}

	return zapcore.AddSync(file)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toHlogLevel(level zapcore.Level) hlog.Level {
	switch level {
	case zapcore.DebugLevel:
		return hlog.LevelDebug
	case zapcore.WarnLevel:
		return hlog.LevelWarn
	case zapcore.ErrorLevel:
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}
