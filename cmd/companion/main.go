package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"HairJourneyCompanion/config"
	"HairJourneyCompanion/internal/handler"
	"HairJourneyCompanion/internal/middleware"
	"HairJourneyCompanion/internal/presenter"
	"HairJourneyCompanion/internal/router"
	"HairJourneyCompanion/internal/service"
	"HairJourneyCompanion/internal/store"
	"HairJourneyCompanion/pkg/logger"
	"HairJourneyCompanion/pkg/metrics"
	"HairJourneyCompanion/pkg/otel"
	"HairJourneyCompanion/pkg/wordpress"
)

func main() {
	// 日志部分
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	// 遥测按需初始化；关闭时其余链路全部 no-op
	if config.Cfg.TelemetryEnabled {
		shutdownTelemetry, err := otel.Init(ctx, otel.Config{
			ServiceName:    config.Cfg.ServiceName,
			ServiceVersion: config.Cfg.ServiceVersion,
			Environment:    config.Cfg.Environment,
			OTLPEndpoint:   config.Cfg.OTLPEndpoint,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize telemetry", zap.Error(err))
			logger.Logger.Info("Telemetry will be disabled")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTelemetry(shutdownCtx); err != nil {
					logger.Logger.Error("Failed to shutdown telemetry", zap.Error(err))
				}
			}()
		}

		if err := metrics.InitMetrics(); err != nil {
			logger.Logger.Warn("Failed to initialize companion metrics", zap.Error(err))
		}
	}

	// 初始化中间件
	if err := middleware.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	dayLoc := config.Cfg.DayLocation()

	// day-stamp 存储，记得关闭外部连接
	stamps, err := store.New(store.Options{
		Backend:  config.Cfg.StateBackend,
		FilePath: config.Cfg.StateFilePath,
		Redis: store.RedisOptions{
			Addr:     config.Cfg.RedisAddr,
			Password: config.Cfg.RedisPassword,
			DB:       config.Cfg.RedisDB,
			Prefix:   config.Cfg.RedisPrefix,
		},
	}, dayLoc)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize day-stamp store", zap.Error(err))
	}
	defer stamps.Close()

	enabled := config.Cfg.GamificationEnabled()
	if !enabled {
		logger.Logger.Warn("Gamification backend not configured, check-in features disabled")
	}

	client := wordpress.NewHTTPClient(wordpress.Config{
		AjaxURL: config.Cfg.AjaxURL,
		Nonce:   config.Cfg.Nonce,
		Timeout: config.Cfg.RequestTimeout(),
	})

	pres := presenter.NewConsolePresenter(os.Stdout, presenter.Timings{
		ToastDuration:     time.Duration(config.Cfg.ToastDurationMS) * time.Millisecond,
		BadgeInitialDelay: time.Duration(config.Cfg.BadgeInitialDelayMS) * time.Millisecond,
		BadgeInterval:     time.Duration(config.Cfg.BadgeIntervalMS) * time.Millisecond,
		BadgeDuration:     time.Duration(config.Cfg.BadgeDurationMS) * time.Millisecond,
	})
	defer pres.Wait()

	controller := service.NewPromptController(client, stamps, pres, enabled)
	submitter := service.NewCheckInSubmitter(client, stamps, pres, controller, enabled)

	// 启动时跑一次提示判定，等价于一次页面加载
	controller.Evaluate(ctx)

	// 日界翻转调度：零点过后重置状态机并重新判定
	sched, err := gocron.NewScheduler(gocron.WithLocation(dayLoc))
	if err != nil {
		logger.Logger.Fatal("Failed to create scheduler", zap.Error(err))
	}
	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 5))),
		gocron.NewTask(func() {
			controller.ResetForNewDay(ctx)
		}),
	)
	if err != nil {
		logger.Logger.Fatal("Failed to schedule day rollover job", zap.Error(err))
	}
	sched.Start()
	defer func() {
		if err := sched.Shutdown(); err != nil {
			logger.Logger.Error("Failed to shutdown scheduler", zap.Error(err))
		}
	}()

	logger.Logger.Info("Companion starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ControlPort),
		zap.String("environment", config.Cfg.Environment),
		zap.String("day_timezone", config.Cfg.DayTimezone),
		zap.Bool("gamification_enabled", enabled),
	)

	addr := net.JoinHostPort(config.Cfg.ControlHost, config.Cfg.ControlPort)

	var h *server.Hertz
	if config.Cfg.TelemetryEnabled {
		tracerOpt, tracerMw := middleware.NewServerTracerConfig()
		h = server.Default(server.WithHostPorts(addr), tracerOpt)
		h.Use(tracerMw)
	} else {
		h = server.Default(server.WithHostPorts(addr))
	}

	router.Register(h, handler.NewCheckIn(submitter, controller), handler.NewState(controller))

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown control server", zap.Error(err))
		}
	}()

	logger.Logger.Info("Control surface listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Companion shutting down gracefully")
}
