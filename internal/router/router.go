package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"HairJourneyCompanion/internal/handler"
	"HairJourneyCompanion/internal/middleware"
)

// Register 注册控制面路由；handler 依赖由 main 组装后传入
func Register(h *server.Hertz, checkIn *handler.CheckIn, state *handler.State) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	h.GET("/ping", handler.Ping)

	v1 := h.Group("/v1")

	// 状态快照路由
	{
		v1.GET("/state", state.Get)
		v1.GET("/stats", state.Stats)
	}

	// 打卡路由
	checkIns := v1.Group("/check-ins")
	{
		checkIns.POST("", checkIn.Submit)
	}

	// 提示路由
	prompt := v1.Group("/prompt")
	{
		prompt.POST("/dismiss", checkIn.Dismiss)
	}
}
