package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HairJourneyCompanion/internal/service"
	"HairJourneyCompanion/pkg/errors"
	"HairJourneyCompanion/pkg/response"
)

// State 状态快照相关的控制面 handler
type State struct {
	controller *service.PromptController
}

func NewState(controller *service.PromptController) *State {
	return &State{controller: controller}
}

// Get 返回进程内打卡状态快照，不触发网络请求
// GET /v1/state
func (h *State) Get(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, h.controller.State(ctx))
}

// Stats 重新拉取游戏化统计并返回
// GET /v1/stats
func (h *State) Stats(ctx context.Context, c *app.RequestContext) {
	stats, ok := h.controller.RefreshStats(ctx)
	if !ok {
		response.Error(ctx, c, errors.StatsUnavailable)
		return
	}

	response.Success(ctx, c, stats)
}

// Ping 存活探测
// GET /ping
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, map[string]string{"message": "pong"})
}
