package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HairJourneyCompanion/internal/model"
	"HairJourneyCompanion/internal/service"
	"HairJourneyCompanion/pkg/errors"
	"HairJourneyCompanion/pkg/response"
)

// CheckIn 打卡相关的控制面 handler，依赖通过构造函数注入
type CheckIn struct {
	submitter  *service.CheckInSubmitter
	controller *service.PromptController
}

func NewCheckIn(submitter *service.CheckInSubmitter, controller *service.PromptController) *CheckIn {
	return &CheckIn{
		submitter:  submitter,
		controller: controller,
	}
}

// Submit 手动提交一次心情打卡，和提示触发的提交走同一条链路
// POST /v1/check-ins
func (h *CheckIn) Submit(ctx context.Context, c *app.RequestContext) {
	var req model.CheckInRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	mood, ok := model.ParseMood(req.Mood)
	if !ok {
		response.Error(ctx, c, errors.MoodInvalid)
		return
	}

	result, err := h.submitter.Submit(ctx, mood)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// Dismiss 关闭今日提示；当天不再自动提示，手动打卡不受影响
// POST /v1/prompt/dismiss
func (h *CheckIn) Dismiss(ctx context.Context, c *app.RequestContext) {
	dismissedDay, err := h.controller.Dismiss(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, model.DismissResponse{
		Phase:        h.controller.Phase(),
		DismissedDay: dismissedDay,
	})
}
