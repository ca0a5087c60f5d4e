package service

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"HairJourneyCompanion/internal/model"
	"HairJourneyCompanion/internal/presenter"
	"HairJourneyCompanion/internal/store"
	"HairJourneyCompanion/pkg/errors"
	"HairJourneyCompanion/pkg/logger"
	"HairJourneyCompanion/pkg/metrics"
	"HairJourneyCompanion/pkg/wordpress"
)

// CheckInSubmitter 打卡提交链路。
// 设计上的关键不对称：不管后端结果如何，本地都会先落成"今天已完成"
// 并关掉提示——积分账本的正确性完全是服务端的事，这一层只负责
// 不再打扰用户。后端失败对用户静默降级为通用致谢，但会打点上报。
type CheckInSubmitter struct {
	client     wordpress.Client
	stamps     store.Store
	presenter  presenter.Presenter
	controller *PromptController
	enabled    bool
	inFlight   atomic.Bool
}

func NewCheckInSubmitter(client wordpress.Client, stamps store.Store, pres presenter.Presenter, controller *PromptController, enabled bool) *CheckInSubmitter {
	return &CheckInSubmitter{
		client:     client,
		stamps:     stamps,
		presenter:  pres,
		controller: controller,
		enabled:    enabled,
	}
}

// Submit 提交一次心情打卡。手动触发与提示触发走同一条链路，
// 所以被关闭过的提示不影响手动打卡能力。
// 返回 error 仅限调用方错误（功能停用/心情非法/重复并发提交）；
// 后端失败不算错误，降级信息在返回值里
func (s *CheckInSubmitter) Submit(ctx context.Context, mood model.Mood) (*model.CheckInResponse, error) {
	if !s.enabled {
		return nil, errors.GamificationDisabled
	}

	if !mood.Valid() {
		return nil, errors.MoodInvalid
	}

	// "禁用按钮"的进程内等价物：同一时间只允许一次在途提交
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, errors.SubmissionInFlight
	}
	defer s.inFlight.Store(false)

	// 先收敛本地状态，再看网络结果。顺序不可交换
	if err := s.stamps.RecordCompleted(ctx); err != nil {
		logger.Logger.Warn("Failed to record completion stamp", zap.Error(err))
	}
	s.controller.MarkSubmitted()

	result, err := s.client.SubmitCheckIn(ctx, mood)
	if err != nil {
		return s.acknowledge(ctx, mood, err), nil
	}

	s.presenter.ShowRewards(result)
	if m := metrics.GetMetrics(); m != nil {
		m.RecordCheckInSubmitted(ctx, string(mood), "rewarded")
	}

	logger.Logger.Info("Check-in submitted",
		zap.String("mood", string(mood)),
		zap.Int("points_earned", result.PointsEarned),
		zap.Int("streak", result.Streak),
	)

	return &model.CheckInResponse{
		Acknowledged: true,
		Message:      "Check-in recorded",
		Result:       result,
	}, nil
}

// acknowledge 后端失败的软着陆：用户只看到致谢，失败细节进日志和指标
func (s *CheckInSubmitter) acknowledge(ctx context.Context, mood model.Mood, cause error) *model.CheckInResponse {
	reason := "transport"
	if wordpress.IsRejected(cause) {
		reason = "rejected"
	}

	logger.Logger.Error("Check-in degraded to acknowledgment",
		zap.String("mood", string(mood)),
		zap.String("reason", reason),
		zap.Error(cause),
	)

	if m := metrics.GetMetrics(); m != nil {
		m.RecordCheckInFailed(ctx, reason)
		m.RecordCheckInSubmitted(ctx, string(mood), "acknowledged")
	}

	s.presenter.ShowAcknowledgment()

	return &model.CheckInResponse{
		Acknowledged: true,
		Message:      "Thanks for checking in!",
	}
}
