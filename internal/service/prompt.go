package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"HairJourneyCompanion/internal/model"
	"HairJourneyCompanion/internal/presenter"
	"HairJourneyCompanion/internal/store"
	"HairJourneyCompanion/pkg/logger"
	"HairJourneyCompanion/pkg/metrics"
	"HairJourneyCompanion/pkg/wordpress"
)

// PromptController 每日打卡提示状态机。
// 每个"日界周期"（启动或跨日翻转）最多自动提示一次；判定顺序：
// 本地已完成 → 本地已关闭 → 服务端 checked_in_today → 才进入 Prompting。
// 判定严格等统计拉取结束后进行，统计拿不到一律不提示。
type PromptController struct {
	mu        sync.Mutex
	phase     model.PromptPhase
	stats     *model.GamificationStats
	client    wordpress.Client
	stamps    store.Store
	presenter presenter.Presenter
	enabled   bool
}

func NewPromptController(client wordpress.Client, stamps store.Store, pres presenter.Presenter, enabled bool) *PromptController {
	return &PromptController{
		phase:     model.PhaseIdle,
		client:    client,
		stamps:    stamps,
		presenter: pres,
		enabled:   enabled,
	}
}

// Evaluate 执行一次提示判定；启动时和每次日界翻转后各调用一次。
// 已处于当日终态时直接返回，不会二次提示
func (c *PromptController) Evaluate(ctx context.Context) model.PromptPhase {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		c.phase = model.PhaseSuppressed
		return c.phase
	}

	if c.phase.Terminal() || c.phase == model.PhasePrompting {
		return c.phase
	}

	c.phase = model.PhaseEvaluating

	// 统计无论是否会提示都要拉：状态快照依赖它，服务端判定也依赖它
	c.stats = c.fetchStats(ctx)

	completed, err := c.stamps.CompletedToday(ctx)
	if err != nil {
		logger.Logger.Warn("Failed to read completion stamp", zap.Error(err))
	}
	if completed {
		c.phase = model.PhaseSuppressed
		return c.phase
	}

	dismissed, err := c.stamps.DismissedToday(ctx)
	if err != nil {
		logger.Logger.Warn("Failed to read dismissal stamp", zap.Error(err))
	}
	if dismissed {
		c.phase = model.PhaseSuppressed
		return c.phase
	}

	// 统计缺失按"未知状态"处理，宁可不提示
	if c.stats == nil || c.stats.CheckedInToday {
		c.phase = model.PhaseSuppressed
		return c.phase
	}

	c.phase = model.PhasePrompting
	c.presenter.ShowPrompt(model.MoodOptions())
	if m := metrics.GetMetrics(); m != nil {
		m.RecordPromptShown(ctx)
	}

	logger.Logger.Info("Check-in prompt shown",
		zap.Int("current_streak", c.stats.CurrentStreak),
	)
	return c.phase
}

// Dismiss 用户关闭提示。记录 day-stamp 后当日不再自动提示，
// 但手动打卡通道不受影响
func (c *PromptController) Dismiss(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.stamps.RecordDismissed(ctx); err != nil {
		logger.Logger.Warn("Failed to record dismissal stamp", zap.Error(err))
	}

	if c.phase == model.PhasePrompting {
		c.presenter.ClosePrompt()
		c.phase = model.PhaseDismissed
		if m := metrics.GetMetrics(); m != nil {
			m.RecordPromptDismissed(ctx)
		}
	}

	_, dismissedDay, err := c.stamps.Days(ctx)
	if err != nil {
		return "", err
	}
	return dismissedDay, nil
}

// MarkSubmitted 提交链路在发请求前调用：关提示、进入当日终态。
// 无论后端最终成败，提示当天都不会再出现
func (c *PromptController) MarkSubmitted() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.presenter.ClosePrompt()
	c.phase = model.PhaseSubmitted
}

// ResetForNewDay 日界翻转：回到 Idle 并重新判定，相当于一次新的页面加载
func (c *PromptController) ResetForNewDay(ctx context.Context) model.PromptPhase {
	c.mu.Lock()
	c.phase = model.PhaseIdle
	c.stats = nil
	c.mu.Unlock()

	logger.Logger.Info("Day rollover, re-evaluating check-in prompt")
	return c.Evaluate(ctx)
}

// Phase 当前状态机阶段
func (c *PromptController) Phase() model.PromptPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// State 组装进程内打卡状态快照：统计来自服务端缓存，day-stamp 来自本地存储
func (c *PromptController) State(ctx context.Context) model.CheckInState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := model.CheckInState{
		Enabled: c.enabled,
		Phase:   c.phase,
	}

	completedDay, dismissedDay, err := c.stamps.Days(ctx)
	if err != nil {
		logger.Logger.Warn("Failed to read day stamps for state snapshot", zap.Error(err))
	}
	state.LastCheckInDay = completedDay
	state.DismissedDay = dismissedDay

	if c.stats != nil {
		state.StatsAvailable = true
		state.CurrentStreak = c.stats.CurrentStreak
		state.TotalPoints = c.stats.TotalPoints
		state.Level = c.stats.Level
		state.BadgesEarned = c.stats.BadgesEarned
		state.CheckedInToday = c.stats.CheckedInToday
	}

	return state
}

// RefreshStats 重新拉取统计并更新缓存，/v1/stats 用
func (c *PromptController) RefreshStats(ctx context.Context) (*model.GamificationStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return nil, false
	}

	if stats := c.fetchStats(ctx); stats != nil {
		c.stats = stats
	}

	if c.stats == nil {
		return nil, false
	}
	stats := *c.stats
	return &stats, true
}

// fetchStats 拉取失败返回 nil，调用方按"未知状态"处理
func (c *PromptController) fetchStats(ctx context.Context) *model.GamificationStats {
	start := time.Now()
	stats, err := c.client.FetchStats(ctx)

	if m := metrics.GetMetrics(); m != nil {
		m.RecordStatsFetch(ctx, time.Since(start).Seconds(), err == nil)
	}

	if err != nil {
		logger.Logger.Warn("Failed to fetch gamification stats", zap.Error(err))
		return nil
	}
	return stats
}
