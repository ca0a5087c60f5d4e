package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CompanionMetrics OpenTelemetry 指标集合。
// 打卡失败对用户是静默降级的（产品要求），但必须对运维可见，
// 所以失败计数带 reason 维度单独上报
type CompanionMetrics struct {
	CheckInSubmittedTotal metric.Int64Counter
	CheckInFailedTotal    metric.Int64Counter
	StatsFetchDuration    metric.Float64Histogram
	PromptsShownTotal     metric.Int64Counter
	PromptsDismissedTotal metric.Int64Counter
	BadgeRevealsTotal     metric.Int64Counter
}

var (
	companionMetrics *CompanionMetrics
	meter            = otel.Meter("hair-journey-companion")
)

// InitMetrics 初始化指标，失败时整体放弃（指标缺失不影响主流程）
func InitMetrics() error {
	m := &CompanionMetrics{}

	var err error

	m.CheckInSubmittedTotal, err = meter.Int64Counter(
		"checkin_submitted_total",
		metric.WithDescription("Total number of daily check-in submissions"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return err
	}

	m.CheckInFailedTotal, err = meter.Int64Counter(
		"checkin_failed_total",
		metric.WithDescription("Check-in submissions that were silently degraded to an acknowledgment"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return err
	}

	m.StatsFetchDuration, err = meter.Float64Histogram(
		"stats_fetch_duration_seconds",
		metric.WithDescription("Time spent fetching gamification stats"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return err
	}

	m.PromptsShownTotal, err = meter.Int64Counter(
		"prompts_shown_total",
		metric.WithDescription("Automatic check-in prompts shown"),
		metric.WithUnit("{prompt}"),
	)
	if err != nil {
		return err
	}

	m.PromptsDismissedTotal, err = meter.Int64Counter(
		"prompts_dismissed_total",
		metric.WithDescription("Check-in prompts dismissed without submitting"),
		metric.WithUnit("{prompt}"),
	)
	if err != nil {
		return err
	}

	m.BadgeRevealsTotal, err = meter.Int64Counter(
		"badge_reveals_total",
		metric.WithDescription("Badge unlock animations presented"),
		metric.WithUnit("{badge}"),
	)
	if err != nil {
		return err
	}

	companionMetrics = m
	return nil
}

// GetMetrics 获取全局指标实例，未初始化时返回 nil，调用方需判空
func GetMetrics() *CompanionMetrics {
	return companionMetrics
}

// RecordCheckInSubmitted 记录一次提交及其最终走向
func (m *CompanionMetrics) RecordCheckInSubmitted(ctx context.Context, mood string, outcome string) {
	m.CheckInSubmittedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mood", mood),
		attribute.String("outcome", outcome), // rewarded, acknowledged
	))
}

// RecordCheckInFailed 记录被静默吞掉的失败；reason 区分逻辑拒绝与传输错误
func (m *CompanionMetrics) RecordCheckInFailed(ctx context.Context, reason string) {
	m.CheckInFailedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason), // rejected, transport
	))
}

// RecordStatsFetch 记录统计拉取耗时与结果
func (m *CompanionMetrics) RecordStatsFetch(ctx context.Context, seconds float64, ok bool) {
	status := "success"
	if !ok {
		status = "failed"
	}
	m.StatsFetchDuration.Record(ctx, seconds, metric.WithAttributes(
		attribute.String("status", status),
	))
}

func (m *CompanionMetrics) RecordPromptShown(ctx context.Context) {
	m.PromptsShownTotal.Add(ctx, 1)
}

func (m *CompanionMetrics) RecordPromptDismissed(ctx context.Context) {
	m.PromptsDismissedTotal.Add(ctx, 1)
}

func (m *CompanionMetrics) RecordBadgeReveal(ctx context.Context, rarity string) {
	m.BadgeRevealsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("rarity", rarity),
	))
}
