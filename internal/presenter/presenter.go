package presenter

import (
	"fmt"
	"time"

	"HairJourneyCompanion/internal/model"
)

// Presenter 奖励与提示的展示端口。宿主可以换成桌面通知、TUI 等实现；
// 唯一的硬性约束是徽章揭示必须严格串行，多枚徽章逐个出现，绝不叠放。
// 展示是 best-effort 的：进程退出时没展示完的内容直接丢弃，不排队不落盘
type Presenter interface {
	// ShowPrompt 打开每日打卡提示，列出可选心情
	ShowPrompt(options []model.MoodOption)

	// ClosePrompt 关闭提示（提交或用户关闭时都会调用）
	ClosePrompt()

	// ShowRewards 展示一次成功打卡的回执：积分/连续天数/里程碑 toast，
	// 随后按固定节奏逐个揭示新解锁的徽章
	ShowRewards(result *model.CheckInResult)

	// ShowAcknowledgment 后端失败时的兜底致谢，用户永远看不到技术性错误
	ShowAcknowledgment()

	// Wait 阻塞直到已排期的展示全部完成，供退出与测试收尾用
	Wait()
}

// Timings 展示节奏；零值会在构造时回填默认值
type Timings struct {
	ToastDuration     time.Duration // toast 自动消失时长
	BadgeInitialDelay time.Duration // toast 之后到第一枚徽章的间隔
	BadgeInterval     time.Duration // 相邻两枚徽章的间隔
	BadgeDuration     time.Duration // 单枚徽章的展示时长
}

func (t *Timings) applyDefaults() {
	if t.ToastDuration <= 0 {
		t.ToastDuration = 5 * time.Second
	}
	if t.BadgeInitialDelay <= 0 {
		t.BadgeInitialDelay = 1500 * time.Millisecond
	}
	if t.BadgeInterval <= 0 {
		t.BadgeInterval = 2500 * time.Millisecond
	}
	if t.BadgeDuration <= 0 {
		t.BadgeDuration = 4 * time.Second
	}
}

// composeToast 拼接打卡回执的 toast 文案。
// streak 为 1 时不出现连续天数子句；有里程碑时追加里程碑子句
func composeToast(result *model.CheckInResult) string {
	text := fmt.Sprintf("🎉 You earned %d points!", result.PointsEarned)

	if result.Streak > 1 {
		text += fmt.Sprintf(" 🔥 %d day streak!", result.Streak)
	}

	if result.Milestone != nil && *result.Milestone != "" {
		text += " " + *result.Milestone
	}

	return text
}
