package model

// PromptPhase 自动提示状态机的阶段
type PromptPhase string

const (
	PhaseIdle       PromptPhase = "idle"       // 初始，尚未评估
	PhaseEvaluating PromptPhase = "evaluating" // 正在等待统计拉取结果
	PhasePrompting  PromptPhase = "prompting"  // 提示已打开，等待用户选择
	PhaseSuppressed PromptPhase = "suppressed" // 当日不再自动提示
	PhaseSubmitted  PromptPhase = "submitted"  // 用户已提交心情
	PhaseDismissed  PromptPhase = "dismissed"  // 用户关闭了提示
)

// Terminal 当日是否不会再出现自动提示
func (p PromptPhase) Terminal() bool {
	switch p {
	case PhaseSuppressed, PhaseSubmitted, PhaseDismissed:
		return true
	}
	return false
}

// CheckInState 进程内打卡状态快照，每次日界翻转或启动时重建。
// 统计字段来自服务端，day-stamp 来自本地存储；二者来源独立：
// checked_in_today 决定"打卡是否真的发生过"，本地 dismissal 只压制自动提示。
type CheckInState struct {
	Enabled         bool        `json:"enabled"`
	Phase           PromptPhase `json:"phase"`
	LastCheckInDay  string      `json:"last_check_in_day,omitempty"` // 本地完成 day-stamp
	DismissedDay    string      `json:"dismissed_day,omitempty"`     // 本地关闭 day-stamp
	CurrentStreak   int         `json:"current_streak"`
	TotalPoints     int         `json:"total_points"`
	Level           int         `json:"level"`
	BadgesEarned    int         `json:"badges_earned"`
	CheckedInToday  bool        `json:"checked_in_today"`
	StatsAvailable  bool        `json:"stats_available"`
}
