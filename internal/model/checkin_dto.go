package model

// ========== 控制面 DTO ==========

// CheckInRequest 手动打卡请求体
type CheckInRequest struct {
	Mood string `json:"mood"`
}

// CheckInResponse 打卡提交响应；后端失败时 Result 为空、Acknowledged 为 true，
// 用户永远看不到技术性失败
type CheckInResponse struct {
	Acknowledged bool           `json:"acknowledged"`
	Message      string         `json:"message"`
	Result       *CheckInResult `json:"result,omitempty"`
}

// DismissResponse 关闭提示响应
type DismissResponse struct {
	Phase        PromptPhase `json:"phase"`
	DismissedDay string      `json:"dismissed_day"`
}

// MoodOption 提示界面的一个心情选项
type MoodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MoodOptions 按展示顺序返回全部心情选项
func MoodOptions() []MoodOption {
	opts := make([]MoodOption, 0, len(AllMoods))
	for _, m := range AllMoods {
		opts = append(opts, MoodOption{Value: string(m), Label: m.DisplayName()})
	}
	return opts
}
