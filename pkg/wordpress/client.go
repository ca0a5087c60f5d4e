package wordpress

import (
	"context"
	"time"

	"HairJourneyCompanion/internal/model"
)

// admin-ajax 动作名，与 WordPress 插件侧的处理函数一一对应
const (
	ActionGetStats     = "myavana_get_gamification_stats"
	ActionDailyCheckIn = "myavana_daily_checkin"
)

// Client WordPress admin-ajax 客户端接口。
// 所有请求都是 application/x-www-form-urlencoded POST，携带 action 与
// security（服务端下发的 nonce，对本层完全不透明），响应统一为
// {success, data} envelope：success=true 时 data 为载荷对象，否则为
// 字符串或对象形式的错误说明。
type Client interface {
	// FetchStats 拉取账户打卡统计
	FetchStats(ctx context.Context) (*model.GamificationStats, error)

	// SubmitCheckIn 提交一次心情打卡
	SubmitCheckIn(ctx context.Context, mood model.Mood) (*model.CheckInResult, error)
}

// Config HTTP 客户端配置，由宿主进程显式传入，不读全局状态
type Config struct {
	AjaxURL string
	Nonce   string
	Timeout time.Duration
}

// RejectedError 服务端返回 success=false 的逻辑拒绝。
// 提交链路对它与传输错误同样降级，但遥测上需要区分两者
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "backend rejected the request"
	}
	return "backend rejected the request: " + e.Message
}

// IsRejected 判断是否为服务端逻辑拒绝（区别于传输层错误）
func IsRejected(err error) bool {
	_, ok := err.(*RejectedError)
	return ok
}
