package store

import "context"

// Store 本地 day-stamp 存储，回答"今天是否已提示/已完成打卡"。
// completed 与 dismissed 两个戳互相独立：completed 表示本地视角下今天
// 已经打过卡，dismissed 只压制当天的自动提示，不影响手动打卡能力。
// Record* 均为幂等操作，重复调用写入同一个日键。
// 写入失败不致命，调用方记日志后继续——这是 UI 糖，不是账本。
type Store interface {
	CompletedToday(ctx context.Context) (bool, error)
	DismissedToday(ctx context.Context) (bool, error)

	RecordCompleted(ctx context.Context) error
	RecordDismissed(ctx context.Context) error

	// Days 返回两个 day-stamp 的当前值（可能为空串），用于状态快照
	Days(ctx context.Context) (completed, dismissed string, err error)

	Close() error
}
