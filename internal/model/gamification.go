package model

// 后端 admin-ajax 返回的数据对象，字段名与 WordPress 插件的 wire 格式保持一致。

// GamificationStats 账户打卡统计，checked_in_today 以服务端为准
type GamificationStats struct {
	TotalPoints    int  `json:"total_points"`
	CurrentStreak  int  `json:"current_streak"`
	BadgesEarned   int  `json:"badges_earned"`
	Level          int  `json:"level"`
	CheckedInToday bool `json:"checked_in_today"`
}

// BadgeRarity 徽章稀有度枚举，服务端下发，只读
type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

// Badge 一次解锁事件的描述，归属权在服务端
type Badge struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Rarity       BadgeRarity `json:"rarity"`
	PointsReward int         `json:"points_reward"`
}

// CheckInResult 打卡提交成功后的回执，只用于驱动奖励展示，不做持久化
type CheckInResult struct {
	PointsEarned int     `json:"points_earned"`
	Streak       int     `json:"streak"`
	Milestone    *string `json:"milestone,omitempty"`
	NewBadges    []Badge `json:"new_badges,omitempty"`
}
