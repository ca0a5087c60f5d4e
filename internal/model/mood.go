package model

import "strings"

// Mood 每日打卡提交的心情枚举，一次提交只允许一个值
type Mood string

const (
	MoodAmazing  Mood = "amazing"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodNeedsTLC Mood = "needs_tlc"
)

// AllMoods 提示界面展示的顺序
var AllMoods = []Mood{MoodAmazing, MoodGood, MoodOkay, MoodNeedsTLC}

func (m Mood) Valid() bool {
	switch m {
	case MoodAmazing, MoodGood, MoodOkay, MoodNeedsTLC:
		return true
	}
	return false
}

// DisplayName 面向用户的展示名
func (m Mood) DisplayName() string {
	switch m {
	case MoodAmazing:
		return "Amazing"
	case MoodGood:
		return "Good"
	case MoodOkay:
		return "Okay"
	case MoodNeedsTLC:
		return "Needs TLC"
	}
	return string(m)
}

// ParseMood 解析控制面传入的心情，同时接受 wire 值与展示名
func ParseMood(s string) (Mood, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")

	m := Mood(normalized)
	if m.Valid() {
		return m, true
	}
	return "", false
}
