package utils

import (
	"time"
)

// DayKey 返回 t 在 loc 时区下的规范日键（YYYY-MM-DD）
// 本地 day-stamp 的写入与比较必须使用同一个日键，避免 locale/时区漂移
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// SameDay 判断两个时间在 loc 时区下是否落在同一个日历日
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a, loc) == DayKey(b, loc)
}

// NextMidnight 返回 loc 时区下 t 之后的第一个零点，用于日界翻转调度
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day()+1, 0, 0, 0, 0, loc)
}
