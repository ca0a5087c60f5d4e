package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 打卡模块错误。
var (
	MoodInvalid        = Definition{Code: "MOOD_INVALID", Message: "Mood invalid"}
	CheckInRejected    = Definition{Code: "CHECK_IN_REJECTED", Message: "Check-in rejected by backend"}
	SubmissionInFlight = Definition{Code: "SUBMISSION_IN_FLIGHT", Message: "Check-in submission already in flight"}
)

// 后端交互错误。
var (
	GamificationDisabled = Definition{Code: "GAMIFICATION_DISABLED", Message: "Gamification backend not configured"}
	StatsUnavailable     = Definition{Code: "STATS_UNAVAILABLE", Message: "Gamification stats unavailable"}
	EnvelopeMalformed    = Definition{Code: "ENVELOPE_MALFORMED", Message: "Backend response envelope malformed"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	MoodInvalid.Code:          MoodInvalid,
	CheckInRejected.Code:      CheckInRejected,
	SubmissionInFlight.Code:   SubmissionInFlight,
	GamificationDisabled.Code: GamificationDisabled,
	StatsUnavailable.Code:     StatsUnavailable,
	EnvelopeMalformed.Code:    EnvelopeMalformed,
}

// Get 根据错误码返回 Definition，若不存在则返回兜底 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
