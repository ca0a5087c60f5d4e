package wordpress

import (
	"context"
	"errors"
	"sync"

	"HairJourneyCompanion/internal/model"
)

type MockCall struct {
	Action string
	Mood   model.Mood
}

// MockClient 可配置的后端 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Calls []MockCall

	// Stats FetchStats 的返回值；为 nil 且 StatsErr 为 nil 时返回零值统计
	Stats    *model.GamificationStats
	StatsErr error

	// Result SubmitCheckIn 成功时的返回值
	Result *model.CheckInResult

	// RejectNext 置为 true 时，下一次 SubmitCheckIn 返回 RejectedError 并自动复位
	RejectNext bool
	// FailNext 置为 true 时，下一次 SubmitCheckIn 返回传输错误并自动复位
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]MockCall, 0),
	}
}

func (m *MockClient) FetchStats(ctx context.Context) (*model.GamificationStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Action: ActionGetStats})

	if m.StatsErr != nil {
		return nil, m.StatsErr
	}
	if m.Stats == nil {
		return &model.GamificationStats{}, nil
	}
	stats := *m.Stats
	return &stats, nil
}

func (m *MockClient) SubmitCheckIn(ctx context.Context, mood model.Mood) (*model.CheckInResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Action: ActionDailyCheckIn, Mood: mood})

	if m.RejectNext {
		m.RejectNext = false
		return nil, &RejectedError{Message: "Already checked in today"}
	}
	if m.FailNext {
		m.FailNext = false
		return nil, errors.New("mock transport failure")
	}

	if m.Result == nil {
		return &model.CheckInResult{PointsEarned: 10, Streak: 1}, nil
	}
	result := *m.Result
	return &result, nil
}

// SubmitCalls 只返回打卡提交类调用
func (m *MockClient) SubmitCalls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var calls []MockCall
	for _, c := range m.Calls {
		if c.Action == ActionDailyCheckIn {
			calls = append(calls, c)
		}
	}
	return calls
}
