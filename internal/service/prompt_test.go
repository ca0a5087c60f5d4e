package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"HairJourneyCompanion/internal/model"
	"HairJourneyCompanion/pkg/wordpress"
)

// fakeStore 可编程的 day-stamp 存储
type fakeStore struct {
	mu                sync.Mutex
	completed         bool
	dismissed         bool
	failRecord        bool
	completedRecorded int
	dismissedRecorded int
}

func (f *fakeStore) CompletedToday(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completed, nil
}

func (f *fakeStore) DismissedToday(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dismissed, nil
}

func (f *fakeStore) RecordCompleted(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRecord {
		return errors.New("fake store write failure")
	}
	f.completed = true
	f.completedRecorded++
	return nil
}

func (f *fakeStore) RecordDismissed(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRecord {
		return errors.New("fake store write failure")
	}
	f.dismissed = true
	f.dismissedRecorded++
	return nil
}

func (f *fakeStore) Days(ctx context.Context) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	completed, dismissed := "", ""
	if f.completed {
		completed = "2025-06-01"
	}
	if f.dismissed {
		dismissed = "2025-06-01"
	}
	return completed, dismissed, nil
}

func (f *fakeStore) Close() error { return nil }

// fakePresenter 记录展示调用
type fakePresenter struct {
	mu      sync.Mutex
	prompts int
	closes  int
	rewards int
	acks    int
}

func (f *fakePresenter) ShowPrompt(options []model.MoodOption) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts++
}

func (f *fakePresenter) ClosePrompt() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
}

func (f *fakePresenter) ShowRewards(result *model.CheckInResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rewards++
}

func (f *fakePresenter) ShowAcknowledgment() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks++
}

func (f *fakePresenter) Wait() {}

func newController(client wordpress.Client, stamps *fakeStore, pres *fakePresenter) *PromptController {
	return NewPromptController(client, stamps, pres, true)
}

func TestEvaluatePromptsWhenEligible(t *testing.T) {
	client := wordpress.NewMockClient()
	client.Stats = &model.GamificationStats{CurrentStreak: 3, CheckedInToday: false}
	pres := &fakePresenter{}

	c := newController(client, &fakeStore{}, pres)

	phase := c.Evaluate(context.Background())
	assert.Equal(t, model.PhasePrompting, phase)
	assert.Equal(t, 1, pres.prompts)
}

func TestLocalCompletionBeatsLyingServer(t *testing.T) {
	// 服务端（错误地）报告今天未打卡，本地 completion stamp 仍然压制提示
	client := wordpress.NewMockClient()
	client.Stats = &model.GamificationStats{CheckedInToday: false}
	pres := &fakePresenter{}

	c := newController(client, &fakeStore{completed: true}, pres)

	phase := c.Evaluate(context.Background())
	assert.Equal(t, model.PhaseSuppressed, phase)
	assert.Zero(t, pres.prompts)
}

func TestDismissalSuppressesPrompt(t *testing.T) {
	client := wordpress.NewMockClient()
	pres := &fakePresenter{}

	c := newController(client, &fakeStore{dismissed: true}, pres)

	assert.Equal(t, model.PhaseSuppressed, c.Evaluate(context.Background()))
	assert.Zero(t, pres.prompts)
}

func TestStatsFetchFailureNeverPrompts(t *testing.T) {
	client := wordpress.NewMockClient()
	client.StatsErr = errors.New("backend down")
	pres := &fakePresenter{}

	c := newController(client, &fakeStore{}, pres)

	assert.Equal(t, model.PhaseSuppressed, c.Evaluate(context.Background()))
	assert.Zero(t, pres.prompts)
}

func TestServerCheckedInTodaySuppresses(t *testing.T) {
	client := wordpress.NewMockClient()
	client.Stats = &model.GamificationStats{CheckedInToday: true}
	pres := &fakePresenter{}

	c := newController(client, &fakeStore{}, pres)

	assert.Equal(t, model.PhaseSuppressed, c.Evaluate(context.Background()))
	assert.Zero(t, pres.prompts)
}

func TestAtMostOnePromptPerDay(t *testing.T) {
	ctx := context.Background()
	client := wordpress.NewMockClient()
	pres := &fakePresenter{}
	stamps := &fakeStore{}

	c := newController(client, stamps, pres)

	assert.Equal(t, model.PhasePrompting, c.Evaluate(ctx))
	// 重复评估不会二次提示
	assert.Equal(t, model.PhasePrompting, c.Evaluate(ctx))
	assert.Equal(t, 1, pres.prompts)

	// 用户关闭后进入当日终态
	_, err := c.Dismiss(ctx)
	assert.NoError(t, err)
	assert.Equal(t, model.PhaseDismissed, c.Phase())
	assert.Equal(t, 1, stamps.dismissedRecorded)

	assert.Equal(t, model.PhaseDismissed, c.Evaluate(ctx))
	assert.Equal(t, 1, pres.prompts)
}

func TestDisabledControllerNeverPromptsNorFetches(t *testing.T) {
	client := wordpress.NewMockClient()
	pres := &fakePresenter{}

	c := NewPromptController(client, &fakeStore{}, pres, false)

	assert.Equal(t, model.PhaseSuppressed, c.Evaluate(context.Background()))
	assert.Empty(t, client.Calls)
	assert.Zero(t, pres.prompts)
}

func TestResetForNewDayReevaluates(t *testing.T) {
	ctx := context.Background()
	client := wordpress.NewMockClient()
	pres := &fakePresenter{}
	stamps := &fakeStore{}

	c := newController(client, stamps, pres)
	c.Evaluate(ctx)
	_, err := c.Dismiss(ctx)
	assert.NoError(t, err)

	// 模拟日界翻转：昨天的 dismissal 不再生效
	stamps.mu.Lock()
	stamps.dismissed = false
	stamps.mu.Unlock()

	assert.Equal(t, model.PhasePrompting, c.ResetForNewDay(ctx))
	assert.Equal(t, 2, pres.prompts)
}

func TestStateSnapshotMergesLocalAndServer(t *testing.T) {
	ctx := context.Background()
	client := wordpress.NewMockClient()
	client.Stats = &model.GamificationStats{
		TotalPoints:    200,
		CurrentStreak:  4,
		Level:          2,
		BadgesEarned:   5,
		CheckedInToday: true,
	}

	c := newController(client, &fakeStore{completed: true}, &fakePresenter{})
	c.Evaluate(ctx)

	state := c.State(ctx)
	assert.True(t, state.Enabled)
	assert.True(t, state.StatsAvailable)
	assert.Equal(t, 200, state.TotalPoints)
	assert.Equal(t, model.PhaseSuppressed, state.Phase)
	assert.Equal(t, "2025-06-01", state.LastCheckInDay)
}
