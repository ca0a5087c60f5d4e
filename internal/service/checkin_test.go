package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"HairJourneyCompanion/internal/model"
	"HairJourneyCompanion/pkg/errors"
	"HairJourneyCompanion/pkg/wordpress"
)

func newSubmitter(client wordpress.Client, stamps *fakeStore, pres *fakePresenter) (*CheckInSubmitter, *PromptController) {
	controller := NewPromptController(client, stamps, pres, true)
	return NewCheckInSubmitter(client, stamps, pres, controller, true), controller
}

func TestSubmitSuccessShowsRewards(t *testing.T) {
	client := wordpress.NewMockClient()
	milestone := "One week strong!"
	client.Result = &model.CheckInResult{
		PointsEarned: 10,
		Streak:       7,
		Milestone:    &milestone,
		NewBadges:    []model.Badge{{Name: "Week Warrior", Rarity: model.RarityRare}},
	}
	stamps := &fakeStore{}
	pres := &fakePresenter{}

	s, controller := newSubmitter(client, stamps, pres)

	resp, err := s.Submit(context.Background(), model.MoodAmazing)
	assert.NoError(t, err)
	assert.True(t, resp.Acknowledged)
	assert.NotNil(t, resp.Result)
	assert.Equal(t, 7, resp.Result.Streak)

	assert.Equal(t, 1, pres.rewards)
	assert.Zero(t, pres.acks)
	assert.Equal(t, 1, stamps.completedRecorded)
	assert.Equal(t, model.PhaseSubmitted, controller.Phase())
}

func TestSubmitRejectedConvergesToDone(t *testing.T) {
	// 服务端拒绝（如重复打卡）：不报错、不给奖励，只致谢，本地照常收敛
	client := wordpress.NewMockClient()
	client.RejectNext = true
	stamps := &fakeStore{}
	pres := &fakePresenter{}

	s, controller := newSubmitter(client, stamps, pres)

	resp, err := s.Submit(context.Background(), model.MoodGood)
	assert.NoError(t, err)
	assert.True(t, resp.Acknowledged)
	assert.Nil(t, resp.Result)

	assert.Equal(t, 1, pres.acks)
	assert.Zero(t, pres.rewards)
	assert.Equal(t, 1, stamps.completedRecorded)
	assert.Equal(t, model.PhaseSubmitted, controller.Phase())
}

func TestSubmitTransportErrorConvergesToDone(t *testing.T) {
	client := wordpress.NewMockClient()
	client.FailNext = true
	stamps := &fakeStore{}
	pres := &fakePresenter{}

	s, controller := newSubmitter(client, stamps, pres)

	resp, err := s.Submit(context.Background(), model.MoodOkay)
	assert.NoError(t, err)
	assert.True(t, resp.Acknowledged)
	assert.Nil(t, resp.Result)

	assert.Equal(t, 1, pres.acks)
	assert.Equal(t, 1, stamps.completedRecorded)
	assert.Equal(t, model.PhaseSubmitted, controller.Phase())
}

func TestDismissedPromptDoesNotBlockManualSubmit(t *testing.T) {
	ctx := context.Background()
	client := wordpress.NewMockClient()
	stamps := &fakeStore{}
	pres := &fakePresenter{}

	s, controller := newSubmitter(client, stamps, pres)

	controller.Evaluate(ctx)
	_, err := controller.Dismiss(ctx)
	assert.NoError(t, err)

	resp, err := s.Submit(ctx, model.MoodNeedsTLC)
	assert.NoError(t, err)
	assert.True(t, resp.Acknowledged)
	assert.NotNil(t, resp.Result)
	assert.Len(t, client.SubmitCalls(), 1)
	assert.Equal(t, model.PhaseSubmitted, controller.Phase())
}

func TestInvalidMoodRejected(t *testing.T) {
	client := wordpress.NewMockClient()
	s, _ := newSubmitter(client, &fakeStore{}, &fakePresenter{})

	_, err := s.Submit(context.Background(), model.Mood("furious"))
	assert.ErrorIs(t, err, errors.MoodInvalid)
	assert.Empty(t, client.SubmitCalls())
}

func TestDisabledSubmitterRejects(t *testing.T) {
	client := wordpress.NewMockClient()
	controller := NewPromptController(client, &fakeStore{}, &fakePresenter{}, false)
	s := NewCheckInSubmitter(client, &fakeStore{}, &fakePresenter{}, controller, false)

	_, err := s.Submit(context.Background(), model.MoodGood)
	assert.ErrorIs(t, err, errors.GamificationDisabled)
	assert.Empty(t, client.Calls)
}

func TestConcurrentSubmitGuard(t *testing.T) {
	client := wordpress.NewMockClient()
	s, _ := newSubmitter(client, &fakeStore{}, &fakePresenter{})

	s.inFlight.Store(true)
	_, err := s.Submit(context.Background(), model.MoodGood)
	assert.ErrorIs(t, err, errors.SubmissionInFlight)

	s.inFlight.Store(false)
	resp, err := s.Submit(context.Background(), model.MoodGood)
	assert.NoError(t, err)
	assert.True(t, resp.Acknowledged)
}

func TestStoreWriteFailureDoesNotAbortSubmit(t *testing.T) {
	client := wordpress.NewMockClient()
	stamps := &fakeStore{failRecord: true}
	pres := &fakePresenter{}

	s, _ := newSubmitter(client, stamps, pres)

	resp, err := s.Submit(context.Background(), model.MoodAmazing)
	assert.NoError(t, err)
	assert.True(t, resp.Acknowledged)
	assert.NotNil(t, resp.Result)
	assert.Len(t, client.SubmitCalls(), 1)
}
