package presenter

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"HairJourneyCompanion/internal/model"
)

// syncBuffer 并发安全的输出缓冲
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Split(strings.TrimSpace(b.buf.String()), "\n")
}

func fastTimings() Timings {
	return Timings{
		ToastDuration:     time.Millisecond,
		BadgeInitialDelay: time.Millisecond,
		BadgeInterval:     time.Millisecond,
		BadgeDuration:     time.Millisecond,
	}
}

func milestone(s string) *string { return &s }

func TestComposeToastWithStreakAndMilestone(t *testing.T) {
	text := composeToast(&model.CheckInResult{
		PointsEarned: 10,
		Streak:       5,
		Milestone:    milestone("5 Day Streak!"),
	})

	assert.Contains(t, text, "10 points")
	assert.Contains(t, text, "5 day streak")
	assert.Contains(t, text, "5 Day Streak!")
}

func TestComposeToastOmitsStreakClauseAtOne(t *testing.T) {
	text := composeToast(&model.CheckInResult{
		PointsEarned: 10,
		Streak:       1,
	})

	assert.Contains(t, text, "10 points")
	assert.NotContains(t, text, "streak")
}

func TestBadgesRevealStrictlyInOrder(t *testing.T) {
	out := &syncBuffer{}
	p := NewConsolePresenter(out, fastTimings())

	p.ShowRewards(&model.CheckInResult{
		PointsEarned: 25,
		Streak:       7,
		NewBadges: []model.Badge{
			{Name: "Alpha", Rarity: model.RarityCommon},
			{Name: "Beta", Rarity: model.RarityRare},
			{Name: "Gamma", Rarity: model.RarityEpic},
		},
	})
	p.Wait()

	lines := out.Lines()
	var order []string
	for _, line := range lines {
		if strings.Contains(line, "Badge unlocked") {
			switch {
			case strings.Contains(line, "Alpha"):
				order = append(order, "Alpha")
			case strings.Contains(line, "Beta"):
				order = append(order, "Beta")
			case strings.Contains(line, "Gamma"):
				order = append(order, "Gamma")
			}
		}
	}

	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, order)

	// toast 先于所有徽章出现
	assert.Contains(t, lines[0], "points")
}

func TestNoBadgeGoroutineWithoutBadges(t *testing.T) {
	out := &syncBuffer{}
	p := NewConsolePresenter(out, fastTimings())

	p.ShowRewards(&model.CheckInResult{PointsEarned: 10, Streak: 2})
	p.Wait() // 没有徽章时不应阻塞

	for _, line := range out.Lines() {
		assert.NotContains(t, line, "Badge unlocked")
	}
}

func TestShowPromptListsAllMoods(t *testing.T) {
	out := &syncBuffer{}
	p := NewConsolePresenter(out, fastTimings())

	p.ShowPrompt(model.MoodOptions())

	joined := strings.Join(out.Lines(), "\n")
	assert.Contains(t, joined, "Amazing")
	assert.Contains(t, joined, "Good")
	assert.Contains(t, joined, "Okay")
	assert.Contains(t, joined, "Needs TLC")
}
