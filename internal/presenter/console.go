package presenter

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"HairJourneyCompanion/internal/model"
	"HairJourneyCompanion/pkg/metrics"
)

// ConsolePresenter 把提示与奖励渲染到终端，daemon 的默认展示端。
// 所有输出都经 p.mu 串行化，徽章序列在单个 goroutine 里按节奏推进，
// 这本身就保证了揭示顺序与排期顺序一致
type ConsolePresenter struct {
	mu      sync.Mutex
	out     io.Writer
	timings Timings
	wg      sync.WaitGroup
}

func NewConsolePresenter(out io.Writer, timings Timings) *ConsolePresenter {
	timings.applyDefaults()
	return &ConsolePresenter{
		out:     out,
		timings: timings,
	}
}

func (p *ConsolePresenter) ShowPrompt(options []model.MoodOption) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, "💜 How is your hair feeling today?")
	for _, opt := range options {
		fmt.Fprintf(p.out, "   [%s] %s\n", opt.Value, opt.Label)
	}
	fmt.Fprintln(p.out, "   (POST /v1/check-ins with a mood, or /v1/prompt/dismiss to skip)")
}

func (p *ConsolePresenter) ClosePrompt() {
	// 终端上没有可撤回的弹窗，关闭即静默
}

func (p *ConsolePresenter) ShowRewards(result *model.CheckInResult) {
	p.println(composeToast(result))

	if len(result.NewBadges) == 0 {
		return
	}

	badges := make([]model.Badge, len(result.NewBadges))
	copy(badges, result.NewBadges)

	// 单 goroutine 顺序推进：第 i 枚在 initialDelay + i*interval 揭示
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		time.Sleep(p.timings.BadgeInitialDelay)
		for i, badge := range badges {
			if i > 0 {
				time.Sleep(p.timings.BadgeInterval)
			}
			p.revealBadge(badge)
		}
	}()
}

func (p *ConsolePresenter) ShowAcknowledgment() {
	p.println("💜 Thanks for checking in! See you tomorrow.")
}

func (p *ConsolePresenter) Wait() {
	p.wg.Wait()
}

func (p *ConsolePresenter) revealBadge(badge model.Badge) {
	p.mu.Lock()
	fmt.Fprintf(p.out, "🏆 Badge unlocked: %s (%s) — %s +%d pts\n",
		badge.Name, badge.Rarity, badge.Description, badge.PointsReward)
	p.mu.Unlock()

	if m := metrics.GetMetrics(); m != nil {
		m.RecordBadgeReveal(context.Background(), string(badge.Rarity))
	}
}

func (p *ConsolePresenter) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

var _ Presenter = (*ConsolePresenter)(nil)
