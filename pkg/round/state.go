package round

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase 单局所处阶段
type Phase int

const (
	PhaseIdle      Phase = iota // 尚未开始
	PhaseEntering               // 卡牌入场动画中
	PhasePlaying                // 计时中，接受点击
	PhaseResolving              // 点击后等待翻牌动画结束
	PhaseWon                    // 过关，卡牌退场中
	PhaseTimedOut               // 超时，卡牌退场中
)

var phaseNames = [...]string{
	PhaseIdle:      "idle",
	PhaseEntering:  "entering",
	PhasePlaying:   "playing",
	PhaseResolving: "resolving",
	PhaseWon:       "won",
	PhaseTimedOut:  "timed_out",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// MaxStreak 计分用连击数上限
const MaxStreak = 4

// RoundState 单局状态
// 只由 Controller 修改；Score 和 Streak 跨局保留
type RoundState struct {
	Level            int
	Score            int
	Streak           int
	TimeoutRemaining int
	OpenedCard       Card // 等待第二张的已翻开卡牌
	OpenedCount      int  // 已配对数量
	TimerActive      bool

	RoundID    uuid.UUID // 日志关联
	Generation int       // 每次 Start 递增，用于丢弃上一局的回调
	Won        bool      // 本局已触发过关
}

// ScoreText 格式化得分文本
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// LevelText 格式化关卡文本
func LevelText(level int) string {
	return fmt.Sprintf("Level: %d", level)
}

// TimeText 格式化剩余时间文本
func TimeText(seconds int) string {
	return fmt.Sprintf("Time: %d", seconds)
}
