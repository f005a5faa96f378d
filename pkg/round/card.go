package round

import (
	"time"

	"github.com/decker502/memorymatch/pkg/config"
)

// Slot 网格中的一个位置
// X/Y 为卡牌中心坐标，Delay 为入场/退场动画的错开延迟
type Slot struct {
	X     float64
	Y     float64
	Delay time.Duration
}

// MoveOptions 卡牌移动参数
type MoveOptions struct {
	X, Y       float64       // 目标中心坐标
	Delay      time.Duration // 开始移动前的延迟
	OnComplete func()        // 到达目标后调用，可为 nil
}

// Card 一张可见的卡牌
//
// 实现约定：
//   - Open 立即将卡牌标记为已翻开，翻转动画完成后调用 onComplete
//   - Close 立即将卡牌标记为未翻开；如果该卡牌的翻开动画尚未完成，其 onComplete 仍然会被调用
//   - 新的 Move 会替换尚未完成的移动，被替换移动的 OnComplete 不再调用
type Card interface {
	Value() config.CardValue
	IsOpened() bool
	Slot() Slot
	Size() (width, height float64)

	// Init 绑定位置，卡牌此时仍在屏幕外等待入场动画
	Init(slot Slot)
	Open(onComplete func())
	Close()
	Move(opts MoveOptions)
}
