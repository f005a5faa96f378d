package tui

import (
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/decker502/memorymatch/pkg/utils"
)

// 卡牌尺寸（终端字符格）
const (
	cardCols = 6
	cardRows = 4
)

// 动画时长（秒）
const (
	moveDuration = config.CardMoveDuration
	flipDuration = config.CardFlipDuration
)

// card 终端中的一张卡牌，实现 round.Card
type card struct {
	value  config.CardValue
	slot   round.Slot
	opened bool

	x, y float64 // 中心坐标（字符格）

	move       *utils.Tween
	onMoveDone func()

	faceUp      bool    // 当前绘制正面
	flipLeft    float64 // 剩余翻转时间，0 表示静止
	flipTarget  bool
	pendingOpen []func()
}

var _ round.Card = (*card)(nil)

func newCard(value config.CardValue) *card {
	return &card{value: value, x: -cardCols, y: -cardRows}
}

func (c *card) Value() config.CardValue { return c.value }
func (c *card) IsOpened() bool           { return c.opened }
func (c *card) Slot() round.Slot         { return c.slot }
func (c *card) Size() (float64, float64) { return cardCols, cardRows }

func (c *card) Init(slot round.Slot) {
	c.slot = slot
}

func (c *card) Open(onComplete func()) {
	c.opened = true
	if onComplete != nil {
		c.pendingOpen = append(c.pendingOpen, onComplete)
	}
	c.flipTo(true)
}

// Close 合上卡牌；尚未完成的翻开回调在合上动画结束时调用
func (c *card) Close() {
	c.opened = false
	c.flipTo(false)
}

func (c *card) flipTo(faceUp bool) {
	if c.flipLeft > 0 {
		// 折返
		if c.flipTarget != faceUp {
			c.flipLeft = flipDuration - c.flipLeft
			c.flipTarget = faceUp
		}
		return
	}
	c.flipTarget = faceUp
	c.flipLeft = flipDuration
}

func (c *card) Move(opts round.MoveOptions) {
	c.move = &utils.Tween{
		FromX:    c.x,
		FromY:    c.y,
		ToX:      opts.X,
		ToY:      opts.Y,
		Delay:    opts.Delay.Seconds(),
		Duration: moveDuration,
		Ease:     utils.EaseOutCubic,
	}
	c.onMoveDone = opts.OnComplete
}

// update 推进动画，返回本帧完成的回调（由调用方在遍历结束后调用）
func (c *card) update(dt float64, done []func()) []func() {
	if c.move != nil {
		x, y, finished := c.move.Update(dt)
		c.x, c.y = x, y
		if finished {
			c.move = nil
			if c.onMoveDone != nil {
				done = append(done, c.onMoveDone)
				c.onMoveDone = nil
			}
		}
	}

	if c.flipLeft > 0 {
		c.flipLeft -= dt
		if c.flipLeft <= flipDuration/2 {
			c.faceUp = c.flipTarget
		}
		if c.flipLeft <= 0 {
			c.flipLeft = 0
			c.faceUp = c.flipTarget
			done = append(done, c.pendingOpen...)
			c.pendingOpen = nil
		}
	}
	return done
}

// flipScale 翻转中的横向缩放 [0, 1]
func (c *card) flipScale() float64 {
	if c.flipLeft <= 0 {
		return 1
	}
	return utils.FlipScale(1 - c.flipLeft/flipDuration)
}

// bounds 当前占据的字符格矩形
func (c *card) bounds() utils.Rect {
	return utils.RectFromCenter(c.x, c.y, cardCols, cardRows)
}
