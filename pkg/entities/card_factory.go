package entities

import (
	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/ecs"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/decker502/memorymatch/pkg/systems"
	"github.com/decker502/memorymatch/pkg/utils"
)

// CardEntity 基于 ECS 组件的卡牌，实现 round.Card
//
// 逻辑状态（是否翻开）立即更新，翻转和移动动画交给 FlipSystem / TweenSystem。
type CardEntity struct {
	manager *ecs.EntityManager
	id      ecs.EntityID
	value   config.CardValue
	slot    round.Slot
}

var _ round.Card = (*CardEntity)(nil)

// NewCardEntity 创建一张背面朝上、位于屏幕左上角外的卡牌
func NewCardEntity(manager *ecs.EntityManager, value config.CardValue) *CardEntity {
	id := manager.CreateEntity()

	ecs.AddComponent(manager, id, &components.PositionComponent{
		X: -config.CardWidth,
		Y: -config.CardHeight,
	})
	ecs.AddComponent(manager, id, &components.CardComponent{
		Value: string(value),
	})
	ecs.AddComponent(manager, id, &components.FlipComponent{
		Duration: config.CardFlipDuration,
		ScaleX:   1,
	})
	ecs.AddComponent(manager, id, &components.ClickableComponent{
		Width:     config.CardWidth,
		Height:    config.CardHeight,
		IsEnabled: true,
	})

	return &CardEntity{
		manager: manager,
		id:      id,
		value:   value,
	}
}

// ID 返回实体ID
func (c *CardEntity) ID() ecs.EntityID { return c.id }

func (c *CardEntity) Value() config.CardValue { return c.value }

func (c *CardEntity) Slot() round.Slot { return c.slot }

func (c *CardEntity) Size() (float64, float64) {
	return config.CardWidth, config.CardHeight
}

func (c *CardEntity) IsOpened() bool {
	card, ok := ecs.GetComponent[*components.CardComponent](c.manager, c.id)
	return ok && card.Opened
}

// Init 绑定位置；绘制层级等于入场延迟
func (c *CardEntity) Init(slot round.Slot) {
	c.slot = slot
	if card, ok := ecs.GetComponent[*components.CardComponent](c.manager, c.id); ok {
		card.Depth = slot.Delay.Seconds()
	}
}

func (c *CardEntity) Open(onComplete func()) {
	c.setOpened(true, onComplete)
}

func (c *CardEntity) Close() {
	c.setOpened(false, nil)
}

func (c *CardEntity) setOpened(opened bool, onComplete func()) {
	card, ok := ecs.GetComponent[*components.CardComponent](c.manager, c.id)
	if !ok {
		return
	}
	card.Opened = opened
	if flip, ok := ecs.GetComponent[*components.FlipComponent](c.manager, c.id); ok {
		systems.StartFlip(flip, opened, onComplete)
	}
}

// Move 从当前位置缓动到目标位置，替换尚未完成的移动
func (c *CardEntity) Move(opts round.MoveOptions) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](c.manager, c.id)
	if !ok {
		return
	}
	ecs.AddComponent(c.manager, c.id, &components.MoveTweenComponent{
		Tween: utils.Tween{
			FromX:    pos.X,
			FromY:    pos.Y,
			ToX:      opts.X,
			ToY:      opts.Y,
			Delay:    opts.Delay.Seconds(),
			Duration: config.CardMoveDuration,
			Ease:     utils.EaseOutCubic,
		},
		OnComplete: opts.OnComplete,
	})
}

// Destroy 标记实体待删除
func (c *CardEntity) Destroy() {
	c.manager.DestroyEntity(c.id)
}
