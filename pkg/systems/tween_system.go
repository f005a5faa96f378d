package systems

import (
	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/ecs"
)

// TweenSystem 推进所有移动缓动
//
// 完成回调在遍历结束后统一调用：回调可能重开一局并销毁/创建实体，
// 不能在遍历过程中修改组件。
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建缓动系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进 deltaTime 秒
func (s *TweenSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.MoveTweenComponent, *components.PositionComponent](s.entityManager)

	var finished []func()
	for _, id := range entities {
		tween, _ := ecs.GetComponent[*components.MoveTweenComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y, done := tween.Update(deltaTime)
		pos.X, pos.Y = x, y
		if !done {
			continue
		}

		ecs.RemoveComponentOf[*components.MoveTweenComponent](s.entityManager, id)
		if tween.OnComplete != nil {
			finished = append(finished, tween.OnComplete)
		}
	}

	for _, fn := range finished {
		fn()
	}
}
