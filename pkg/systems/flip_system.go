package systems

import (
	"math"

	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/ecs"
	"github.com/decker502/memorymatch/pkg/utils"
)

// FlipSystem 推进卡牌翻转动画
type FlipSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlipSystem 创建翻转系统
func NewFlipSystem(em *ecs.EntityManager) *FlipSystem {
	return &FlipSystem{entityManager: em}
}

// Update 推进 deltaTime 秒
// 缩放按二次缓入缓出变化，进度过半时切换正反面，结束时调用 OnComplete
func (s *FlipSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.FlipComponent](s.entityManager)

	var finished []func()
	for _, id := range entities {
		flip, _ := ecs.GetComponent[*components.FlipComponent](s.entityManager, id)
		if !flip.Flipping {
			continue
		}

		flip.Elapsed += deltaTime
		progress := 1.0
		if flip.Duration > 0 {
			progress = math.Min(flip.Elapsed/flip.Duration, 1)
		}

		if progress >= 0.5 {
			flip.FaceUp = flip.Target
		}
		flip.ScaleX = utils.FlipScale(progress)

		if progress >= 1 {
			flip.Flipping = false
			flip.ScaleX = 1
			if flip.OnComplete != nil {
				finished = append(finished, flip.OnComplete)
				flip.OnComplete = nil
			}
		}
	}

	for _, fn := range finished {
		fn()
	}
}

// StartFlip 让卡牌朝 faceUp 方向翻转
//
// 正在反向翻转时从当前位置折返，保持横向缩放连续。
// onComplete 追加在尚未调用的回调之后，之前的回调不会丢失。
// 卡牌已静止在目标朝向时，回调立即调用。
func StartFlip(flip *components.FlipComponent, faceUp bool, onComplete func()) {
	if onComplete != nil {
		if prev := flip.OnComplete; prev != nil {
			flip.OnComplete = func() {
				prev()
				onComplete()
			}
		} else {
			flip.OnComplete = onComplete
		}
	}

	if flip.Target == faceUp && !flip.Flipping && flip.FaceUp == faceUp {
		if fn := flip.OnComplete; fn != nil {
			flip.OnComplete = nil
			fn()
		}
		return
	}
	if flip.Target == faceUp {
		return
	}

	flip.Target = faceUp
	if flip.Flipping {
		flip.Elapsed = flip.Duration - flip.Elapsed
	} else {
		flip.Elapsed = 0
		flip.Flipping = true
	}
}
