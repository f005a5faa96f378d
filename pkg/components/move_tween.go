package components

import "github.com/decker502/memorymatch/pkg/utils"

// MoveTweenComponent 带延迟的缓动移动
//
// TweenSystem 每帧推进 Tween 并写回 PositionComponent，
// 到达终点后移除组件并调用 OnComplete。
// 新的移动直接替换旧组件，旧组件的 OnComplete 不会被调用。
type MoveTweenComponent struct {
	utils.Tween
	OnComplete func()
}
