package utils

// Tween 两点之间带延迟的缓动移动
// Ebitengine 场景的 TweenSystem 和终端界面共用
type Tween struct {
	FromX, FromY float64
	ToX, ToY     float64
	Delay        float64 // 开始前等待（秒）
	Duration     float64 // 移动时长（秒）
	Elapsed      float64
	Ease         EasingFunc // nil 表示匀速
}

// Progress 返回当前缓动前的进度 [0, 1]
func (tw *Tween) Progress() float64 {
	if tw.Elapsed <= tw.Delay {
		return 0
	}
	if tw.Duration <= 0 {
		return 1
	}
	return Clamp01((tw.Elapsed - tw.Delay) / tw.Duration)
}

// Update 推进 dt 秒，返回当前位置以及是否已到达终点
func (tw *Tween) Update(dt float64) (x, y float64, done bool) {
	tw.Elapsed += dt
	p := tw.Progress()

	ease := tw.Ease
	if ease == nil {
		ease = EaseLinear
	}
	e := ease(p)

	if p >= 1 {
		return tw.ToX, tw.ToY, true
	}
	return Lerp(tw.FromX, tw.ToX, e), Lerp(tw.FromY, tw.ToY, e), false
}
