package components

// FlipComponent 卡牌翻转动画状态
//
// 翻转分两半：前半段横向收缩到 0，中点切换正反面，后半段展开。
// FlipSystem 在动画完成时调用 OnComplete（如果有）。
type FlipComponent struct {
	FaceUp     bool    // 当前绘制的是否是正面
	Target     bool    // 动画目标：true 正面朝上
	Flipping   bool    // 是否正在翻转
	Elapsed    float64 // 已经过时间（秒）
	Duration   float64 // 一次完整翻转的时长（秒）
	ScaleX     float64 // 渲染用横向缩放 [0, 1]
	OnComplete func()
}
