// Package utils 提供两个宿主共用的缓动、补间和几何工具
//
// 不依赖任何图形框架，终端版本也可以直接使用。
package utils

import "math"

// 缓动函数
//
// 输入为进度 t ∈ [0, 1]，输出为缓动后的进度。
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 匀速
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出：开始快，结束慢（卡牌飞入/飞出）
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutQuad 二次方缓入缓出（卡牌翻转）
// 关于中点对称：f(1-t) = 1 - f(t)，折返时缩放保持连续
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// FlipScale 翻转进度 [0, 1] 对应的横向缩放
// 中点时为 0（侧面），两端为 1
func FlipScale(progress float64) float64 {
	return math.Abs(1 - 2*EaseInOutQuad(Clamp01(progress)))
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
