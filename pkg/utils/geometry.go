package utils

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromCenter 根据中心点和尺寸构造矩形
func RectFromCenter(cx, cy, width, height float64) Rect {
	return Rect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}
