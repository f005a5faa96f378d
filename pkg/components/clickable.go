package components

// ClickableComponent 标记实体可以被鼠标或触摸点击
// 点击区域以 PositionComponent 为中心
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否接受点击
}
