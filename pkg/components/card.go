package components

// CardComponent 记忆卡牌的逻辑数据
type CardComponent struct {
	Value  string  // 卡牌值（如 "card3"），牌面绘制该值的字形
	Opened bool    // 逻辑上是否已翻开（动画可能尚未完成）
	Depth  float64 // 绘制层级，等于入场延迟（秒），大者在上
}
