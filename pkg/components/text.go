package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextComponent 左对齐的一行文本，位置取 PositionComponent（左上角）
type TextComponent struct {
	Text  string
	Color color.RGBA
	Face  text.Face // nil 表示使用渲染系统的默认字体
}
