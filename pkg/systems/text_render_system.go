package systems

import (
	"image/color"

	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextRenderSystem 绘制 HUD 文本（分数、关卡、剩余时间、操作提示）
type TextRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewTextRenderSystem 创建文本渲染系统
func NewTextRenderSystem(em *ecs.EntityManager, face text.Face) *TextRenderSystem {
	return &TextRenderSystem{
		entityManager: em,
		face:          face,
	}
}

// Draw 绘制所有文本实体，带 2px 阴影
func (s *TextRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.TextComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		txt, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		face := txt.Face
		if face == nil {
			face = s.face
		}
		if txt.Text == "" || face == nil {
			continue
		}

		shadowOp := &text.DrawOptions{}
		shadowOp.GeoM.Translate(pos.X+2, pos.Y+2)
		shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
		text.Draw(screen, txt.Text, face, shadowOp)

		op := &text.DrawOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleWithColor(txt.Color)
		text.Draw(screen, txt.Text, face, op)
	}
}
