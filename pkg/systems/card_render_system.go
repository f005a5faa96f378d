package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	cardBackColor   = color.RGBA{R: 52, G: 92, B: 160, A: 255}
	cardBackPattern = color.RGBA{R: 90, G: 132, B: 204, A: 255}
	cardFaceColor   = color.RGBA{R: 246, G: 240, B: 226, A: 255}
	cardBorderColor = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	cardGlyphColor  = color.RGBA{R: 170, G: 40, B: 50, A: 255}
)

// CardRenderSystem 绘制卡牌
//
// 卡牌由矢量图形绘制：背面为带斜纹的蓝色底，正面为浅色底加卡牌值字形。
// 绘制顺序按 Depth 升序，Depth 相同按实体ID。
type CardRenderSystem struct {
	entityManager *ecs.EntityManager
	glyphFace     text.Face
}

// NewCardRenderSystem 创建卡牌渲染系统
func NewCardRenderSystem(em *ecs.EntityManager, glyphFace text.Face) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager: em,
		glyphFace:     glyphFace,
	}
}

// DrawOrder 返回按绘制顺序排列的卡牌实体
func (s *CardRenderSystem) DrawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith3[*components.CardComponent, *components.PositionComponent, *components.FlipComponent](s.entityManager)
	sort.SliceStable(entities, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, entities[i])
		b, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, entities[j])
		return a.Depth < b.Depth
	})
	return entities
}

// Draw 绘制所有卡牌
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.DrawOrder() {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		flip, _ := ecs.GetComponent[*components.FlipComponent](s.entityManager, id)
		s.drawCard(screen, card, pos, flip)
	}
}

func (s *CardRenderSystem) drawCard(screen *ebiten.Image, card *components.CardComponent, pos *components.PositionComponent, flip *components.FlipComponent) {
	w := float32(config.CardWidth * flip.ScaleX)
	h := float32(config.CardHeight)
	if w < 1 {
		return
	}
	x := float32(pos.X) - w/2
	y := float32(pos.Y) - h/2

	if flip.FaceUp {
		vector.DrawFilledRect(screen, x, y, w, h, cardFaceColor, true)
	} else {
		vector.DrawFilledRect(screen, x, y, w, h, cardBackColor, true)
		// 背面斜纹
		for i := float32(-h); i < w; i += 16 {
			x0, y0 := x+i, y+h
			x1, y1 := x+i+h, y
			x0, y0 = clipLine(x0, y0, x, x+w, -1)
			x1, y1 = clipLine(x1, y1, x, x+w, 1)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, cardBackPattern, true)
		}
	}
	vector.StrokeRect(screen, x, y, w, h, 2, cardBorderColor, true)

	if flip.FaceUp && s.glyphFace != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Scale(flip.ScaleX, 1)
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleWithColor(cardGlyphColor)
		text.Draw(screen, config.CardValue(card.Value).Label(), s.glyphFace, op)
	}
}

// clipLine 将 45° 斜线的端点沿斜线移动到 [left, right] 之内
// 底端点传 dir=-1，顶端点传 dir=1
func clipLine(px, py, left, right float32, dir float32) (float32, float32) {
	switch {
	case px < left:
		return left, py + dir*(left-px)
	case px > right:
		return right, py + dir*(px-right)
	}
	return px, py
}
