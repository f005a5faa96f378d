package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/ecs"
	"github.com/decker502/memorymatch/pkg/utils"
)

// ClickHandler 卡牌被点击时的回调
type ClickHandler func(id ecs.EntityID)

// InputSystem 处理鼠标点击和触摸
// 命中多张重叠卡牌时只有最上层（Depth 最大）的卡牌响应
type InputSystem struct {
	entityManager *ecs.EntityManager
	onClick       ClickHandler
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, onClick ClickHandler) *InputSystem {
	return &InputSystem{
		entityManager: em,
		onClick:       onClick,
	}
}

// Update 读取本帧的点击事件
func (s *InputSystem) Update() {
	if pressed, x, y := justTouchedOrClicked(); pressed {
		s.HandleClick(float64(x), float64(y))
	}
}

// justTouchedOrClicked 检查本帧是否刚刚发生点击或触摸
// 返回是否点击以及点击位置，优先检测触摸
func justTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// HandleClick 在屏幕坐标 (x, y) 处进行命中测试，返回是否命中卡牌
func (s *InputSystem) HandleClick(x, y float64) bool {
	id, ok := s.HitTest(x, y)
	if !ok {
		return false
	}
	if s.onClick != nil {
		s.onClick(id)
	}
	return true
}

// HitTest 返回 (x, y) 处最上层的可点击卡牌
func (s *InputSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith3[*components.ClickableComponent, *components.PositionComponent, *components.CardComponent](s.entityManager)

	var (
		hit      ecs.EntityID
		hitDepth float64
		found    bool
	)
	for _, id := range entities {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)

		rect := utils.RectFromCenter(pos.X, pos.Y, clickable.Width, clickable.Height)
		if !rect.Contains(x, y) {
			continue
		}
		// 同深度时后创建的在上层
		if !found || card.Depth >= hitDepth {
			hit, hitDepth, found = id, card.Depth, true
		}
	}
	return hit, found
}
