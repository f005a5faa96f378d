package scenes

import (
	"fmt"
	"image/color"
	"log"

	synth "github.com/decker502/memorymatch/internal/audio"
	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/ecs"
	"github.com/decker502/memorymatch/pkg/entities"
	"github.com/decker502/memorymatch/pkg/game"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/decker502/memorymatch/pkg/settings"
	"github.com/decker502/memorymatch/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 96, B: 64, A: 255}
	hudTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hintTextColor   = color.RGBA{R: 200, G: 220, B: 200, A: 255}
)

const (
	hintText     = "M/S: music/sound  [ ]: music vol  - =: sound vol  F11: fullscreen"
	hintFontSize = 16.0
)

// GameScene 记忆翻牌的游戏场景
//
// 场景是 round.Controller 的宿主：卡牌是 ECS 实体，
// 移动和翻转由 TweenSystem / FlipSystem 驱动，点击由 InputSystem 命中测试后转交给控制器。
type GameScene struct {
	entityManager *ecs.EntityManager
	tweenSystem   *systems.TweenSystem
	flipSystem    *systems.FlipSystem
	inputSystem   *systems.InputSystem
	cardRender    *systems.CardRenderSystem
	textRender    *systems.TextRenderSystem

	controller *round.Controller
	player     synth.Player
	prefs      *settings.Manager

	cards       map[ecs.EntityID]*entities.CardEntity
	hudEntities map[round.TextField]ecs.EntityID
}

var (
	_ round.Host    = (*GameScene)(nil)
	_ game.Scene    = (*GameScene)(nil)
	_ game.Saveable = (*GameScene)(nil)
)

// NewGameScene 创建游戏场景并开始第一局
//
// rm 为 nil 时不绘制文字；player 为 nil 时静音；prefs 为 nil 时使用不持久化的默认设置。
func NewGameScene(rm *game.ResourceManager, player synth.Player, prefs *settings.Manager, cfg *config.GameConfig, opts round.Options) (*GameScene, error) {
	if player == nil {
		player = synth.Nop{}
	}
	if prefs == nil {
		prefs = settings.NewManager(nil)
	}

	em := ecs.NewEntityManager()
	s := &GameScene{
		entityManager: em,
		tweenSystem:   systems.NewTweenSystem(em),
		flipSystem:    systems.NewFlipSystem(em),
		player:        player,
		prefs:         prefs,
		cards:         make(map[ecs.EntityID]*entities.CardEntity),
		hudEntities:   make(map[round.TextField]ecs.EntityID),
	}
	s.inputSystem = systems.NewInputSystem(em, s.onCardClicked)

	var glyphFace, hudFace, hintFace text.Face
	if rm != nil {
		glyphFace = faceOrNil(rm.GetFont(config.CardGlyphFontSize))
		hudFace = faceOrNil(rm.GetFont(config.HUDTextFontSize))
		hintFace = faceOrNil(rm.GetFont(hintFontSize))
	}
	s.cardRender = systems.NewCardRenderSystem(em, glyphFace)
	s.textRender = systems.NewTextRenderSystem(em, hudFace)

	s.createHUD()
	hint := newTextEntity(em, config.HUDTextX, config.GameWindowHeight-28, hintTextColor)
	if txt, ok := ecs.GetComponent[*components.TextComponent](em, hint); ok {
		txt.Text = hintText
		txt.Face = hintFace
	}

	controller, err := round.NewController(cfg, s, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create round controller: %w", err)
	}
	s.controller = controller

	s.applyGains()
	s.controller.Create()
	log.Printf("[GameScene] Scene created: %d levels", cfg.LevelCount())
	return s, nil
}

// faceOrNil 避免把类型化的 nil 指针装进 text.Face 接口
func faceOrNil(face *text.GoTextFace) text.Face {
	if face == nil {
		return nil
	}
	return face
}

func (s *GameScene) createHUD() {
	positions := []struct {
		field round.TextField
		y     float64
	}{
		{round.TextScore, config.HUDScoreTextY},
		{round.TextLevel, config.HUDLevelTextY},
		{round.TextTime, config.HUDTimeTextY},
	}
	for _, p := range positions {
		s.hudEntities[p.field] = newTextEntity(s.entityManager, config.HUDTextX, p.y, hudTextColor)
	}
}

func newTextEntity(em *ecs.EntityManager, x, y float64, clr color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.TextComponent{Color: clr})
	return id
}

func setText(em *ecs.EntityManager, id ecs.EntityID, value string) {
	if txt, ok := ecs.GetComponent[*components.TextComponent](em, id); ok {
		txt.Text = value
	}
}

// Update 处理输入并推进动画和倒计时
func (s *GameScene) Update(deltaTime float64) {
	s.handleKeys()
	s.inputSystem.Update()
	s.step(deltaTime)
}

// step 推进一帧（不读取输入）
func (s *GameScene) step(deltaTime float64) {
	s.tweenSystem.Update(deltaTime)
	s.flipSystem.Update(deltaTime)
	s.controller.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// settingKeys 调整玩家偏好的按键
var settingKeys = []ebiten.Key{
	ebiten.KeyM, ebiten.KeyS,
	ebiten.KeyBracketLeft, ebiten.KeyBracketRight,
	ebiten.KeyMinus, ebiten.KeyEqual,
}

func (s *GameScene) handleKeys() {
	changed := false
	for _, key := range settingKeys {
		if inpututil.IsKeyJustPressed(key) && s.onKey(key) {
			changed = true
		}
	}
	if changed {
		s.applyGains()
		if err := s.prefs.Save(); err != nil {
			log.Printf("[GameScene] Warning: %v", err)
		}
	}
}

// onKey 修改偏好设置，返回设置是否变化
// M/S 切换音乐/音效，[ ] 调整音乐音量，- = 调整音效音量
func (s *GameScene) onKey(key ebiten.Key) bool {
	prefs := s.prefs.Get()
	switch key {
	case ebiten.KeyM:
		log.Printf("[GameScene] Music enabled: %v", s.prefs.ToggleMusic())
	case ebiten.KeyS:
		log.Printf("[GameScene] Sound enabled: %v", s.prefs.ToggleSound())
	case ebiten.KeyBracketLeft:
		s.prefs.SetMusicVolume(settings.StepVolume(prefs.MusicVolume, -settings.VolumeStep))
	case ebiten.KeyBracketRight:
		s.prefs.SetMusicVolume(settings.StepVolume(prefs.MusicVolume, settings.VolumeStep))
	case ebiten.KeyMinus:
		s.prefs.SetSoundVolume(settings.StepVolume(prefs.SoundVolume, -settings.VolumeStep))
	case ebiten.KeyEqual:
		s.prefs.SetSoundVolume(settings.StepVolume(prefs.SoundVolume, settings.VolumeStep))
	default:
		return false
	}
	return true
}

func (s *GameScene) applyGains() {
	prefs := s.prefs.Get()
	s.player.SetGains(prefs.MusicGain(), prefs.SoundGain())
}

func (s *GameScene) onCardClicked(id ecs.EntityID) {
	if card, ok := s.cards[id]; ok {
		s.controller.CardClicked(card)
	}
}

// Draw 绘制背景、卡牌和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.cardRender.Draw(screen)
	s.textRender.Draw(screen)
}

// SaveOnExit 退出时保存玩家偏好
func (s *GameScene) SaveOnExit() bool {
	if err := s.prefs.Save(); err != nil {
		log.Printf("[GameScene] Failed to save settings: %v", err)
		return false
	}
	return true
}

// Controller 返回场景的对局控制器
func (s *GameScene) Controller() *round.Controller {
	return s.controller
}
