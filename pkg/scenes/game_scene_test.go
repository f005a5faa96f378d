package scenes

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/memorymatch/pkg/components"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/ecs"
	"github.com/decker502/memorymatch/pkg/entities"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/hajimehoshi/ebiten/v2"
)

// recordingPlayer 记录播放的音效
type recordingPlayer struct {
	cues        []round.Cue
	music, snd  float64
	closeCalled bool
}

func (p *recordingPlayer) Play(cue round.Cue)          { p.cues = append(p.cues, cue) }
func (p *recordingPlayer) SetGains(music, snd float64) { p.music, p.snd = music, snd }
func (p *recordingPlayer) Close()                      { p.closeCalled = true }

func testConfig() *config.GameConfig {
	return &config.GameConfig{
		Levels: []config.LevelConfig{
			{Cols: 2, Rows: 2, Timeout: 15, Cards: []config.CardValue{"card1", "card2"}},
			{Cols: 4, Rows: 2, Timeout: 30, Cards: []config.CardValue{"card1", "card2", "card3", "card4"}},
		},
		ScoreByStreak: []int{100, 150, 200, 300, 500},
	}
}

func newTestScene(t *testing.T) (*GameScene, *recordingPlayer) {
	t.Helper()
	player := &recordingPlayer{}
	scene, err := NewGameScene(nil, player, nil, testConfig(), round.Options{
		Rand: rand.New(rand.NewPCG(1, 2)),
	})
	if err != nil {
		t.Fatalf("NewGameScene() error: %v", err)
	}
	return scene, player
}

func hudText(s *GameScene, field round.TextField) string {
	txt, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, s.hudEntities[field])
	return txt.Text
}

// clickCard 在卡牌的目标位置模拟一次点击
func clickCard(t *testing.T, s *GameScene, card *entities.CardEntity) {
	t.Helper()
	slot := card.Slot()
	if !s.inputSystem.HandleClick(slot.X, slot.Y) {
		t.Fatalf("click at (%v, %v) missed card %d", slot.X, slot.Y, card.ID())
	}
}

func pairsByValue(s *GameScene) map[config.CardValue][]*entities.CardEntity {
	pairs := make(map[config.CardValue][]*entities.CardEntity)
	for _, card := range s.cards {
		pairs[card.Value()] = append(pairs[card.Value()], card)
	}
	return pairs
}

func TestNewGameScene(t *testing.T) {
	scene, player := newTestScene(t)

	if len(scene.cards) != 4 {
		t.Errorf("cards = %d, want 4", len(scene.cards))
	}
	if len(player.cues) == 0 || player.cues[0] != round.CueTheme {
		t.Errorf("theme should play first, cues = %v", player.cues)
	}
	// 默认设置的增益
	if player.music != 0.7 || player.snd != 0.8 {
		t.Errorf("gains = (%v, %v), want (0.7, 0.8)", player.music, player.snd)
	}

	tests := []struct {
		field round.TextField
		want  string
	}{
		{round.TextScore, "Score: 0"},
		{round.TextLevel, "Level: 1"},
		{round.TextTime, "Time: 15"},
	}
	for _, tt := range tests {
		if got := hudText(scene, tt.field); got != tt.want {
			t.Errorf("HUD %v = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestNewGameSceneInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ScoreByStreak = []int{1}
	if _, err := NewGameScene(nil, nil, nil, cfg, round.Options{}); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestGameSceneRevealMovesCardsToSlots(t *testing.T) {
	scene, _ := newTestScene(t)
	scene.step(1.0)

	for _, card := range scene.cards {
		pos, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, card.ID())
		if pos.X != card.Slot().X || pos.Y != card.Slot().Y {
			t.Errorf("card %d at (%v, %v), want slot (%v, %v)", card.ID(), pos.X, pos.Y, card.Slot().X, card.Slot().Y)
		}
	}
	if got := hudText(scene, round.TextTime); got != "Time: 14" {
		t.Errorf("time text = %q, want Time: 14", got)
	}
	if scene.Controller().Phase() != round.PhasePlaying {
		t.Errorf("phase = %v, want playing", scene.Controller().Phase())
	}
}

func TestGameSceneWinAdvancesLevel(t *testing.T) {
	scene, player := newTestScene(t)
	scene.step(2.0)

	pairs := pairsByValue(scene)
	for _, value := range []config.CardValue{"card1", "card2"} {
		pair := pairs[value]
		clickCard(t, scene, pair[0])
		clickCard(t, scene, pair[1])
		scene.step(config.CardFlipDuration + 0.05)
	}

	if got := hudText(scene, round.TextScore); got != "Score: 250" {
		t.Errorf("score text = %q, want Score: 250", got)
	}

	// 退场动画结束后开始第二关（最长延迟 0.4s + 移动 0.5s）
	scene.step(0.95)
	if len(scene.cards) != 8 {
		t.Errorf("cards after win = %d, want 8", len(scene.cards))
	}
	if got := hudText(scene, round.TextLevel); got != "Level: 2" {
		t.Errorf("level text = %q, want Level: 2", got)
	}
	if got := hudText(scene, round.TextTime); got != "Time: 30" {
		t.Errorf("time text = %q, want Time: 30", got)
	}

	// 上一局的实体已被清理：8 张卡牌 + 3 个 HUD + 1 个提示
	if n := scene.entityManager.EntityCount(); n != 12 {
		t.Errorf("entity count = %d, want 12", n)
	}

	completes := 0
	for _, cue := range player.cues {
		if cue == round.CueComplete {
			completes++
		}
	}
	if completes != 1 {
		t.Errorf("complete cue played %d times, want 1", completes)
	}
}

func TestGameSceneIgnoresOpenedCard(t *testing.T) {
	scene, player := newTestScene(t)
	scene.step(2.0)

	var card *entities.CardEntity
	for _, c := range scene.cards {
		card = c
		break
	}
	clickCard(t, scene, card)
	before := len(player.cues)
	clickCard(t, scene, card)
	if len(player.cues) != before {
		t.Error("clicking an opened card should not play a cue")
	}
}

func TestGameSceneSaveOnExit(t *testing.T) {
	scene, _ := newTestScene(t)
	if !scene.SaveOnExit() {
		t.Error("SaveOnExit without a store should succeed")
	}
}

func TestGameSceneScreenSize(t *testing.T) {
	scene, _ := newTestScene(t)
	w, h := scene.ScreenSize()
	if w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("ScreenSize = (%v, %v)", w, h)
	}
}

func TestGameSceneSettingKeys(t *testing.T) {
	scene, player := newTestScene(t)

	tests := []struct {
		name  string
		key   ebiten.Key
		music float64
		snd   float64
	}{
		{"音乐音量调低", ebiten.KeyBracketLeft, 0.6, 0.8},
		{"音效音量调高", ebiten.KeyEqual, 0.6, 0.9},
		{"音效音量调低", ebiten.KeyMinus, 0.6, 0.8},
		{"音乐音量调高", ebiten.KeyBracketRight, 0.7, 0.8},
		{"关闭音乐", ebiten.KeyM, 0, 0.8},
		{"关闭音效", ebiten.KeyS, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !scene.onKey(tt.key) {
				t.Fatalf("onKey(%v) reported no change", tt.key)
			}
			scene.applyGains()
			if player.music != tt.music || player.snd != tt.snd {
				t.Errorf("gains = (%v, %v), want (%v, %v)", player.music, player.snd, tt.music, tt.snd)
			}
		})
	}

	if scene.onKey(ebiten.KeyQ) {
		t.Error("unbound key should not change settings")
	}
}
