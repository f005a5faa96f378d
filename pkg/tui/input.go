package tui

import (
	"cmp"
	"log"
	"slices"

	"github.com/decker502/memorymatch/pkg/settings"
	"github.com/gdamore/tcell/v2"
)

// handleEvent 处理一个终端事件
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ev)
	case *tcell.EventMouse:
		g.handleMouse(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.quit = true
	case tcell.KeyLeft:
		g.moveSelection(-1, 0)
	case tcell.KeyRight:
		g.moveSelection(1, 0)
	case tcell.KeyUp:
		g.moveSelection(0, -1)
	case tcell.KeyDown:
		g.moveSelection(0, 1)
	case tcell.KeyEnter:
		g.pickSelected()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			g.quit = true
		case 'h':
			g.moveSelection(-1, 0)
		case 'l':
			g.moveSelection(1, 0)
		case 'k':
			g.moveSelection(0, -1)
		case 'j':
			g.moveSelection(0, 1)
		case ' ':
			g.pickSelected()
		default:
			if g.adjustPrefs(ev.Rune()) {
				g.savePrefs()
			}
		}
	}
}

// adjustPrefs 修改偏好设置，返回设置是否变化
// m/s 切换音乐/音效，[ ] 调整音乐音量，- = (+) 调整音效音量
func (g *Game) adjustPrefs(r rune) bool {
	prefs := g.prefs.Get()
	switch r {
	case 'm':
		log.Printf("[TUI] music enabled: %v", g.prefs.ToggleMusic())
	case 's':
		log.Printf("[TUI] sound enabled: %v", g.prefs.ToggleSound())
	case '[':
		g.prefs.SetMusicVolume(settings.StepVolume(prefs.MusicVolume, -settings.VolumeStep))
	case ']':
		g.prefs.SetMusicVolume(settings.StepVolume(prefs.MusicVolume, settings.VolumeStep))
	case '-':
		g.prefs.SetSoundVolume(settings.StepVolume(prefs.SoundVolume, -settings.VolumeStep))
	case '=', '+':
		g.prefs.SetSoundVolume(settings.StepVolume(prefs.SoundVolume, settings.VolumeStep))
	default:
		return false
	}
	return true
}

func (g *Game) savePrefs() {
	g.applyGains()
	if err := g.prefs.Save(); err != nil {
		log.Printf("[TUI] Warning: %v", err)
	}
}

// handleMouse 左键按下（边沿）时翻开鼠标下最上层的卡牌
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
	g.buttons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	if c := g.cardAt(float64(x)+0.5, float64(y)+0.5); c != nil {
		if i := slices.Index(g.ordered(), c); i >= 0 {
			g.selected = i
		}
		g.controller.CardClicked(c)
	}
}

// cardAt 返回 (x, y) 处最上层（入场延迟最大）的卡牌
func (g *Game) cardAt(x, y float64) *card {
	var hit *card
	for _, c := range g.cards {
		if !c.bounds().Contains(x, y) {
			continue
		}
		if hit == nil || c.slot.Delay >= hit.slot.Delay {
			hit = c
		}
	}
	return hit
}

// ordered 按目标位置行优先排序的卡牌
func (g *Game) ordered() []*card {
	cards := slices.Clone(g.cards)
	slices.SortStableFunc(cards, func(a, b *card) int {
		if c := cmp.Compare(a.slot.Y, b.slot.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.slot.X, b.slot.X)
	})
	return cards
}

// moveSelection 在网格中移动键盘光标，越界时停在边缘
func (g *Game) moveSelection(dx, dy int) {
	cards := g.ordered()
	if len(cards) == 0 {
		return
	}
	cur := cards[min(g.selected, len(cards)-1)]

	best, bestDist := -1, 0.0
	for i, c := range cards {
		ddx, ddy := c.slot.X-cur.slot.X, c.slot.Y-cur.slot.Y
		// 只考虑目标方向上的卡牌
		if (dx != 0 && (ddx*float64(dx) <= 0 || abs(ddy) > abs(ddx))) ||
			(dy != 0 && (ddy*float64(dy) <= 0 || abs(ddx) > abs(ddy))) {
			continue
		}
		dist := ddx*ddx + ddy*ddy
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best >= 0 {
		g.selected = best
	}
}

func (g *Game) pickSelected() {
	cards := g.ordered()
	if g.selected < len(cards) {
		g.controller.CardClicked(cards[g.selected])
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
