// Package tui 在终端中运行记忆翻牌
//
// 终端宿主和 Ebitengine 宿主共享同一个 round.Controller：
// 卡牌是字符格里的方框，移动和翻转在帧循环中推进，鼠标和键盘都可以翻牌。
package tui

import (
	"context"
	"fmt"
	"log"
	"slices"
	"time"

	synth "github.com/decker502/memorymatch/internal/audio"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/decker502/memorymatch/pkg/settings"
	"github.com/gdamore/tcell/v2"
)

// hudRows 底部 HUD 占用的行数
const hudRows = 2

// frameInterval 帧间隔
const frameInterval = time.Second / 30

// Game 终端宿主
// 所有状态只在 Run 所在的 goroutine 中修改
type Game struct {
	screen     tcell.Screen
	controller *round.Controller
	player     synth.Player
	prefs      *settings.Manager

	cards    []*card
	texts    map[round.TextField]string
	selected int // 键盘光标所在卡牌（按位置排序后的下标）
	buttons  tcell.ButtonMask
	quit     bool
}

var _ round.Host = (*Game)(nil)

// NewGame 创建终端游戏并开始第一局
// screen 必须已经 Init
func NewGame(screen tcell.Screen, cfg *config.GameConfig, player synth.Player, prefs *settings.Manager, opts round.Options) (*Game, error) {
	if player == nil {
		player = synth.Nop{}
	}
	if prefs == nil {
		prefs = settings.NewManager(nil)
	}

	g := &Game{
		screen: screen,
		player: player,
		prefs:  prefs,
		texts:  make(map[round.TextField]string),
	}
	if opts.Layout == nil {
		opts.Layout = &round.Layout{Gap: 1, Stagger: config.RevealStagger}
	}

	controller, err := round.NewController(cfg, g, opts)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	g.controller = controller

	g.applyGains()
	g.controller.Create()
	return g, nil
}

// Run 运行事件循环直到 ctx 取消或玩家退出
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // screen 已 Fini
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	g.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			g.handleEvent(ev)
			if g.quit {
				log.Printf("[TUI] quit requested")
				return nil
			}
		case now := <-ticker.C:
			g.step(now.Sub(last).Seconds())
			last = now
			g.draw()
		}
	}
}

// step 推进动画和倒计时
func (g *Game) step(dt float64) {
	var done []func()
	for _, c := range g.cards {
		done = c.update(dt, done)
	}
	for _, fn := range done {
		fn()
	}
	g.controller.Update(dt)
}

func (g *Game) applyGains() {
	s := g.prefs.Get()
	g.player.SetGains(s.MusicGain(), s.SoundGain())
}

// round.Host 实现

func (g *Game) NewCard(value config.CardValue) round.Card {
	c := newCard(value)
	g.cards = append(g.cards, c)
	return c
}

func (g *Game) DestroyCard(rc round.Card) {
	c, ok := rc.(*card)
	if !ok {
		return
	}
	if i := slices.Index(g.cards, c); i >= 0 {
		g.cards = slices.Delete(g.cards, i, i+1)
	}
	if g.selected >= len(g.cards) {
		g.selected = 0
	}
}

func (g *Game) Play(cue round.Cue) {
	g.player.Play(cue)
}

func (g *Game) SetText(field round.TextField, text string) {
	g.texts[field] = text
}

// ScreenSize 棋盘区域大小（字符格），不含底部 HUD
func (g *Game) ScreenSize() (float64, float64) {
	w, h := g.screen.Size()
	return float64(w), float64(max(h-hudRows, 0))
}

// Controller 返回对局控制器
func (g *Game) Controller() *round.Controller {
	return g.controller
}
