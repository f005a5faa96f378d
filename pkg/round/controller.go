package round

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/memorymatch/pkg/config"
	"github.com/google/uuid"
)

// Options 控制器可选参数，零值使用默认设置
type Options struct {
	Rand       *rand.Rand // 洗牌随机源，nil 表示使用随机种子
	StartLevel int        // 起始关卡（从1开始），0 表示第一关
	Layout     *Layout    // 网格布局，nil 表示使用 config 中的像素布局
}

// Controller 单局控制器
//
// 状态机：Entering → Playing ⇄ Resolving → Won | TimedOut → Entering ...
//
// 倒计时采用"先检查后递减"：Timeout=T 时，第 T 次 Tick 后显示 "Time: 0"，
// 第 T+1 次 Tick 触发超时重开。
type Controller struct {
	cfg    *config.GameConfig
	host   Host
	rng    *rand.Rand
	layout Layout

	state  RoundState
	cards  []Card
	ticker Ticker

	started        bool
	exiting        bool
	exitPhase      Phase
	revealsPending int
	opensPending   int
}

// NewController 创建控制器
// 配置不合法时返回错误（在开局前快速失败）
func NewController(cfg *config.GameConfig, host Host, opts Options) (*Controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("round: game config is nil")
	}
	if host == nil {
		return nil, fmt.Errorf("round: host is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("round: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}

	layout := Layout{Gap: config.CardGap, Stagger: config.RevealStagger}
	if opts.Layout != nil {
		layout = *opts.Layout
	}

	level := opts.StartLevel
	if level == 0 {
		level = 1
	}

	return &Controller{
		cfg:    cfg,
		host:   host,
		rng:    rng,
		layout: layout,
		state: RoundState{
			Level: cfg.ClampLevel(level),
		},
		ticker: Ticker{Interval: config.TimerInterval},
	}, nil
}

// Create 启动场景：播放背景音乐并开始第一局
func (c *Controller) Create() {
	c.host.Play(CueTheme)
	c.Start()
}

// Start 开始当前关卡的一局
//
// 重置倒计时和翻牌状态，创建并洗牌，播放入场动画，启动计时器。
// 网格尺寸与卡牌数量不匹配属于配置缺陷，直接 panic。
func (c *Controller) Start() {
	level := c.cfg.Level(c.state.Level)
	if err := level.CheckGrid(); err != nil {
		panic(fmt.Sprintf("round: level %d: %v", c.state.Level, err))
	}

	c.started = true
	c.exiting = false
	c.revealsPending = 0
	c.opensPending = 0

	c.state.Generation++
	c.state.RoundID = uuid.New()
	c.state.TimeoutRemaining = level.Timeout
	c.state.OpenedCard = nil
	c.state.OpenedCount = 0
	c.state.Won = false

	c.createCards(level)
	c.initCards(level)
	c.showCards()

	c.ticker.Reset()
	c.state.TimerActive = true

	c.refreshLevelText()
	c.refreshScoreText()
	c.refreshTimeText()

	log.Printf("[Round] %s started: level=%d cards=%d timeout=%ds",
		c.state.RoundID, c.state.Level, len(c.cards), level.Timeout)
}

// createCards 每个卡牌值创建两张卡牌
func (c *Controller) createCards(level config.LevelConfig) {
	c.cards = make([]Card, 0, level.CardCount())
	for _, value := range level.Cards {
		for i := 0; i < 2; i++ {
			c.cards = append(c.cards, c.host.NewCard(value))
		}
	}
}

// initCards 计算网格位置，洗牌后一一分配给卡牌
func (c *Controller) initCards(level config.LevelConfig) {
	cardW, cardH := c.cards[0].Size()
	screenW, screenH := c.host.ScreenSize()

	slots := ComputeSlots(level.Cols, level.Rows, cardW, cardH, screenW, screenH, c.layout)
	ShuffleSlots(c.rng, slots)

	for i, card := range c.cards {
		card.Init(slots[i])
	}
}

// showCards 卡牌按各自延迟飞入位置
func (c *Controller) showCards() {
	gen := c.state.Generation
	c.revealsPending = len(c.cards)
	for _, card := range c.cards {
		slot := card.Slot()
		card.Move(MoveOptions{
			X:     slot.X,
			Y:     slot.Y,
			Delay: slot.Delay,
			OnComplete: func() {
				if gen != c.state.Generation || c.revealsPending == 0 {
					return
				}
				c.revealsPending--
			},
		})
	}
}

// Update 推进计时器，每满一秒调用一次 Tick
func (c *Controller) Update(dt float64) {
	if !c.state.TimerActive {
		return
	}
	n := c.ticker.Advance(dt)
	for i := 0; i < n && c.state.TimerActive; i++ {
		c.Tick()
	}
}

// Tick 倒计时一秒
// 剩余时间已为0时暂停计时器、播放超时音效并重开本关
func (c *Controller) Tick() {
	if !c.state.TimerActive {
		return
	}

	if c.state.TimeoutRemaining <= 0 {
		c.state.TimerActive = false
		c.host.Play(CueTimeout)
		log.Printf("[Round] %s timed out at level %d", c.state.RoundID, c.state.Level)
		c.restart(PhaseTimedOut)
		return
	}

	c.state.TimeoutRemaining--
	c.refreshTimeText()
}

// CardClicked 处理卡牌点击，返回点击是否被接受
//
// 已翻开的卡牌、计时器暂停时的点击、以及不属于本局的卡牌都会被忽略。
func (c *Controller) CardClicked(card Card) bool {
	if card == nil || card.IsOpened() || !c.state.TimerActive || !c.owns(card) {
		return false
	}

	c.host.Play(CueCard)

	if prev := c.state.OpenedCard; prev != nil {
		if prev.Value() == card.Value() {
			// 配对成功
			c.host.Play(CueSuccess)
			c.state.OpenedCard = nil
			c.state.OpenedCount++
			c.state.Score += c.cfg.StreakScore(c.state.Streak)
			if c.state.Streak < MaxStreak {
				c.state.Streak++
			}
		} else {
			// 不同：翻回上一张
			prev.Close()
			c.state.OpenedCard = card
			c.state.Streak = 0
		}
		c.refreshScoreText()
	} else {
		c.state.OpenedCard = card
	}

	gen := c.state.Generation
	c.opensPending++
	card.Open(func() {
		c.onCardOpened(gen)
	})
	return true
}

// onCardOpened 翻牌动画完成后检查是否过关
func (c *Controller) onCardOpened(gen int) {
	if gen != c.state.Generation {
		return
	}
	if c.opensPending > 0 {
		c.opensPending--
	}
	if c.state.OpenedCount == len(c.cards)/2 {
		c.winGame()
	}
}

// winGame 过关：每局最多触发一次
// 关卡号在最后一关时保持不变
func (c *Controller) winGame() {
	if c.state.Won {
		return
	}
	c.state.Won = true

	c.host.Play(CueComplete)
	if c.state.Level < c.cfg.LevelCount() {
		c.state.Level++
	}
	log.Printf("[Round] %s won, next level=%d score=%d", c.state.RoundID, c.state.Level, c.state.Score)

	if c.state.TimerActive {
		c.state.TimerActive = false
		c.restart(PhaseWon)
	}
}

// restart 所有卡牌退场，全部完成后开始新的一局
func (c *Controller) restart(reason Phase) {
	if c.exiting {
		return
	}
	c.exiting = true
	c.exitPhase = reason

	cards := c.cards
	if len(cards) == 0 {
		c.finishRestart(cards)
		return
	}

	gen := c.state.Generation
	remaining := len(cards)
	screenW, screenH := c.host.ScreenSize()

	for _, card := range cards {
		w, h := card.Size()
		card.Move(MoveOptions{
			X:     screenW + w,
			Y:     screenH + h,
			Delay: card.Slot().Delay,
			OnComplete: func() {
				if gen != c.state.Generation {
					return
				}
				remaining--
				if remaining == 0 {
					c.finishRestart(cards)
				}
			},
		})
	}
}

// finishRestart 丢弃旧卡牌并开始新一局
func (c *Controller) finishRestart(cards []Card) {
	for _, card := range cards {
		c.host.DestroyCard(card)
	}
	c.cards = nil
	c.Start()
	c.refreshLevelText()
}

func (c *Controller) owns(card Card) bool {
	for _, own := range c.cards {
		if own == card {
			return true
		}
	}
	return false
}

func (c *Controller) refreshScoreText() {
	c.host.SetText(TextScore, ScoreText(c.state.Score))
}

func (c *Controller) refreshLevelText() {
	c.host.SetText(TextLevel, LevelText(c.state.Level))
}

func (c *Controller) refreshTimeText() {
	c.host.SetText(TextTime, TimeText(c.state.TimeoutRemaining))
}

// State 返回当前状态的副本
func (c *Controller) State() RoundState {
	return c.state
}

// Cards 返回本局卡牌（调用方不应修改切片）
func (c *Controller) Cards() []Card {
	return c.cards
}

// Phase 返回当前阶段
func (c *Controller) Phase() Phase {
	switch {
	case !c.started:
		return PhaseIdle
	case c.exiting:
		return c.exitPhase
	case c.revealsPending > 0:
		return PhaseEntering
	case c.opensPending > 0:
		return PhaseResolving
	default:
		return PhasePlaying
	}
}
