package round

import (
	"github.com/decker502/memorymatch/pkg/config"
)

// fakeCard 记录所有操作，动画回调由测试手动触发
type fakeCard struct {
	id     int
	value  config.CardValue
	slot   Slot
	opened bool
	x, y   float64

	pendingOpen []func()
	pendingMove *MoveOptions
	closeCount  int
}

func (fc *fakeCard) Value() config.CardValue { return fc.value }
func (fc *fakeCard) IsOpened() bool           { return fc.opened }
func (fc *fakeCard) Slot() Slot               { return fc.slot }
func (fc *fakeCard) Size() (float64, float64) { return 96, 128 }

func (fc *fakeCard) Init(slot Slot) {
	fc.slot = slot
	fc.x, fc.y = -200, -200
}

func (fc *fakeCard) Open(onComplete func()) {
	fc.opened = true
	fc.pendingOpen = append(fc.pendingOpen, onComplete)
}

func (fc *fakeCard) Close() {
	fc.opened = false
	fc.closeCount++
}

func (fc *fakeCard) Move(opts MoveOptions) {
	fc.pendingMove = &opts
}

// fakeHost 记录音效、文本和卡牌的生命周期
type fakeHost struct {
	nextID    int
	cards     []*fakeCard
	destroyed []*fakeCard
	cues      []Cue
	texts     map[TextField]string
}

func newFakeHost() *fakeHost {
	return &fakeHost{texts: make(map[TextField]string)}
}

func (h *fakeHost) NewCard(value config.CardValue) Card {
	h.nextID++
	card := &fakeCard{id: h.nextID, value: value}
	h.cards = append(h.cards, card)
	return card
}

func (h *fakeHost) DestroyCard(card Card) {
	h.destroyed = append(h.destroyed, card.(*fakeCard))
}

func (h *fakeHost) Play(cue Cue) {
	h.cues = append(h.cues, cue)
}

func (h *fakeHost) SetText(field TextField, text string) {
	h.texts[field] = text
}

func (h *fakeHost) ScreenSize() (float64, float64) {
	return 1024, 640
}

func (h *fakeHost) cueCount(cue Cue) int {
	n := 0
	for _, c := range h.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// finishMoves 完成所有卡牌当前的移动动画
func finishMoves(cards []Card) {
	for _, card := range cards {
		fc := card.(*fakeCard)
		if fc.pendingMove == nil {
			continue
		}
		move := fc.pendingMove
		fc.pendingMove = nil
		fc.x, fc.y = move.X, move.Y
		if move.OnComplete != nil {
			move.OnComplete()
		}
	}
}

// finishOpens 完成所有卡牌尚未完成的翻牌动画
func finishOpens(cards []Card) {
	for _, card := range cards {
		fc := card.(*fakeCard)
		pending := fc.pendingOpen
		fc.pendingOpen = nil
		for _, done := range pending {
			if done != nil {
				done()
			}
		}
	}
}

// cardsByValue 按值分组本局卡牌，保持创建顺序
func cardsByValue(cards []Card) map[config.CardValue][]Card {
	groups := make(map[config.CardValue][]Card)
	for _, card := range cards {
		groups[card.Value()] = append(groups[card.Value()], card)
	}
	return groups
}
