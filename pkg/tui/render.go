package tui

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/decker502/memorymatch/pkg/round"
	"github.com/gdamore/tcell/v2"
)

var (
	styleBoard    = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleBack     = tcell.StyleDefault.Foreground(tcell.ColorLightBlue).Background(tcell.ColorNavy)
	styleFace     = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorWhite).Bold(true)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

const (
	backRune = '░'
	hintText = "click/space: flip  arrows/hjkl: move  m/s: mute  [ ] - =: volume  q: quit"
)

func (g *Game) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()
	boardH := max(h-hudRows, 0)
	fill(g.screen, 0, 0, w, boardH, ' ', styleBoard)

	cards := g.ordered()
	var selected *card
	if g.selected < len(cards) {
		selected = cards[g.selected]
	}

	// 入场延迟小的先画，延迟大的在上层
	drawOrder := slices.Clone(g.cards)
	slices.SortStableFunc(drawOrder, func(a, b *card) int {
		return cmp.Compare(a.slot.Delay, b.slot.Delay)
	})
	for _, c := range drawOrder {
		drawCard(g.screen, c, c == selected)
	}

	g.drawHUD(w, h)
	g.screen.Show()
}

func drawCard(s tcell.Screen, c *card, selected bool) {
	width := int(math.Round(cardCols * c.flipScale()))
	if width < 1 {
		return
	}
	left := int(math.Round(c.x - float64(width)/2))
	top := int(math.Round(c.y - cardRows/2))
	right := left + width - 1
	bottom := top + cardRows - 1

	border := styleBorder
	if selected {
		border = styleSelected
	}

	inner := styleBack
	innerRune := backRune
	if c.faceUp {
		inner = styleFace
		innerRune = ' '
	}
	fill(s, left, top, width, cardRows, innerRune, inner)

	if width >= 2 {
		for x := left + 1; x < right; x++ {
			s.SetContent(x, top, '─', nil, border)
			s.SetContent(x, bottom, '─', nil, border)
		}
		for y := top + 1; y < bottom; y++ {
			s.SetContent(left, y, '│', nil, border)
			s.SetContent(right, y, '│', nil, border)
		}
		s.SetContent(left, top, '┌', nil, border)
		s.SetContent(right, top, '┐', nil, border)
		s.SetContent(left, bottom, '└', nil, border)
		s.SetContent(right, bottom, '┘', nil, border)
	}

	if c.faceUp && width > 2 {
		label := c.value.Label()
		if len(label) > width-2 {
			label = label[:width-2]
		}
		lx := left + (width-len(label))/2
		drawText(s, lx, top+cardRows/2, label, styleFace)
	}
}

func (g *Game) drawHUD(w, h int) {
	y := h - hudRows
	if y < 0 {
		return
	}
	fill(g.screen, 0, y, w, hudRows, ' ', styleHUD)
	line := strings.Join([]string{
		g.texts[round.TextScore],
		g.texts[round.TextLevel],
		g.texts[round.TextTime],
	}, "   ")
	drawText(g.screen, 1, y, line, styleHUD)
	drawText(g.screen, 1, y+1, hintText, styleHint)
}

func fill(s tcell.Screen, x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, r, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
