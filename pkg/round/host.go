package round

import "github.com/decker502/memorymatch/pkg/config"

// Cue 音效提示
type Cue int

const (
	CueCard     Cue = iota // 点击卡牌
	CueSuccess             // 配对成功
	CueComplete            // 本关完成
	CueTimeout             // 超时
	CueTheme               // 背景音乐（循环）
)

var cueNames = [...]string{
	CueCard:     "card",
	CueSuccess:  "success",
	CueComplete: "complete",
	CueTimeout:  "timeout",
	CueTheme:    "theme",
}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// TextField HUD 文本
type TextField int

const (
	TextScore TextField = iota
	TextLevel
	TextTime
)

// Host 宿主能力接口
// Controller 通过它创建卡牌、播放音效和刷新 HUD
type Host interface {
	// NewCard 创建一张新卡牌（屏幕外、背面朝上）
	NewCard(value config.CardValue) Card
	// DestroyCard 丢弃上一局的卡牌
	DestroyCard(card Card)
	// Play 播放音效；CueTheme 由宿主循环播放
	Play(cue Cue)
	// SetText 更新 HUD 文本
	SetText(field TextField, text string)
	// ScreenSize 返回可见区域尺寸（与卡牌坐标同单位）
	ScreenSize() (width, height float64)
}
