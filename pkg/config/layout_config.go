package config

import "time"

// 布局配置常量
// 本文件定义了游戏场景中的布局参数，包括窗口尺寸、卡牌尺寸、文本位置等

// 窗口配置
const (
	// GameWindowWidth 游戏逻辑屏幕宽度
	GameWindowWidth = 1024

	// GameWindowHeight 游戏逻辑屏幕高度
	GameWindowHeight = 640

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Memory Match"
)

// 卡牌配置
const (
	// CardWidth 卡牌宽度（像素）
	CardWidth = 96.0

	// CardHeight 卡牌高度（像素）
	CardHeight = 128.0

	// CardGap 相邻卡牌之间的间隔（像素）
	// 网格单元尺寸 = 卡牌尺寸 + CardGap
	CardGap = 4.0

	// CardCornerRadius 卡牌圆角半径
	CardCornerRadius = 8.0

	// CardGlyphFontSize 卡牌正面符号字号
	CardGlyphFontSize = 40.0
)

// 动画配置
const (
	// RevealStagger 每个位置的入场延迟步长
	// 第 N 个位置（从1开始，按行优先）延迟 N*RevealStagger
	RevealStagger = 100 * time.Millisecond

	// CardMoveDuration 卡牌飞行动画时长（秒）
	CardMoveDuration = 0.5

	// CardFlipDuration 卡牌翻转动画时长（秒）
	CardFlipDuration = 0.25
)

// HUD 文本配置（左侧竖排）
const (
	HUDTextX        = 10.0
	HUDScoreTextY   = 280.0
	HUDLevelTextY   = 340.0
	HUDTimeTextY    = 400.0
	HUDTextFontSize = 28.0
)

// ThemeMusicVolume 背景音乐的相对音量（与音乐音量设置相乘）
const ThemeMusicVolume = 0.1

// TimerInterval 倒计时间隔（秒）
const TimerInterval = 1.0
