//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
//	make build-android    # Android
//	make build-ios        # iOS (仅 macOS)
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/memorymatch/data"
	"github.com/decker502/memorymatch/pkg/app"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/embedded"
)

func init() {
	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    true,
		LevelsFile: config.DefaultLevelsFile,
		StartLevel: 1,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
