package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/memorymatch/data"
	"github.com/decker502/memorymatch/pkg/app"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configFile := flag.String("config", "", "app config file (default: memory.yaml in . or ~/.config/memorymatch)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	level := flag.Int("level", 0, "start level (1-based), overrides config")
	seed := flag.Int64("seed", 0, "shuffle seed, overrides config (0 = random)")
	levels := flag.String("levels", "", "levels file, overrides config")
	flag.Parse()

	embedded.Init(data.FS)

	appConfig, err := config.LoadAppConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		appConfig.Verbose = true
	}
	if *level > 0 {
		appConfig.StartLevel = *level
	}
	if *seed != 0 {
		appConfig.Seed = *seed
	}
	if *levels != "" {
		appConfig.LevelsFile = *levels
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    appConfig.Verbose,
		LevelsFile: appConfig.LevelsFile,
		StartLevel: appConfig.StartLevel,
		Seed:       appConfig.Seed,
		Fullscreen: appConfig.Fullscreen,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
