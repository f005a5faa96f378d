// memory-tui 在终端中运行记忆翻牌
//
// 用法：
//
//	go run ./cmd/memory-tui [-levels levels.yaml] [-level 1] [-seed 42] [-mute] [-log memory-tui.log]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/memorymatch/data"
	synth "github.com/decker502/memorymatch/internal/audio"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/embedded"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/decker502/memorymatch/pkg/settings"
	"github.com/decker502/memorymatch/pkg/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

var (
	configFile = flag.String("config", "", "app config file (default: memory.yaml in . or ~/.config/memorymatch)")
	levels     = flag.String("levels", "", "levels file, overrides config")
	level      = flag.Int("level", 0, "start level (1-based), overrides config")
	seed       = flag.Int64("seed", 0, "shuffle seed, overrides config (0 = random)")
	mute       = flag.Bool("mute", false, "disable audio output")
	logFile    = flag.String("log", "", "write logs to this file (default: discard)")
)

func main() {
	flag.Parse()
	os.Exit(realMain())
}

// realMain 返回进程退出码，保证 defer 在 os.Exit 之前执行
func realMain() int {
	// 日志不能写到终端，否则会破坏画面
	closeLog := setupLog(*logFile)
	defer closeLog()

	embedded.Init(data.FS)

	if err := run(); err != nil {
		log.Printf("[TUI] Error: %v", err)
		fmt.Fprintf(os.Stderr, "memory-tui: %v\n", err)
		return 1
	}
	return 0
}

func run() error {
	appConfig, err := config.LoadAppConfig(*configFile)
	if err != nil {
		return err
	}
	if *levels != "" {
		appConfig.LevelsFile = *levels
	}
	if *level > 0 {
		appConfig.StartLevel = *level
	}
	if *seed != 0 {
		appConfig.Seed = *seed
	}

	gameConfig, err := config.LoadGameConfig(appConfig.LevelsFile)
	if err != nil {
		return err
	}
	log.Printf("[TUI] Loaded %d levels from %s", gameConfig.LevelCount(), appConfig.LevelsFile)

	prefs := settings.NewManager(settings.OpenStore(settings.AppName))
	player := newPlayer(prefs.Get())
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	opts := round.Options{StartLevel: appConfig.StartLevel}
	if appConfig.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(uint64(appConfig.Seed), uint64(appConfig.Seed)>>1|1))
	}

	game, err := tui.NewGame(screen, gameConfig, player, prefs, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = game.Run(ctx)
	state := game.Controller().State()
	log.Printf("[TUI] exit: level=%d score=%d", state.Level, state.Score)
	return err
}

// newPlayer 打开扬声器；没有音频设备时静音运行
func newPlayer(s settings.Settings) synth.Player {
	if *mute {
		return synth.Nop{}
	}
	sp, err := synth.NewSpeaker(sampleRate, s.MusicGain(), s.SoundGain())
	if err != nil {
		log.Printf("[TUI] Warning: audio disabled: %v", err)
		return synth.Nop{}
	}
	return sp
}

func setupLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "memory-tui: open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() { f.Close() }
}
