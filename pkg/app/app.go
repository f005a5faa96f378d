// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"

	synth "github.com/decker502/memorymatch/internal/audio"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/game"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/decker502/memorymatch/pkg/scenes"
	"github.com/decker502/memorymatch/pkg/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// audioSampleRate Ebitengine 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LevelsFile 关卡配置文件（"data/" 开头时从嵌入资源读取）
	LevelsFile string
	// StartLevel 起始关卡（从1开始）
	StartLevel int
	// Seed 洗牌随机种子，0 表示每次不同
	Seed int64
	// Fullscreen 强制全屏启动（否则使用保存的偏好）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	prefs                    *settings.Manager
	player                   synth.Player
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	levelsFile := cfg.LevelsFile
	if levelsFile == "" {
		levelsFile = config.DefaultLevelsFile
	}
	gameConfig, err := config.LoadGameConfig(levelsFile)
	if err != nil {
		return nil, fmt.Errorf("关卡配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d levels from %s", gameConfig.LevelCount(), levelsFile)

	prefs := settings.NewManager(settings.OpenStore(settings.AppName))

	audioContext := audio.NewContext(audioSampleRate)
	resourceManager := game.NewResourceManager(audioContext)

	var player synth.Player = synth.Nop{}
	if err := resourceManager.LoadCues(); err != nil {
		// 没有声音也可以玩
		log.Printf("[App] Warning: audio disabled: %v", err)
	} else {
		s := prefs.Get()
		player = game.NewAudioManager(resourceManager, s.MusicGain(), s.SoundGain())
		log.Printf("[App] AudioManager initialized")
	}

	opts := round.Options{StartLevel: cfg.StartLevel}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)>>1|1))
	}

	gameScene, err := scenes.NewGameScene(resourceManager, player, prefs, gameConfig, opts)
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	if cfg.Fullscreen || prefs.Get().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		prefs:        prefs,
		player:       player,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.prefs.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.prefs.SetFullscreen(true)
	}
	if err := a.prefs.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Shutdown 保存偏好并释放音频
func (a *App) Shutdown() {
	if !a.sceneManager.SaveOnExit() {
		log.Printf("[App] Warning: scene failed to save on exit")
	}
	a.player.Close()
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色，游戏画面用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
