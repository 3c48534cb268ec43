// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置、创建资源管理器和场景管理器，
// 并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/game"
	"github.com/decker502/cryptfall/pkg/scenes"
	"github.com/decker502/cryptfall/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏数值配置路径，为空时使用嵌入的默认配置
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// SkipMenu 跳过主菜单，直接开始一局
	SkipMenu bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath
	}
	gameConfig, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载游戏配置: %s", path)

	resourceManager := game.NewResourceManager(gameConfig.Sprite)
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(resourceManager, sceneManager, gameConfig, NewRandomFactory(cfg.Seed)))

	start := game.SceneMenu
	if cfg.SkipMenu {
		log.Printf("[App] SkipMenu enabled, starting a run directly")
		start = game.SceneRun
	}
	if !sceneManager.Load(start) {
		return nil, fmt.Errorf("无法创建初始场景: %s", start)
	}

	return &App{
		sceneManager: sceneManager,
	}, nil
}

// NewRandomFactory 返回每局游戏使用的随机源工厂
//
// seed 非 0 时第 n 局使用 seed+n，重玩可复现；否则使用当前时间
func NewRandomFactory(seed int64) scenes.RandomFactory {
	runs := int64(0)
	return func() systems.RandomSource {
		s := seed + runs
		if seed == 0 {
			s = time.Now().UnixNano()
		}
		runs++
		log.Printf("[App] Run seed: %d", s)
		return rand.New(rand.NewSource(s))
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(DeltaTime(ebiten.TPS()))
	return nil
}

// DeltaTime 返回每个 tick 的时长（秒）
func DeltaTime(tps int) float64 {
	if tps <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(tps)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
