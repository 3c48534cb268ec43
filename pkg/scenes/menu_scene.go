package scenes

import (
	"log"

	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuHelpLines 主菜单上的操作说明
var MenuHelpLines = []string{
	"W A S D  move",
	"Space  attack",
	"E  interact",
	"1 2 3 or click  choose a perk",
}

// MenuScene 主菜单，按 Enter 或点击开始新的一局
type MenuScene struct {
	sceneManager *game.SceneManager
	titleFace    *text.GoTextFace
	bodyFace     *text.GoTextFace
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(rm *game.ResourceManager, sm *game.SceneManager) (*MenuScene, error) {
	titleFace, err := rm.LoadFont(64)
	if err != nil {
		return nil, err
	}
	bodyFace, err := rm.LoadFont(20)
	if err != nil {
		return nil, err
	}
	return &MenuScene{
		sceneManager: sm,
		titleFace:    titleFace,
		bodyFace:     bodyFace,
	}, nil
}

// Update 检测开始游戏的输入
func (s *MenuScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		log.Printf("[MenuScene] Start new run")
		s.sceneManager.Load(game.SceneRun)
	}
}

// Draw 绘制标题和操作说明
func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cx := float64(config.GameWindowWidth) / 2
	drawText(screen, s.titleFace, config.GameTitle, cx, 140, text.AlignCenter, accentColor)
	drawText(screen, s.bodyFace, "Press Enter to start", cx, 260, text.AlignCenter, textColor)
	drawLines(screen, s.bodyFace, MenuHelpLines, cx, 340, 28, text.AlignCenter, textColor)
}
