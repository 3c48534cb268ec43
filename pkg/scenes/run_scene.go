package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/game"
	"github.com/decker502/cryptfall/pkg/systems"
	"github.com/decker502/cryptfall/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// perkKeys 选择第 1、2、3 张卡片的按键
var perkKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

// RandomFactory 为每一局创建随机源
type RandomFactory func() systems.RandomSource

// RunScene 一局游戏
//
// 只在 Playing 状态下调用 Director.Step；Paused 时等待天赋选择，
// GameOver 时等待重新开始或返回菜单
type RunScene struct {
	cfg             *config.GameConfig
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	newRandom       RandomFactory

	director     *game.Director
	renderSystem *systems.RenderSystem

	hudFace    *text.GoTextFace
	titleFace  *text.GoTextFace
	bannerFace *text.GoTextFace
}

// NewRunScene 创建场景并立即开始一局
func NewRunScene(rm *game.ResourceManager, sm *game.SceneManager, cfg *config.GameConfig, newRandom RandomFactory) (*RunScene, error) {
	if newRandom == nil {
		return nil, fmt.Errorf("random factory cannot be nil")
	}
	s := &RunScene{
		cfg:             cfg,
		resourceManager: rm,
		sceneManager:    sm,
		newRandom:       newRandom,
	}

	var err error
	if s.hudFace, err = rm.LoadFont(18); err != nil {
		return nil, err
	}
	if s.titleFace, err = rm.LoadFont(28); err != nil {
		return nil, err
	}
	if s.bannerFace, err = rm.LoadFont(48); err != nil {
		return nil, err
	}

	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart 丢弃当前一局并开始新的一局
func (s *RunScene) Restart() error {
	d, err := game.NewDirector(s.cfg, s.newRandom())
	if err != nil {
		return fmt.Errorf("failed to create director: %w", err)
	}
	if err := d.Start(); err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	s.director = d
	s.renderSystem = systems.NewRenderSystem(d.EntityManager(), s.resourceManager, NewCamera(s.cfg.Room))
	log.Printf("[RunScene] New run %s", d.RunID())
	return nil
}

// Director 返回当前一局
func (s *RunScene) Director() *game.Director {
	return s.director
}

// ChoosePerk 在天赋选择阶段选择第 index 张卡片
// 返回选择是否生效
func (s *RunScene) ChoosePerk(index int) bool {
	if err := s.director.SelectPerk(index); err != nil {
		log.Printf("[RunScene] Perk selection rejected: %v", err)
		return false
	}
	return true
}

// Update 按阶段处理输入并推进游戏
func (s *RunScene) Update(deltaTime float64) {
	switch s.director.Phase() {
	case game.PhasePlaying:
		s.director.Step(deltaTime, utils.PollKeyState())
	case game.PhasePaused:
		if index, ok := s.pollPerkChoice(); ok {
			s.ChoosePerk(index)
		}
	case game.PhaseGameOver:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyR):
			if err := s.Restart(); err != nil {
				log.Printf("[RunScene] Restart failed: %v", err)
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			s.sceneManager.Load(game.SceneMenu)
		}
	}
}

// pollPerkChoice 读取数字键或鼠标点击选择的卡片
func (s *RunScene) pollPerkChoice() (int, bool) {
	for i, key := range perkKeys {
		if inpututil.IsKeyJustPressed(key) {
			return i, true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if i := CardIndexAt(CardRects(len(s.director.PerkOffer())), x, y); i >= 0 {
			return i, true
		}
	}
	return 0, false
}

// Draw 绘制房间、HUD 以及当前阶段的覆盖层
func (s *RunScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen, s.director.Walls())
	s.drawHUD(screen)
	s.drawBanners(screen)

	switch s.director.Phase() {
	case game.PhasePaused:
		s.drawPerkCards(screen)
	case game.PhaseGameOver:
		s.drawGameOver(screen)
	}
}

func (s *RunScene) drawHUD(screen *ebiten.Image) {
	lines := HUDLines(s.director.Snapshot())
	step := float64(config.GameWindowWidth) / float64(len(lines))
	for i, line := range lines {
		drawText(screen, s.hudFace, line, step*float64(i)+step/2, 14, text.AlignCenter, textColor)
	}
}

func (s *RunScene) drawBanners(screen *ebiten.Image) {
	em := s.director.EntityManager()
	y := float64(config.HUDMargin) + 40
	for _, id := range ecs.GetEntitiesWith1[*components.BannerComponent](em) {
		banner, _ := ecs.GetComponent[*components.BannerComponent](em, id)
		clr := accentColor
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id); ok {
			clr = fade(accentColor, lifetime.Alpha())
		}
		drawText(screen, s.bannerFace, banner.Text, float64(config.GameWindowWidth)/2, y, text.AlignCenter, clr)
		y += 56
	}
}

func (s *RunScene) drawPerkCards(screen *ebiten.Image) {
	drawOverlay(screen)

	heading := "Level up! Choose a perk"
	if s.director.PauseReason() == game.PauseRoomCleared {
		heading = "Room cleared! Choose a perk"
	}
	cx := float64(config.GameWindowWidth) / 2
	drawText(screen, s.titleFace, heading, cx, 70, text.AlignCenter, accentColor)

	cards := s.director.PerkOffer()
	for i, r := range CardRects(len(cards)) {
		drawPanel(screen, r, cardColor, cardBorderColor)
		lines := CardLines(i, cards[i], s.hudFace, CardTextWidth)
		drawLines(screen, s.hudFace, lines, float64(r.Min.X+CardPadding), float64(r.Min.Y+CardPadding), 26, text.AlignStart, textColor)
	}
}

func (s *RunScene) drawGameOver(screen *ebiten.Image) {
	drawOverlay(screen)

	snap := s.director.Snapshot()
	cx := float64(config.GameWindowWidth) / 2
	cy := float64(config.GameWindowHeight) / 2
	drawText(screen, s.bannerFace, "Game Over", cx, cy-90, text.AlignCenter, accentColor)
	stats := GameOverLines(snap)
	drawText(screen, s.titleFace, stats[0], cx, cy-10, text.AlignCenter, textColor)
	drawText(screen, s.hudFace, stats[1], cx, cy+30, text.AlignCenter, cardBorderColor)
	drawText(screen, s.hudFace, "Enter to play again, Esc for menu", cx, cy+70, text.AlignCenter, textColor)
}
