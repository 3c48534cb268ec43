package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (main menu or a run of the game).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// SceneID 场景标识
type SceneID string

const (
	// SceneMenu 主菜单
	SceneMenu SceneID = "menu"
	// SceneRun 一局新游戏
	SceneRun SceneID = "run"
)
