// Package scenes 实现主菜单和游戏场景
package scenes

import (
	"github.com/decker502/cryptfall/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene
