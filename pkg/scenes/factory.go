package scenes

import (
	"log"

	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/game"
)

// NewSceneFactory 返回按 ID 创建场景的工厂，供 SceneManager 使用
// 创建失败时记录日志并返回 nil，SceneManager 保持当前场景
func NewSceneFactory(rm *game.ResourceManager, sm *game.SceneManager, cfg *config.GameConfig, newRandom RandomFactory) game.SceneFactory {
	return func(id game.SceneID) game.Scene {
		switch id {
		case game.SceneMenu:
			s, err := NewMenuScene(rm, sm)
			if err != nil {
				log.Printf("[Scenes] Failed to create menu: %v", err)
				return nil
			}
			return s
		case game.SceneRun:
			s, err := NewRunScene(rm, sm, cfg, newRandom)
			if err != nil {
				log.Printf("[Scenes] Failed to create run: %v", err)
				return nil
			}
			return s
		default:
			log.Printf("[Scenes] Unknown scene: %s", id)
			return nil
		}
	}
}
