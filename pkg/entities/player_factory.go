package entities

import (
	"fmt"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/ungerik/go3d/vec3"
)

const (
	// SheetPlayer 玩家图集资源名
	SheetPlayer = "player"
	// SheetEnemy 敌人图集资源名
	SheetEnemy = "enemy"
	// SheetLightning 闪电特效图集资源名
	SheetLightning = "lightning"
)

// addCharacterComponents 添加玩家与敌人共有的组件
func addCharacterComponents(em *ecs.EntityManager, id ecs.EntityID, cfg *config.GameConfig, sheet string, x, y float32) {
	sprite := cfg.Sprite

	ecs.AddComponent(em, id, &components.PositionComponent{Pos: vec3.T{x, y, sprite.Depth}})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		HalfWidth:  sprite.Scale / 2,
		HalfHeight: sprite.Scale / 2,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Sheet: sheet, Scale: sprite.Scale})
	ecs.AddComponent(em, id, components.NewSpriteSheetComponent(sprite.Columns, sprite.Rows, sprite.FrameInterval))
	ecs.AddComponent(em, id, &components.LifecycleComponent{})
}

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏数值配置
//   - x, y: 出生点（世界坐标）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 参数无效时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig, x, y float32) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	p := cfg.Player
	id := em.CreateEntity()
	addCharacterComponents(em, id, cfg, SheetPlayer, x, y)

	ecs.AddComponent(em, id, &components.BehaviorComponent{Type: components.BehaviorPlayer})
	ecs.AddComponent(em, id, &components.HealthComponent{Health: p.Health, IsAlive: true})
	ecs.AddComponent(em, id, &components.CombatComponent{
		Damage:      p.Damage,
		MoveSpeed:   p.MoveSpeed,
		AttackSpeed: p.AttackSpeed,
		AttackRange: p.AttackRange,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Level:       1,
		ExpRequired: p.ExpRequired,
	})

	return id, nil
}
