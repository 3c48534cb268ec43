package entities

import (
	"fmt"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
)

// EnemyStats 按难度线性缩放后的敌人属性
type EnemyStats struct {
	Health int
	Damage int
	Exp    int
	Score  int
}

// ScaledEnemyStats 计算指定难度下的敌人属性
// 难度 1 为基础值，之后每级按 PerDifficulty 线性增加；小于 1 的难度按 1 处理
func ScaledEnemyStats(cfg config.EnemyConfig, difficulty int) EnemyStats {
	if difficulty < 1 {
		difficulty = 1
	}
	steps := difficulty - 1
	return EnemyStats{
		Health: cfg.Health + cfg.PerDifficulty.Health*steps,
		Damage: cfg.Damage + cfg.PerDifficulty.Damage*steps,
		Exp:    cfg.Exp + cfg.PerDifficulty.Exp*steps,
		Score:  cfg.Score + cfg.PerDifficulty.Score*steps,
	}
}

// NewEnemyEntity 创建敌人实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏数值配置
//   - difficulty: 当前难度（>= 1）
//   - x, y: 生成位置（世界坐标）
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.GameConfig, difficulty int, x, y float32) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if difficulty < 1 {
		return 0, fmt.Errorf("difficulty must be at least 1, got %d", difficulty)
	}

	stats := ScaledEnemyStats(cfg.Enemy, difficulty)

	id := em.CreateEntity()
	addCharacterComponents(em, id, cfg, SheetEnemy, x, y)

	ecs.AddComponent(em, id, &components.BehaviorComponent{Type: components.BehaviorEnemy})
	ecs.AddComponent(em, id, &components.HealthComponent{Health: stats.Health, IsAlive: true})
	ecs.AddComponent(em, id, &components.CombatComponent{
		Damage:      stats.Damage,
		MoveSpeed:   cfg.Enemy.MoveSpeed,
		AttackSpeed: cfg.Enemy.AttackSpeed,
		AttackRange: cfg.Enemy.AttackRange,
	})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Difficulty:  difficulty,
		ExpReward:   stats.Exp,
		ScoreReward: stats.Score,
	})

	return id, nil
}
