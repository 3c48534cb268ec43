package systems

import (
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
)

// LevelSystem 玩家经验与升级
//
// 升级规则：
//   - 经验 >= 所需经验时等级 +1
//   - 生命值、攻击力按配置增加
//   - 所需经验增加 ExpStep * 新等级（累计经验不清零）
//   - 置 LeveledUp，由天赋选择流程消费
type LevelSystem struct {
	entityManager *ecs.EntityManager
	config        config.LevelUpConfig
}

// NewLevelSystem 创建升级系统
func NewLevelSystem(em *ecs.EntityManager, cfg config.LevelUpConfig) *LevelSystem {
	return &LevelSystem{
		entityManager: em,
		config:        cfg,
	}
}

// CheckLevelUp 检查并执行一次升级，返回是否升级
// 死亡的玩家不再升级
func (s *LevelSystem) CheckLevelUp(player ecs.EntityID) bool {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, player)
	if !ok || pc.Exp < pc.ExpRequired {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, player)
	if !ok || !health.IsAlive {
		return false
	}

	pc.Level++
	health.Health += s.config.Health
	if combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, player); ok {
		combat.Damage += s.config.Damage
	}
	pc.ExpRequired += s.config.ExpStep * pc.Level
	pc.LeveledUp = true

	log.Printf("[LevelSystem] 升级到 %d 级 (下一级需要 %d 经验)", pc.Level, pc.ExpRequired)
	return true
}
