package systems

import (
	"image/color"
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/utils"
)

// DamageFlashColor 受击闪烁颜色
var DamageFlashColor = color.RGBA{R: 255, A: 255}

// CombatSystem 伤害结算、攻击冷却与击杀奖励
type CombatSystem struct {
	entityManager *ecs.EntityManager
	clock         *Clock
	animation     *AnimationSystem
	flashDuration float64
}

// NewCombatSystem 创建战斗系统
//
// 参数：
//   - em: 实体管理器
//   - clock: 模拟时钟，冷却以它为准
//   - animation: 用于触发死亡动画
//   - flashDuration: 玩家命中敌人时的闪烁时长（秒）
func NewCombatSystem(em *ecs.EntityManager, clock *Clock, animation *AnimationSystem, flashDuration float64) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		clock:         clock,
		animation:     animation,
		flashDuration: flashDuration,
	}
}

// TakeDamage 对实体造成伤害
//
// 生命值结算为 max(0, health - amount)；仅当 health - amount < 0 且实体存活时判定死亡，
// 此时播放死亡动画，若被击杀者是敌人且攻击者是玩家，则向攻击者发放一次奖励。
// 返回本次调用是否击杀了目标
func (s *CombatSystem) TakeDamage(target ecs.EntityID, amount int, attacker ecs.EntityID) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, target)
	if !ok {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	remaining := health.Health - amount
	killed := false
	if remaining < 0 {
		if health.IsAlive {
			health.IsAlive = false
			killed = true
		}
		remaining = 0
	}
	health.Health = remaining

	if !killed {
		return false
	}

	facing := components.DirectionDown
	if sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, target); ok {
		facing = sheet.Direction
	}
	s.animation.RequestAnimation(target, facing, components.ActionDeath)
	s.grantReward(target, attacker)
	return true
}

// grantReward 结算击杀奖励，每个敌人只发放一次
func (s *CombatSystem) grantReward(victim, attacker ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, victim)
	if !ok || enemy.Rewarded {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, attacker)
	if !ok {
		return
	}

	enemy.Rewarded = true
	player.Exp += enemy.ExpReward
	player.Score += enemy.ScoreReward
	log.Printf("[CombatSystem] 敌人 %d 被击杀: +%d 经验, +%d 分数 (经验 %d/%d)",
		victim, enemy.ExpReward, enemy.ScoreReward, player.Exp, player.ExpRequired)
}

// AttackReady 攻击冷却是否已结束
func (s *CombatSystem) AttackReady(id ecs.EntityID) bool {
	combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, id)
	if !ok {
		return false
	}
	return s.clock.Elapsed(combat.LastAttackTime) >= combat.AttackSpeed
}

// ResetCooldown 以当前时间重新开始攻击冷却
func (s *CombatSystem) ResetCooldown(id ecs.EntityID) {
	if combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, id); ok {
		combat.LastAttackTime = s.clock.Now()
	}
}

// InRange 两个实体的平面距离是否不超过 attacker 的攻击距离
func (s *CombatSystem) InRange(attacker, target ecs.EntityID) bool {
	combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, attacker)
	if !ok {
		return false
	}
	from, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, attacker)
	if !ok {
		return false
	}
	to, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, target)
	if !ok {
		return false
	}
	return utils.PlanarDistance(&from.Pos, &to.Pos) <= combat.AttackRange
}

// IsAlive 实体是否存在且存活
func (s *CombatSystem) IsAlive(id ecs.EntityID) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	return ok && health.IsAlive
}

// PlayerAttack 玩家对一个敌人的近战攻击
//
// 条件：玩家存活且处于攻击状态、敌人存活、距离不超过攻击范围、冷却已结束。
// 命中后造成玩家攻击力的伤害，敌人闪红，冷却重置。返回是否命中
func (s *CombatSystem) PlayerAttack(player, enemy ecs.EntityID) bool {
	combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, player)
	if !ok || !combat.IsAttacking {
		return false
	}
	if !s.IsAlive(player) || !s.IsAlive(enemy) {
		return false
	}
	if !s.InRange(player, enemy) || !s.AttackReady(player) {
		return false
	}

	s.TakeDamage(enemy, combat.Damage, player)
	s.Flash(enemy)
	combat.LastAttackTime = s.clock.Now()
	return true
}

// Flash 让实体闪烁受击颜色，重复命中时重新计时
func (s *CombatSystem) Flash(id ecs.EntityID) {
	if s.flashDuration <= 0 || !ecs.HasComponent[*components.SpriteComponent](s.entityManager, id) {
		return
	}
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok {
		flash.Elapsed = 0
		return
	}
	ecs.AddComponent(s.entityManager, id, &components.FlashEffectComponent{
		Duration: s.flashDuration,
		Tint:     DamageFlashColor,
	})
}
