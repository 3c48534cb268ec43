package systems

import (
	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/utils"
	"github.com/ungerik/go3d/vec2"
)

// EnemyAISystem 敌人的贪心追击与近身攻击
type EnemyAISystem struct {
	entityManager *ecs.EntityManager
	movement      *MovementSystem
	combat        *CombatSystem
	animation     *AnimationSystem
}

// NewEnemyAISystem 创建敌人 AI 系统
func NewEnemyAISystem(em *ecs.EntityManager, movement *MovementSystem, combat *CombatSystem, animation *AnimationSystem) *EnemyAISystem {
	return &EnemyAISystem{
		entityManager: em,
		movement:      movement,
		combat:        combat,
		animation:     animation,
	}
}

// ChooseDirection 选择朝向目标的主轴方向
// |dx| >= |dy| 时走水平方向（相等时也走水平），否则走垂直方向
func ChooseDirection(delta vec2.T) components.Direction {
	absX, absY := delta[0], delta[1]
	if absX < 0 {
		absX = -absX
	}
	if absY < 0 {
		absY = -absY
	}

	if absX >= absY {
		if delta[0] > 0 {
			return components.DirectionRight
		}
		return components.DirectionLeft
	}
	if delta[1] > 0 {
		return components.DirectionUp
	}
	return components.DirectionDown
}

// Pursue 朝玩家移动一步，返回选择的方向
func (s *EnemyAISystem) Pursue(enemy, player ecs.EntityID, walls []utils.AABB) components.Direction {
	from, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemy)
	if !ok {
		return components.DirectionNone
	}
	to, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, player)
	if !ok {
		return components.DirectionNone
	}

	direction := ChooseDirection(utils.PlanarDelta(&from.Pos, &to.Pos))
	s.movement.Move(enemy, direction, walls)
	return direction
}

// Engage 玩家在攻击范围内且冷却结束时发起攻击，返回是否攻击
func (s *EnemyAISystem) Engage(enemy, player ecs.EntityID) bool {
	if !s.combat.IsAlive(enemy) {
		return false
	}
	if !s.combat.InRange(enemy, player) || !s.combat.AttackReady(enemy) {
		return false
	}
	combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, enemy)
	if !ok {
		return false
	}

	facing := components.DirectionDown
	if sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, enemy); ok {
		facing = sheet.Direction
	}
	s.animation.RequestAnimation(enemy, facing, components.ActionAttack)
	s.combat.TakeDamage(player, combat.Damage, enemy)
	s.combat.ResetCooldown(enemy)
	return true
}

// Update 单个敌人的每帧更新：存活时追击并尝试攻击，之后推进动画
func (s *EnemyAISystem) Update(enemy, player ecs.EntityID, walls []utils.AABB, deltaTime float64) {
	if s.combat.IsAlive(enemy) {
		s.Pursue(enemy, player, walls)
		s.Engage(enemy, player)
	}
	s.animation.Advance(enemy, deltaTime)
}
