package systems

import (
	"fmt"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/utils"
)

// MovementSystem 处理角色的格栅外自由移动
// 每次调用按固定步长移动（不按 deltaTime 缩放），与静态墙体做 AABB 检测
type MovementSystem struct {
	entityManager *ecs.EntityManager
	animation     *AnimationSystem
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, animation *AnimationSystem) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		animation:     animation,
	}
}

// StepFor 返回方向对应的单位位移
func StepFor(direction components.Direction) (dx, dy float32) {
	switch direction {
	case components.DirectionUp:
		return 0, 1
	case components.DirectionDown:
		return 0, -1
	case components.DirectionLeft:
		return -1, 0
	case components.DirectionRight:
		return 1, 0
	case components.DirectionNone:
		return 0, 0
	}
	panic(fmt.Sprintf("systems: unknown direction %d", int(direction)))
}

// Move 尝试让实体向 direction 移动一步
//
// 行为：
//   - 死亡实体不移动
//   - DirectionNone：保持朝向，请求待机（攻击中则请求攻击）动画
//   - 目标位置的碰撞盒与任一墙体相交（接触也算）时放弃本次移动，不改变任何状态
//   - 否则提交新位置，请求移动（攻击中则请求攻击）动画
//
// 返回是否发生了位移
func (s *MovementSystem) Move(id ecs.EntityID, direction components.Direction, walls []utils.AABB) bool {
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok && !health.IsAlive {
		return false
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return false
	}
	combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, id)
	if !ok {
		return false
	}

	dx, dy := StepFor(direction)

	if direction == components.DirectionNone {
		facing := components.DirectionDown
		if sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id); ok {
			facing = sheet.Direction
		}
		action := components.ActionIdle
		if combat.IsAttacking {
			action = components.ActionAttack
		}
		s.animation.RequestAnimation(id, facing, action)
		return false
	}

	nextX := pos.Pos[0] + dx*combat.MoveSpeed
	nextY := pos.Pos[1] + dy*combat.MoveSpeed

	if collision, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		if collision.BoxAt(nextX, nextY).IntersectsAny(walls) {
			return false
		}
	}

	pos.Pos[0] = nextX
	pos.Pos[1] = nextY

	action := components.ActionMove
	if combat.IsAttacking {
		action = components.ActionAttack
	}
	s.animation.RequestAnimation(id, direction, action)
	return true
}
